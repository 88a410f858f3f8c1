// Package migrations manages the schema for both resource tables.
package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run applies the schema for both bounded contexts. The unique index on
// lower(email) is the real guarantee behind the email uniqueness invariant;
// the application-level existence check is only a fast path with a better
// error message.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := db.AutoMigrate(&personRecord{}, &petRecord{}); err != nil {
		return err
	}
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_persons_email_lower ON persons (LOWER(email))",
	).Error
}

// Person schema mirrors the persons Postgres adapter.
type personRecord struct {
	ID        uuid.UUID  `gorm:"primaryKey;column:id;type:uuid"`
	FirstName string     `gorm:"column:first_name;size:100"`
	LastName  string     `gorm:"column:last_name;size:100"`
	Email     string     `gorm:"column:email;size:150"`
	BirthDate *time.Time `gorm:"column:birth_date;type:date"`
	HeightCm  *float64   `gorm:"column:height_cm;type:decimal(5,2)"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (personRecord) TableName() string { return "persons" }

// Pet schema mirrors the pets Postgres adapter.
type petRecord struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name;size:100"`
	Species   string    `gorm:"column:species;size:50;index"`
	Breed     *string   `gorm:"column:breed;size:100"`
	Color     *string   `gorm:"column:color;size:50"`
	Age       *int      `gorm:"column:age"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (petRecord) TableName() string { return "pets" }
