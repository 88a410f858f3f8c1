package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatia/people-pets-api/internal/domains/persons/adapters/memory"
	"github.com/relatia/people-pets-api/internal/domains/persons/application"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

type personBody struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email"`
	Age       *int     `json:"age"`
	Height    *float64 `json:"height"`
	CreatedAt string   `json:"createdAt"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewService(memory.NewRepository())
	handler := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := gin.New()
	handler.Register(router.Group("/api"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func createPerson(t *testing.T, router *gin.Engine, firstName, lastName, email string) personBody {
	t.Helper()
	rec, env := doJSON(t, router, http.MethodPost, "/api/persons", gin.H{
		"firstName": firstName, "lastName": lastName, "email": email,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var person personBody
	require.NoError(t, json.Unmarshal(env.Data, &person))
	return person
}

func TestCreatePerson_ReturnsDerivedFieldsAndLocation(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodPost, "/api/persons", gin.H{
		"firstName": "Ana", "lastName": "Ruiz", "email": "ana@x.com",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	var person personBody
	require.NoError(t, json.Unmarshal(env.Data, &person))
	assert.NotEmpty(t, person.ID)
	assert.Equal(t, "Ana Ruiz", person.FullName)
	assert.Nil(t, person.Age)
	assert.Equal(t, "/api/persons/"+person.ID, rec.Header().Get("Location"))
}

func TestCreatePerson_DuplicateEmailDifferentCase(t *testing.T) {
	router := newTestRouter()
	createPerson(t, router, "Ana", "Ruiz", "ana@x.com")

	rec, env := doJSON(t, router, http.MethodPost, "/api/persons", gin.H{
		"firstName": "Ana", "lastName": "Ruiz", "email": "ANA@X.COM",
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Errors)
	assert.Nil(t, env.Data)
}

func TestCreatePerson_ValidationErrorsListed(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodPost, "/api/persons", gin.H{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Len(t, env.Errors, 3)
}

func TestGetPerson_NotFound(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodGet, "/api/persons/7e57ed00-0000-4000-8000-000000000000", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	require.Len(t, env.Errors, 1)
}

func TestGetPerson_MalformedID(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodGet, "/api/persons/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePerson_FullReplace(t *testing.T) {
	router := newTestRouter()
	person := createPerson(t, router, "Ana", "Ruiz", "ana@x.com")

	rec, env := doJSON(t, router, http.MethodPut, "/api/persons/"+person.ID, gin.H{
		"firstName": "Ana Maria", "lastName": "Ruiz", "email": "ana@x.com",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var updated personBody
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, person.ID, updated.ID)
	assert.Equal(t, person.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Ana Maria Ruiz", updated.FullName)
}

func TestDeletePerson_SecondDeleteAlso404(t *testing.T) {
	router := newTestRouter()
	person := createPerson(t, router, "Ana", "Ruiz", "ana@x.com")

	rec, _ := doJSON(t, router, http.MethodDelete, "/api/persons/"+person.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/persons/"+person.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchPersons_RequiresTerm(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodGet, "/api/persons/search", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"searchTerm query parameter is required"}, env.Errors)
}

func TestSearchPersons_ReturnsMatches(t *testing.T) {
	router := newTestRouter()
	createPerson(t, router, "Ana", "Ruiz", "ana@x.com")
	createPerson(t, router, "Luis", "Mora", "luis@x.com")

	rec, env := doJSON(t, router, http.MethodGet, "/api/persons/search?searchTerm=ana", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var persons []personBody
	require.NoError(t, json.Unmarshal(env.Data, &persons))
	require.Len(t, persons, 1)
	assert.Equal(t, "Ana", persons[0].FirstName)
}

func TestListPersons_EmptyStillSucceeds(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodGet, "/api/persons", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "found 0 persons", env.Message)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Contains(t, decoded, "data")
	assert.Equal(t, []any{}, decoded["data"])
}
