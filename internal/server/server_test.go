package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"noteswise-be/internal/bootstrap"
	"noteswise-be/internal/config"
	"noteswise-be/internal/dto"
	"noteswise-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "integration-test-secret"
	testIssuer   = "https://auth.example.com"
	testAudience = "authenticated"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)
	t.Setenv("JWT_ISSUER", testIssuer)
	t.Setenv("JWT_AUDIENCE", testAudience)
	t.Setenv("LOG_FILE_PATH", t.TempDir()+"/app.log")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := config.Load()
	container := bootstrap.NewContainer(nil, cfg)
	return New(cfg, container).GetApp()
}

func tokenFor(t *testing.T, userId uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userId.String(),
		"iss": testIssuer,
		"aud": testAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var envelope serverutils.BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestHealthIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/health", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/categories", "/api/notes", "/api/flashcards"} {
		resp := doJSON(t, app, "GET", path, "", "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}

	resp := doJSON(t, app, "GET", "/api/notes", "garbage-token", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestNoteLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := tokenFor(t, uuid.New())

	// Category first
	resp := doJSON(t, app, "POST", "/api/categories", token, `{"name": "Work", "color": "#336699"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	category := decode[dto.CategoryResponse](t, resp)

	// Note tagged with it; no provider keys, so the summary is the
	// "not configured" placeholder rather than an error
	resp = doJSON(t, app, "POST", "/api/notes", token,
		`{"title": "Standup", "content": "Talked about blockers.", "category_id": "`+category.Id.String()+`"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	note := decode[dto.NoteResponse](t, resp)
	require.NotNil(t, note.CategoryId)
	assert.Equal(t, category.Id, *note.CategoryId)
	assert.Equal(t, "Summary unavailable: no AI provider configured", note.Summary)

	// Listing and filtering
	resp = doJSON(t, app, "GET", "/api/notes", token, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	notes := decode[[]dto.NoteResponse](t, resp)
	require.Len(t, notes, 1)

	resp = doJSON(t, app, "GET", "/api/notes?categoryId="+category.Id.String(), token, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	notes = decode[[]dto.NoteResponse](t, resp)
	require.Len(t, notes, 1)

	resp = doJSON(t, app, "GET", "/api/notes?categoryId=oops", token, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Flashcards under the note
	resp = doJSON(t, app, "POST", "/api/notes/"+note.Id.String()+"/flashcards", token,
		`{"flashcards": [{"question": "q1", "answer": "a1"}, {"question": "q2", "answer": "a2"}]}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	cards := decode[[]dto.FlashcardResponse](t, resp)
	require.Len(t, cards, 2)

	resp = doJSON(t, app, "GET", "/api/flashcards", token, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	allCards := decode[[]dto.FlashcardResponse](t, resp)
	assert.Len(t, allCards, 2)

	// Deleting the category detaches the note
	resp = doJSON(t, app, "DELETE", "/api/categories/"+category.Id.String(), token, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/notes/"+note.Id.String(), token, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	detached := decode[dto.NoteResponse](t, resp)
	assert.Nil(t, detached.CategoryId)

	// Deleting the note removes its flashcards
	resp = doJSON(t, app, "DELETE", "/api/notes/"+note.Id.String(), token, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/notes/"+note.Id.String(), token, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/flashcards", token, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	allCards = decode[[]dto.FlashcardResponse](t, resp)
	assert.Empty(t, allCards)
}

func TestValidationAndBadCategory(t *testing.T) {
	app := newTestApp(t)
	token := tokenFor(t, uuid.New())

	// Missing required title
	resp := doJSON(t, app, "POST", "/api/notes", token, `{"content": "no title"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Unknown category
	resp = doJSON(t, app, "POST", "/api/notes", token,
		`{"title": "t", "content": "c", "category_id": "`+uuid.New().String()+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Empty flashcard batch
	respNote := doJSON(t, app, "POST", "/api/notes", token, `{"title": "t", "content": "c"}`)
	require.Equal(t, fiber.StatusCreated, respNote.StatusCode)
	note := decode[dto.NoteResponse](t, respNote)

	resp = doJSON(t, app, "POST", "/api/notes/"+note.Id.String()+"/flashcards", token, `{"flashcards": []}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCrossUserIsolationOverHTTP(t *testing.T) {
	app := newTestApp(t)
	ownerToken := tokenFor(t, uuid.New())
	otherToken := tokenFor(t, uuid.New())

	resp := doJSON(t, app, "POST", "/api/notes", ownerToken, `{"title": "secret", "content": "s"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	note := decode[dto.NoteResponse](t, resp)

	resp = doJSON(t, app, "GET", "/api/notes/"+note.Id.String(), otherToken, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/notes/"+note.Id.String(), otherToken, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/notes", otherToken, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	notes := decode[[]dto.NoteResponse](t, resp)
	assert.Empty(t, notes)

	// Still intact for the owner
	resp = doJSON(t, app, "GET", "/api/notes/"+note.Id.String(), ownerToken, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
