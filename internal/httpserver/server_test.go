package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/TheLionCoder/wordle-solver/internal/game"
	"github.com/TheLionCoder/wordle-solver/internal/solver"
	"github.com/TheLionCoder/wordle-solver/internal/store"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	dict, err := words.New([]words.Entry{
		{Word: "crane", Weight: 100},
		{Word: "slate", Weight: 90},
		{Word: "boost", Weight: 50},
		{Word: "books", Weight: 40},
		{Word: "which", Weight: 30},
	})
	require.NoError(t, err)
	sv := solver.New(dict, solver.Config{Workers: 2})
	return New(dict, sv, store.NewMemoryStore())
}

func do(t *testing.T, s *Server, method, path string, body any, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()
	rec := do(t, testServer(t), http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestSuggestEmptyHistory(t *testing.T) {
	t.Parallel()
	s := testServer(t)
	rec := do(t, s, http.MethodPost, "/suggest", map[string]any{"history": []any{}}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Guess      string `json:"guess"`
		Candidates int    `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 5, res.Candidates)
	require.True(t, s.dict.Contains(words.Word(res.Guess)))
}

func TestSuggestNarrowedHistory(t *testing.T) {
	t.Parallel()
	s := testServer(t)
	mask := game.Compute("books", "boost")
	dto := guessDTO{Word: "boost"}
	for _, c := range mask {
		dto.Mask = append(dto.Mask, c.String())
	}
	rec := do(t, s, http.MethodPost, "/suggest", suggestReq{History: []guessDTO{dto}}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res suggestRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "books", res.Guess)
	require.Equal(t, 1, res.Candidates)
}

func TestSuggestRejectsBadInput(t *testing.T) {
	t.Parallel()
	s := testServer(t)

	// Word outside the dictionary.
	rec := do(t, s, http.MethodPost, "/suggest", suggestReq{History: []guessDTO{
		{Word: "zzzzz", Mask: []string{"wrong", "wrong", "wrong", "wrong", "wrong"}},
	}}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Short mask.
	rec = do(t, s, http.MethodPost, "/suggest", suggestReq{History: []guessDTO{
		{Word: "crane", Mask: []string{"wrong"}},
	}}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown mark name.
	rec = do(t, s, http.MethodPost, "/suggest", suggestReq{History: []guessDTO{
		{Word: "crane", Mask: []string{"green", "wrong", "wrong", "wrong", "wrong"}},
	}}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateRequiresAdmin(t *testing.T) {
	s := testServer(t)
	t.Setenv("ADMIN_JWT_SECRET", "test-secret")

	rec := do(t, s, http.MethodPost, "/simulate", simulateReq{Limit: 2}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token, wrong role.
	token := signToken(t, "test-secret", "viewer")
	rec = do(t, s, http.MethodPost, "/simulate", simulateReq{Limit: 2},
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Wrong secret.
	token = signToken(t, "other-secret", "admin")
	rec = do(t, s, http.MethodPost, "/simulate", simulateReq{Limit: 2},
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSimulateAndSummary(t *testing.T) {
	s := testServer(t)
	t.Setenv("ADMIN_JWT_SECRET", "test-secret")
	token := signToken(t, "test-secret", "admin")

	rec := do(t, s, http.MethodPost, "/simulate", simulateReq{Limit: 3, Workers: 2},
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, rec.Code)

	var summary store.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, 3, summary.Games)
	require.Equal(t, 3, summary.Wins)

	rec = do(t, s, http.MethodGet, "/results/summary", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, 3, summary.Games)
}

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}
