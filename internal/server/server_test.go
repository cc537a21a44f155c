package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adelr/studypet/internal/config"
	"github.com/adelr/studypet/internal/llm"
	"github.com/adelr/studypet/internal/logger"
	"github.com/adelr/studypet/internal/progression"
	"github.com/adelr/studypet/internal/quiz"
	"github.com/adelr/studypet/internal/stats"
	"github.com/adelr/studypet/internal/store"
	"github.com/adelr/studypet/internal/study"
	"github.com/adelr/studypet/internal/wolfram"
)

type testEnv struct {
	server *Server
	store  *store.Store
	prog   *progression.Service
	mock   *llm.MockProvider
}

func newTestEnv(t *testing.T, cfg config.Config) *testEnv {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	log := logger.NewNop()
	mock := llm.NewMockProvider()
	prog := progression.NewService(st.Profiles(), log)

	srv := New(Deps{
		Config:      cfg,
		Log:         log,
		Store:       st,
		Progression: prog,
		Quiz:        quiz.NewService(mock),
		Study:       study.NewService(st.Sessions(), st.Profiles(), prog),
		Planner:     study.NewPlanner(mock),
		Wolfram:     wolfram.NewClient(""),
		Assistant:   wolfram.NewAssistant(nil),
		Stats:       stats.NewStoreProvider(st.Profiles(), st.Sessions(), st.Attempts()),
	})

	return &testEnv{server: srv, store: st, prog: prog, mock: mock}
}

func (e *testEnv) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	e.server.Engine().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (e *testEnv) onboard(t *testing.T, userID string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/profile", userID, map[string]any{
		"name":       "Léa",
		"animalType": "dragon",
		"animalName": "Fumée",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	w := e.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestCORSOriginFallback(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", config.DefaultFrontendOrigin},
		{"localhost:3000", config.DefaultFrontendOrigin},
		{"*", "*"},
		{"http://localhost:5173", "http://localhost:5173"},
		{"https://studypet.example", "https://studypet.example"},
	}
	for _, tc := range cases {
		if got := allowedOrigin(tc.in); got != tc.want {
			t.Errorf("allowedOrigin(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	// An unset origin must still yield a routable server, not a
	// panic while the middleware is built.
	e := newTestEnv(t, config.Config{})
	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", config.DefaultFrontendOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	e.server.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, config.DefaultFrontendOrigin, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthOpenModeRequiresHeader(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	w := e.do(t, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthJWT(t *testing.T) {
	e := newTestEnv(t, config.Config{AuthSecret: "s3cret"})

	// X-User-ID is ignored once a secret is configured.
	w := e.do(t, http.MethodGet, "/api/profile", "u1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("s3cret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.server.Engine().ServeHTTP(rec, req)

	// Authenticated but not onboarded yet.
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A token signed with the wrong key is rejected.
	bad, err := token.SignedString([]byte("wrong"))
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+bad)
	rec = httptest.NewRecorder()
	e.server.Engine().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileLifecycle(t *testing.T) {
	e := newTestEnv(t, config.Config{})

	w := e.do(t, http.MethodGet, "/api/profile", "u1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	e.onboard(t, "u1")

	// Creating twice conflicts.
	w = e.do(t, http.MethodPost, "/api/profile", "u1", map[string]any{
		"name": "Léa", "animalType": "dragon",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = e.do(t, http.MethodGet, "/api/profile", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)["profile"].(map[string]any)
	assert.Equal(t, "baby", profile["level"])
	assert.EqualValues(t, 0, profile["xp"])
}

func TestProfileAddXPAndLevelUp(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.onboard(t, "u1")

	w := e.do(t, http.MethodPost, "/api/profile/xp", "u1", map[string]any{"amount": 25})
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)["profile"].(map[string]any)
	assert.EqualValues(t, 25, profile["xp"])
	assert.Equal(t, "adolescent", profile["level"])

	e.prog.Wait()
	p, err := e.store.Profiles().Fetch(t.Context(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, p.XP)
}

func TestProfileSpend(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.onboard(t, "u1")
	e.do(t, http.MethodPost, "/api/profile/xp", "u1", map[string]any{"amount": 30})
	e.prog.Wait()

	// Insufficient balance is a 200 with ok=false, untouched XP.
	w := e.do(t, http.MethodPost, "/api/profile/spend", "u1", map[string]any{"cost": 100})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, false, out["ok"])
	assert.EqualValues(t, 30, out["profile"].(map[string]any)["xp"])

	w = e.do(t, http.MethodPost, "/api/profile/spend", "u1", map[string]any{"cost": 10})
	require.Equal(t, http.StatusOK, w.Code)
	out = decode(t, w)
	assert.Equal(t, true, out["ok"])
	profile := out["profile"].(map[string]any)
	assert.EqualValues(t, 20, profile["xp"])
	// 20 XP sits exactly on the adolescent boundary.
	assert.Equal(t, "adolescent", profile["level"])
}

func TestQuizFromText(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(
		`{"questions":[{"question":"Q ?","options":["a","b","c","d"],"correctIndex":2}]}`,
	)})

	w := e.do(t, http.MethodPost, "/api/quiz/from-text", "u1", map[string]any{
		"topic": "fractions", "numQuestions": 1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode(t, w)
	assert.Equal(t, "success", out["status"])
	questions := out["questions"].([]any)
	require.Len(t, questions, 1)
	assert.EqualValues(t, 2, questions[0].(map[string]any)["correct"])

	w = e.do(t, http.MethodPost, "/api/quiz/from-text", "u1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizThemes(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	w := e.do(t, http.MethodGet, "/api/quiz/themes", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	themes := decode(t, w)["themes"].(map[string]any)
	require.Contains(t, themes, "Mathématiques")
	algebra := themes["Mathématiques"].(map[string]any)["Algèbre"].(map[string]any)
	assert.Contains(t, algebra, "beginner")
}

func TestQuizFromTheme(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(
		`{"questions":[{"question":"Q ?","options":["a","b","c","d"],"correctIndex":0}]}`,
	)})

	w := e.do(t, http.MethodPost, "/api/quiz/from-theme", "u1", map[string]any{
		"themeId": "math-algebra-beginner",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode(t, w)
	assert.Equal(t, "math-algebra-beginner", out["themeId"])
	themeData := out["themeData"].(map[string]any)
	assert.Equal(t, "Les bases de l'algèbre", themeData["title"])

	w = e.do(t, http.MethodPost, "/api/quiz/from-theme", "u1", map[string]any{"themeId": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func quizResult(answers []int) map[string]any {
	return map[string]any{
		"topic": "fractions",
		"questions": []map[string]any{
			{"question": "Q1 ?", "options": []string{"a", "b", "c", "d"}, "correct": 0},
			{"question": "Q2 ?", "options": []string{"a", "b", "c", "d"}, "correct": 1},
			{"question": "Q3 ?", "options": []string{"a", "b", "c", "d"}, "correct": 2},
		},
		"answers": answers,
	}
}

func TestQuizComplete(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.onboard(t, "u1")

	w := e.do(t, http.MethodPost, "/api/quiz/complete", "u1", quizResult([]int{0, 1, 2}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode(t, w)
	assert.EqualValues(t, 3, out["numCorrect"])
	assert.EqualValues(t, 60, out["xpAwarded"])
	profile := out["profile"].(map[string]any)
	assert.EqualValues(t, 60, profile["xp"])
	assert.Equal(t, "adult", profile["level"])
	assert.EqualValues(t, 1, profile["currentStreak"])

	// The attempt is recorded for analytics.
	e.prog.Wait()
	attempts, err := e.store.Attempts().Recent(t.Context(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, 60, attempts[0].XPAwarded)

}

func TestQuizCompleteEmptyQuiz(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.onboard(t, "u1")

	// Zero questions award nothing but still count as study activity.
	w := e.do(t, http.MethodPost, "/api/quiz/complete", "u1", map[string]any{"topic": "vide"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode(t, w)
	assert.EqualValues(t, 0, out["xpAwarded"])
	profile := out["profile"].(map[string]any)
	assert.EqualValues(t, 0, profile["xp"])
	assert.EqualValues(t, 1, profile["currentStreak"])
}

func TestQuizCompletePartialScore(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.onboard(t, "u1")

	w := e.do(t, http.MethodPost, "/api/quiz/complete", "u1", quizResult([]int{0, 3, 2}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode(t, w)
	assert.EqualValues(t, 2, out["numCorrect"])
	assert.EqualValues(t, 40, out["xpAwarded"])
}

func TestStudySessionFlow(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.onboard(t, "u1")

	w := e.do(t, http.MethodPost, "/api/study/sessions", "u1", map[string]any{"topic": "fractions"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	session := decode(t, w)["session"].(map[string]any)
	id := session["id"].(string)
	assert.EqualValues(t, study.FullCycleSeconds, session["durationSeconds"])

	w = e.do(t, http.MethodPost, fmt.Sprintf("/api/study/sessions/%s/complete", id), "u1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode(t, w)
	profile := out["profile"].(map[string]any)
	assert.EqualValues(t, study.SessionXP, profile["xp"])
	assert.EqualValues(t, 1, profile["currentStreak"])

	// Completing again conflicts.
	w = e.do(t, http.MethodPost, fmt.Sprintf("/api/study/sessions/%s/complete", id), "u1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Another user cannot touch the session.
	e.onboard(t, "u2")
	w = e.do(t, http.MethodPost, fmt.Sprintf("/api/study/sessions/%s/cancel", id), "u2", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStudySessionCancel(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.onboard(t, "u1")

	w := e.do(t, http.MethodPost, "/api/study/sessions", "u1", map[string]any{"topic": "géométrie"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["session"].(map[string]any)["id"].(string)

	w = e.do(t, http.MethodPost, fmt.Sprintf("/api/study/sessions/%s/cancel", id), "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := decode(t, w)["session"].(map[string]any)
	assert.Equal(t, store.SessionCancelled, session["status"])

	e.prog.Wait()
	p, err := e.store.Profiles().Fetch(t.Context(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.XP)
}

func TestStudyPlan(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(
		`{"steps":[{"title":"Relire","description":"Relis le cours.","durationMinutes":15}]}`,
	)})

	w := e.do(t, http.MethodPost, "/api/study/plan", "u1", map[string]any{
		"topic": "la photosynthèse", "availableMinutes": 45,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	plan := decode(t, w)["plan"].(map[string]any)
	assert.Equal(t, "la photosynthèse", plan["topic"])
	assert.Len(t, plan["steps"].([]any), 1)
}

func TestWolframAssistHeuristic(t *testing.T) {
	e := newTestEnv(t, config.Config{})

	w := e.do(t, http.MethodPost, "/api/wolfram/assist", "u1", map[string]any{
		"task": "calcule 2+2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2+2", decode(t, w)["wolframInput"])
}

func TestWolframQueryUnconfigured(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	w := e.do(t, http.MethodPost, "/api/wolfram/query", "u1", map[string]any{"input": "2+2"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStats(t *testing.T) {
	e := newTestEnv(t, config.Config{})
	e.onboard(t, "u1")
	e.do(t, http.MethodPost, "/api/quiz/complete", "u1", quizResult([]int{0, 1, 0}))
	e.prog.Wait()

	w := e.do(t, http.MethodGet, "/api/stats", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)["stats"].(map[string]any)
	assert.EqualValues(t, 1, got["totalQuizzes"])
	assert.Len(t, got["weeklyProgress"].([]any), 7)
}
