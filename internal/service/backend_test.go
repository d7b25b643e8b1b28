package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"porra/internal/api"
	"porra/internal/config"
	"porra/internal/database"
	"porra/internal/repository"
)

var kickoff = time.Date(2026, 6, 11, 19, 0, 0, 0, time.UTC)

func team(id, name string) *api.TeamDTO {
	return &api.TeamDTO{ID: id, Name: name, FifaCode: id, Group: "A"}
}

// fakeBackend serves one league with group A and a single quarter-final.
type fakeBackend struct {
	mu         sync.Mutex
	requests   []string
	prediction api.PredictionDTO
	matches    []api.MatchDTO
	lastGroup  api.SaveGroupRequest
	lastKO     api.SaveKnockoutRequest
	token      string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	esp, bra, mar, jpn := team("esp", "España"), team("bra", "Brasil"), team("mar", "Marruecos"), team("jpn", "Japón")
	group := func(id string, n int, home, away *api.TeamDTO) api.MatchDTO {
		return api.MatchDTO{
			ID: id, HomeTeam: home, AwayTeam: away, Group: "A", Phase: "GROUP_STAGE",
			MatchNumber: n, Date: kickoff.Add(time.Duration(n) * 24 * time.Hour), Status: "SCHEDULED",
		}
	}

	claims := accessClaims{
		Email: "ana@porra.es",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(kickoff),
			ExpiresAt: jwt.NewNumericDate(kickoff.Add(15 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return &fakeBackend{
		token:      token,
		prediction: api.PredictionDTO{ID: "p1", UserID: "u1", LeagueID: "lg1"},
		matches: []api.MatchDTO{
			group("m1", 1, esp, bra),
			group("m2", 2, mar, jpn),
			group("m3", 3, esp, mar),
			group("m4", 4, bra, jpn),
			group("m5", 5, jpn, esp),
			group("m6", 6, bra, mar),
			{ID: "m90", HomeTeam: esp, AwayTeam: bra, Phase: "QUARTER_FINAL", MatchNumber: 90, Date: kickoff.Add(30 * 24 * time.Hour), Status: "SCHEDULED"},
		},
	}
}

func (b *fakeBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
}

func (b *fakeBackend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r == method+" "+path {
			n++
		}
	}
	return n
}

func (b *fakeBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func reply(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "rt-1", HttpOnly: true})
		reply(w, http.StatusOK, api.AuthResponse{AccessToken: b.token, User: api.UserDTO{ID: "u1", Name: "Ana", Email: "ana@porra.es"}})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, api.UserDTO{ID: "u1", Name: "Ana", Email: "ana@porra.es", EmailVerified: true})
	})
	mux.HandleFunc("GET /leagues", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, []api.LeagueDTO{{ID: "lg1", Name: "Oficina", Code: "OFFICE26", MemberCount: 3}})
	})
	mux.HandleFunc("POST /leagues/join", func(w http.ResponseWriter, r *http.Request) {
		var in api.JoinLeagueRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		reply(w, http.StatusOK, api.LeagueDTO{ID: "lg1", Name: "Oficina", Code: in.Code})
	})
	// one pattern serves both /predictions/league/{id} and
	// /predictions/{id}/stats, which would otherwise overlap
	mux.HandleFunc("GET /predictions/{id}/{sub}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch {
		case r.PathValue("id") == "league":
			reply(w, http.StatusOK, b.prediction)
		case r.PathValue("sub") == "stats":
			reply(w, http.StatusOK, api.PredictionStatsDTO{GroupPredicted: len(b.prediction.GroupPredictions), GroupTotal: 6, KnockoutTotal: 1})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	mux.HandleFunc("PUT /predictions/{id}/groups/{group}", func(w http.ResponseWriter, r *http.Request) {
		var in api.SaveGroupRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.lastGroup = in
		saved := map[string]api.MatchPredictionDTO{}
		for _, p := range b.prediction.GroupPredictions {
			saved[p.MatchID] = p
		}
		for _, p := range in.Predictions {
			saved[p.MatchID] = p
		}
		b.prediction.GroupPredictions = b.prediction.GroupPredictions[:0]
		for _, m := range b.matches {
			if p, ok := saved[m.ID]; ok {
				b.prediction.GroupPredictions = append(b.prediction.GroupPredictions, p)
			}
		}
		if in.Tiebreakers != nil {
			if b.prediction.Tiebreakers == nil {
				b.prediction.Tiebreakers = map[string]map[string]int{}
			}
			b.prediction.Tiebreakers[r.PathValue("group")] = in.Tiebreakers
		}
		reply(w, http.StatusOK, b.prediction)
	})
	mux.HandleFunc("PUT /predictions/{id}/knockout/{phase}", func(w http.ResponseWriter, r *http.Request) {
		var in api.SaveKnockoutRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.lastKO = in
		b.prediction.KnockoutPredictions = in.Predictions
		reply(w, http.StatusOK, b.prediction)
	})
	mux.HandleFunc("PUT /predictions/{id}/awards", func(w http.ResponseWriter, r *http.Request) {
		var in api.AwardsDTO
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.prediction.Awards = &in
		reply(w, http.StatusOK, b.prediction)
	})
	mux.HandleFunc("GET /matches", func(w http.ResponseWriter, r *http.Request) {
		group, phase := r.URL.Query().Get("group"), r.URL.Query().Get("phase")
		var out []api.MatchDTO
		for _, m := range b.matches {
			if (group == "" || m.Group == group) && (phase == "" || m.Phase == phase) {
				out = append(out, m)
			}
		}
		reply(w, http.StatusOK, out)
	})
	mux.HandleFunc("GET /matches/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, m := range b.matches {
			if m.ID == r.PathValue("id") {
				reply(w, http.StatusOK, m)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Match not found"}`))
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		mux.ServeHTTP(w, r)
	})
}

type testEnv struct {
	backend     *fakeBackend
	sessions    *repository.SessionRepository
	auth        *AuthService
	leagues     *LeagueService
	predictions *PredictionService
	schedule    *ScheduleService
	dashboard   *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zerolog.Nop()

	backend := newFakeBackend(t)
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	db, err := database.Open(filepath.Join(t.TempDir(), "porra.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := repository.NewSessionRepository(db, logger)
	client := api.NewClient(&config.Config{APIBaseURL: srv.URL, APITimeout: 2 * time.Second}, sessions, logger)

	authRepo := repository.NewAuthRepository(client, logger)
	leagueRepo := repository.NewLeagueRepository(client, logger)
	predictionRepo := repository.NewPredictionRepository(client, logger)
	matchRepo := repository.NewMatchRepository(client, logger)
	draftRepo := repository.NewDraftRepository(db, logger)

	auth := NewAuthService(authRepo, sessions, logger)
	auth.now = func() time.Time { return kickoff }
	schedule := NewScheduleService(matchRepo, logger)
	dashboard := NewDashboardService(auth, leagueRepo, predictionRepo, schedule, logger)
	dashboard.now = func() time.Time { return kickoff }

	return &testEnv{
		backend:     backend,
		sessions:    sessions,
		auth:        auth,
		leagues:     NewLeagueService(leagueRepo, logger),
		predictions: NewPredictionService(predictionRepo, matchRepo, draftRepo, logger),
		schedule:    schedule,
		dashboard:   dashboard,
	}
}

func (e *testEnv) signIn(t *testing.T) {
	t.Helper()
	require.NoError(t, e.sessions.SaveTokens(context.Background(), e.backend.token, "rt-1"))
}
