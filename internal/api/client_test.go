package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activehq/activehq-go/internal/domain/auth"
	"github.com/activehq/activehq-go/internal/domain/model"
	"github.com/activehq/activehq-go/internal/session"
)

// fakeServer drives the refresh protocol from the server side, counting how
// often each endpoint is hit and which bearer tokens arrive.
type fakeServer struct {
	mu sync.Mutex

	gymCalls     int
	gymTokens    []string
	refreshCalls int
	refreshReqs  []auth.RefreshRequest

	// validToken is the only bearer /gym/current accepts.
	validToken string
	// refreshFails makes /auth/refresh reject every attempt.
	refreshFails bool
	// nextTokens is what a successful refresh hands out.
	nextTokens auth.TokenResponse
}

func (f *fakeServer) handler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/gym/current", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.gymCalls++
		token := bearerToken(r)
		f.gymTokens = append(f.gymTokens, token)
		valid := token == f.validToken
		f.mu.Unlock()

		if !valid {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(model.Gym{ID: "gym-1", Name: "Ironworks Fitness"})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var req auth.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		f.mu.Lock()
		f.refreshCalls++
		f.refreshReqs = append(f.refreshReqs, req)
		fails := f.refreshFails
		tokens := f.nextTokens
		f.mu.Unlock()

		if fails {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Invalid refresh token"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(tokens)
	})
	return mux
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}
	return ""
}

func newTestClient(t *testing.T, baseURL string) (*Client, *session.Store) {
	t.Helper()

	store := session.NewStore(session.Options{})
	client, err := NewClient(Config{
		BaseURL: baseURL,
		Session: store,
	})
	require.NoError(t, err)
	return client, store
}

func signIn(store *session.Store, accessToken, refreshToken string) {
	store.Login(context.Background(),
		&model.User{ID: "user-1", Name: "Priya Sharma"},
		&model.Gym{ID: "gym-1"},
		accessToken, refreshToken)
}

func TestExpiredTokenIsRefreshedAndRetriedOnce(t *testing.T) {
	fake := &fakeServer{
		validToken: "access-new",
		nextTokens: auth.TokenResponse{AccessToken: "access-new", RefreshToken: "refresh-new"},
	}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-stale", "refresh-old")

	gym, err := client.Gym.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ironworks Fitness", gym.Name)

	assert.Equal(t, 2, fake.gymCalls, "the rejected call is retried exactly once")
	assert.Equal(t, []string{"access-stale", "access-new"}, fake.gymTokens,
		"the retry must carry the refreshed token")
	assert.Equal(t, 1, fake.refreshCalls)
	require.Len(t, fake.refreshReqs, 1)
	assert.Equal(t, "refresh-old", fake.refreshReqs[0].RefreshToken)

	snap := store.Snapshot()
	assert.Equal(t, "access-new", snap.AccessToken)
	assert.Equal(t, "refresh-new", snap.RefreshToken)
	assert.True(t, snap.Authenticated)
	require.NotNil(t, snap.User, "a refresh must not touch the cached user")
}

func TestSecondRejectionIsFinal(t *testing.T) {
	// The server refreshes happily but never accepts any bearer, so the
	// retried request 401s again. That second 401 must come straight back.
	fake := &fakeServer{
		validToken: "nothing-matches",
		nextTokens: auth.TokenResponse{AccessToken: "access-new", RefreshToken: "refresh-new"},
	}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-stale", "refresh-old")

	_, err := client.Gym.Current(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	assert.Equal(t, 2, fake.gymCalls, "no third attempt")
	assert.Equal(t, 1, fake.refreshCalls, "no second refresh")
}

func TestNoRefreshWithoutRefreshToken(t *testing.T) {
	fake := &fakeServer{validToken: "never"}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	store.SetTokens(context.Background(), "access-stale", "")

	_, err := client.Gym.Current(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	assert.Equal(t, 1, fake.gymCalls)
	assert.Equal(t, 0, fake.refreshCalls, "refresh must not be attempted without a refresh token")
}

func TestFailedRefreshClearsSessionAndReturnsOriginalError(t *testing.T) {
	fake := &fakeServer{
		validToken:   "never",
		refreshFails: true,
	}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-stale", "refresh-dead")

	_, err := client.Gym.Current(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Could not validate credentials", apiErr.Detail,
		"the original rejection is surfaced, not the refresh failure")

	assert.Equal(t, 1, fake.gymCalls, "the original request is not retried")
	assert.Equal(t, 1, fake.refreshCalls)

	snap := store.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Empty(t, snap.AccessToken)
	assert.Empty(t, snap.RefreshToken)
	assert.Nil(t, snap.User)
}

func TestRetriedRequestRepeatsTheBody(t *testing.T) {
	var mu sync.Mutex
	var bodies []model.UpdateGymRequest
	var tokens []string
	calls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/gym/current", func(w http.ResponseWriter, r *http.Request) {
		var req model.UpdateGymRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		mu.Lock()
		calls++
		bodies = append(bodies, req)
		tokens = append(tokens, bearerToken(r))
		first := calls == 1
		mu.Unlock()

		if first {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(model.Gym{ID: "gym-1", Name: *req.Name})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(auth.TokenResponse{
			AccessToken:  "access-new",
			RefreshToken: "refresh-new",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-stale", "refresh-old")

	name := "Ironworks Fitness 2.0"
	gym, err := client.Gym.Update(context.Background(), model.UpdateGymRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, gym.Name)

	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1], "the retry must repeat the identical body")
	assert.Equal(t, []string{"access-stale", "access-new"}, tokens)
}

func TestConcurrentExpiredCallsAllRecover(t *testing.T) {
	fake := &fakeServer{
		validToken: "access-new",
		nextTokens: auth.TokenResponse{AccessToken: "access-new", RefreshToken: "refresh-new"},
	}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-stale", "refresh-old")

	const callers = 5
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Gym.Current(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	snap := store.Snapshot()
	assert.Equal(t, "access-new", snap.AccessToken)
	assert.True(t, snap.Authenticated)
}

func TestRequestsCarryStandardHeaders(t *testing.T) {
	var gotAccept, gotRequestID, gotContentType string

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(auth.TokenResponse{AccessToken: "a", RefreshToken: "r"})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.User{ID: "user-1"})
	})
	mux.HandleFunc("/gym/current", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Gym{ID: "gym-1"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	_, err := client.Auth.SignIn(context.Background(), "owner@ironworks.example", "secret")
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestSignInPopulatesSessionAtomically(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(auth.TokenResponse{AccessToken: "access-1", RefreshToken: "refresh-1"})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "access-1", bearerToken(r), "profile fetch must use the fresh token")
		_ = json.NewEncoder(w).Encode(model.User{ID: "user-1", Name: "Priya Sharma"})
	})
	mux.HandleFunc("/gym/current", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Gym{ID: "gym-1", Name: "Ironworks Fitness"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	sess, err := client.Auth.SignIn(context.Background(), "owner@ironworks.example", "secret")
	require.NoError(t, err)

	assert.True(t, sess.Authenticated)
	assert.Equal(t, "access-1", sess.AccessToken)
	require.NotNil(t, sess.User)
	assert.Equal(t, "Priya Sharma", sess.User.Name)
	require.NotNil(t, sess.Gym)
	assert.Equal(t, "Ironworks Fitness", sess.Gym.Name)
	assert.Equal(t, sess, store.Snapshot())
}

func TestSignInFailureLeavesSessionUnauthenticated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Incorrect email or password"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	_, err := client.Auth.SignIn(context.Background(), "owner@ironworks.example", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", ErrorMessage(err))
	assert.False(t, store.Snapshot().Authenticated)
}

func TestNewClientValidatesConfig(t *testing.T) {
	store := session.NewStore(session.Options{})

	_, err := NewClient(Config{Session: store})
	require.Error(t, err, "base url is required")

	_, err = NewClient(Config{BaseURL: "ftp://example.com", Session: store})
	require.Error(t, err, "scheme must be http or https")

	_, err = NewClient(Config{BaseURL: "http://localhost:8000/api/v1"})
	require.Error(t, err, "session store is required")

	client, err := NewClient(Config{BaseURL: "http://localhost:8000/api/v1/", Session: store})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api/v1", client.baseURL, "trailing slash is trimmed")
}
