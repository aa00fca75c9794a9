package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activehq/activehq-go/internal/domain/model"
)

func TestMemberListEncodesQueryParameters(t *testing.T) {
	var gotQuery map[string][]string

	mux := http.NewServeMux()
	mux.HandleFunc("/members", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(model.MemberListResponse{
			Items:      []model.MemberSummary{{ID: "mem-1", Name: "Arun Verma"}},
			Total:      1,
			Page:       2,
			PageSize:   10,
			TotalPages: 1,
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-1", "refresh-1")

	resp, err := client.Members.List(context.Background(), model.MemberListQuery{
		Query:    "arun",
		Status:   "active",
		Page:     2,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	assert.Equal(t, []string{"arun"}, gotQuery["query"])
	assert.Equal(t, []string{"active"}, gotQuery["status"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["page_size"])
}

func TestMemberListOmitsEmptyFilters(t *testing.T) {
	var gotRawQuery string

	mux := http.NewServeMux()
	mux.HandleFunc("/members", func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(model.MemberListResponse{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-1", "refresh-1")

	_, err := client.Members.List(context.Background(), model.MemberListQuery{})
	require.NoError(t, err)
	assert.Empty(t, gotRawQuery, "zero-value filters must not appear in the URL")
}

func TestMemberGetEscapesID(t *testing.T) {
	var gotPath string

	mux := http.NewServeMux()
	mux.HandleFunc("/members/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(model.MemberWithMembership{
			Member: model.Member{ID: "weird/id", Name: "Arun Verma"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-1", "refresh-1")

	member, err := client.Members.Get(context.Background(), "weird/id")
	require.NoError(t, err)
	assert.Equal(t, "Arun Verma", member.Name)
	assert.Equal(t, "/members/weird%2Fid", gotPath)
}

func TestMemberNotFoundSurfacesDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/members/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Member not found"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-1", "refresh-1")

	_, err := client.Members.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Member not found", ErrorMessage(err))
}

func TestGymUpdateRefreshesSessionCopy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gym/current", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		var req model.UpdateGymRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(model.Gym{ID: "gym-1", Name: *req.Name})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	signIn(store, "access-1", "refresh-1")

	name := "Ironworks Fitness Annexe"
	_, err := client.Gym.Update(context.Background(), model.UpdateGymRequest{Name: &name})
	require.NoError(t, err)

	snap := store.Snapshot()
	require.NotNil(t, snap.Gym)
	assert.Equal(t, name, snap.Gym.Name, "session copy must track the server state")
	assert.Equal(t, "access-1", snap.AccessToken, "profile update must not touch tokens")
}
