package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	db "github.com/pranav244872/skillswap/db/sqlc"
	"github.com/stretchr/testify/require"
)

func TestUpdateCurrentUser(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("linus", []string{"c"}, []string{"guitar"})
	server := newTestServer(t, store, nil)

	recorder := doRequest(t, server, http.MethodPut, "/users/me", gin.H{
		"bio":             "kernel hacker",
		"skills_to_teach": []string{"C", " Git ", "git"},
	}, user.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	rsp := decodeBody[userResponse](t, recorder)
	require.Equal(t, "linus", rsp.Name)
	require.Equal(t, "kernel hacker", rsp.Bio)
	require.Equal(t, []string{"c", "git"}, rsp.SkillsToTeach)
	require.Equal(t, []string{"guitar"}, rsp.SkillsToLearn)
}

func TestGetUserHidesEmail(t *testing.T) {
	store := newFakeStore()
	me := store.addUser("me", nil, nil)
	other := store.addUser("other", []string{"go"}, nil)
	server := newTestServer(t, store, nil)

	recorder := doRequest(t, server, http.MethodGet, "/users/"+itoa(other.ID), nil, me.ID)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody[map[string]any](t, recorder)
	require.NotContains(t, body, "email")
	require.Equal(t, "other", body["name"])

	recorder = doRequest(t, server, http.MethodGet, "/users/999", nil, me.ID)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(t, server, http.MethodGet, "/users/abc", nil, me.ID)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetUserStats(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("stats", []string{"go"}, []string{"rust"})
	store.users[user.ID] = func(u db.User) db.User {
		u.Xp = 1250
		u.Level = db.LevelForXP(1250)
		return u
	}(user)
	store.exchangeCounts = db.CountExchangesForUserRow{Total: 4, Active: 1, Completed: 2}
	server := newTestServer(t, store, nil)

	recorder := doRequest(t, server, http.MethodGet, "/users/"+itoa(user.ID)+"/stats", nil, user.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	rsp := decodeBody[userStatsResponse](t, recorder)
	require.Equal(t, int64(1250), rsp.Xp)
	require.Equal(t, int32(2), rsp.Level)
	require.Equal(t, int64(750), rsp.XPToNextLevel)
	require.Equal(t, int64(4), rsp.TotalExchanges)
	require.Equal(t, int64(1), rsp.ActiveExchanges)
	require.Equal(t, int64(2), rsp.CompletedExchanges)
	require.Equal(t, []string{"go"}, rsp.SkillsTeaching)

	recorder = doRequest(t, server, http.MethodGet, "/users/12345/stats", nil, user.ID)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListUsers(t *testing.T) {
	store := newFakeStore()
	me := store.addUser("me", nil, nil)
	tutor := store.addUser("tutor", []string{"guitar"}, nil)
	store.addUser("learner", nil, []string{"guitar"})
	server := newTestServer(t, store, nil)

	recorder := doRequest(t, server, http.MethodGet, "/users?skill=%20GUITAR%20", nil, me.ID)
	require.Equal(t, http.StatusOK, recorder.Code)
	users := decodeBody[[]userResponse](t, recorder)
	require.Len(t, users, 1)
	require.Equal(t, tutor.ID, users[0].ID)

	recorder = doRequest(t, server, http.MethodGet, "/users", nil, me.ID)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, server, http.MethodGet, "/users?skill=go&page_size=500", nil, me.ID)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
