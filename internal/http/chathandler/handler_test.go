package chathandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatrelaygo/internal/presence"
	"chatrelaygo/internal/services/register"
	"chatrelaygo/internal/storage/credentials"
)

func newTestRouter(t *testing.T) (*gin.Engine, *presence.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := presence.NewRegistry()
	svc := register.NewRegisterService(credentials.NewMemory())
	engine := gin.New()
	New(svc, reg).Register(engine)
	return engine, reg
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := postJSON(engine, "/register", `{"name":"alice","password":"hunter2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully", resp.Message)

	// Second registration under the same name is rejected.
	rec = postJSON(engine, "/register", `{"name":"alice","password":"different"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "User already exists", resp.Message)
}

func TestRegisterEndpointRejectsMissingFields(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := postJSON(engine, "/register", `{"name":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActiveUsersEndpoint(t *testing.T) {
	engine, reg := newTestRouter(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/active-users", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ActiveUsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.ActiveUsers)

	reg.Activate("c1", "alice", "lobby")
	reg.Activate("c2", "bob", "den")

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/active-users", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []presence.ActiveUser{
		{Name: "alice", Room: "lobby"},
		{Name: "bob", Room: "den"},
	}, resp.ActiveUsers)
}
