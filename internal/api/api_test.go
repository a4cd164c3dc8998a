package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/auth"
	"github.com/yourname/befree/internal/config"
	"github.com/yourname/befree/internal/storage"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:          "development",
		LogLevel:     "info",
		ClientOrigin: "http://localhost:5173",
		DBFile:       filepath.Join(t.TempDir(), "db.json"),
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
	}
	logger := internal.NewTestLogger()
	users, logs, milestones := storage.NewFileRepositories(cfg.DBFile, logger)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	return NewRouter(NewApp(cfg, logger, users, logs, milestones, tokens))
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, r *gin.Engine, name, email, password string) (string, map[string]interface{}) {
	t.Helper()
	body := `{"name":"` + name + `","email":"` + email + `","password":"` + password + `"}`
	w := doJSON(r, "POST", "/api/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode(t, w)
	token, _ := resp["authToken"].(string)
	require.NotEmpty(t, token)
	payload, _ := resp["payload"].(map[string]interface{})
	require.NotNil(t, payload)
	return token, payload
}

func TestRootAndHealth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "GET", "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BeFree API", decode(t, w)["name"])

	w = doJSON(r, "GET", "/api/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestUnknownRoute(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, "GET", "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decode(t, w)["error"])
}

func TestSignup(t *testing.T) {
	r := setupRouter(t)

	_, payload := signup(t, r, "Ana", " Ana@X.com ", "p1")
	assert.Equal(t, "ana@x.com", payload["email"])
	assert.NotContains(t, payload, "passwordHash")

	// Missing fields.
	w := doJSON(r, "POST", "/api/auth/signup", `{"email":"x@y.z"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate email, case-insensitive.
	w = doJSON(r, "POST", "/api/auth/signup", `{"name":"Dup","email":"ANA@X.COM","password":"p2"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email address already in use", decode(t, w)["error"])
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)
	signup(t, r, "Ana", "ana@x.com", "p1")

	w := doJSON(r, "POST", "/api/auth/login", `{"email":"ana@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "POST", "/api/auth/login", `{"email":"nobody@x.com","password":"p1"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "POST", "/api/auth/login", `{"email":"ana@x.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/api/auth/login", `{"email":"ANA@x.com","password":"p1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.NotEmpty(t, resp["authToken"])
}

func TestVerifyAndLogout(t *testing.T) {
	r := setupRouter(t)
	token, payload := signup(t, r, "Ana", "ana@x.com", "p1")

	w := doJSON(r, "GET", "/api/auth/verify", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	verified := decode(t, w)["payload"].(map[string]interface{})
	assert.Equal(t, payload["id"], verified["id"])

	w = doJSON(r, "GET", "/api/auth/verify", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "GET", "/api/auth/verify", "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "POST", "/api/auth/logout", "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogsEndpoints(t *testing.T) {
	r := setupRouter(t)
	token, _ := signup(t, r, "Ana", "ana@x.com", "p1")

	w := doJSON(r, "GET", "/api/logs", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "POST", "/api/logs", `{"note":" rough day ","cravingLevel":7,"at":"2024-01-01"}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "rough day", created["note"])
	assert.Equal(t, float64(5), created["cravingLevel"])

	w = doJSON(r, "POST", "/api/logs", `{"note":"better","at":"2024-03-01"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "GET", "/api/logs", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 2)
	assert.Equal(t, "better", logs[0]["note"])

	w = doJSON(r, "GET", "/api/logs?limit=1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Len(t, logs, 1)
}

func TestMilestonesEndpoints(t *testing.T) {
	r := setupRouter(t)
	token, _ := signup(t, r, "Ana", "ana@x.com", "p1")

	w := doJSON(r, "GET", "/api/milestones", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	milestones := decode(t, w)["milestones"].([]interface{})
	require.Len(t, milestones, 6)
	first := milestones[0].(map[string]interface{})

	w = doJSON(r, "PATCH", "/api/milestones/"+first["id"].(string), `{"achieved":true}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["achieved"])

	w = doJSON(r, "PATCH", "/api/milestones/unknown-id", `{"achieved":true}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Milestone not found", decode(t, w)["error"])
}

func TestUpdateProfileEndpoint(t *testing.T) {
	r := setupRouter(t)
	token, _ := signup(t, r, "Ana", "ana@x.com", "p1")
	signup(t, r, "Ben", "ben@x.com", "p2")

	// The legacy username alias still works.
	w := doJSON(r, "PATCH", "/api/users/me", `{"username":"Ana Maria","addictionType":"vaping"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.Equal(t, "Ana Maria", updated["name"])
	assert.Equal(t, "vaping", updated["addictionType"])

	w = doJSON(r, "PATCH", "/api/users/me", `{"email":"BEN@x.com"}`, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	r := setupRouter(t)
	token, _ := signup(t, r, "Ana", "ana@x.com", "old-pass")

	w := doJSON(r, "PATCH", "/api/users/me/password", `{"currentPassword":"old-pass"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "PATCH", "/api/users/me/password", `{"currentPassword":"wrong","newPassword":"new-pass"}`, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Current password is incorrect", decode(t, w)["error"])

	w = doJSON(r, "PATCH", "/api/users/me/password", `{"currentPassword":"old-pass","newPassword":"new-pass"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password updated successfully", decode(t, w)["message"])

	w = doJSON(r, "POST", "/api/auth/login", `{"email":"ana@x.com","password":"new-pass"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, "POST", "/api/auth/login", `{"email":"ana@x.com","password":"old-pass"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
