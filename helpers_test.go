package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig() Config {
	return Config{
		JWTSecret:      "test-secret",
		JWTTTLHours:    1,
		CookieName:     "token",
		CookieSameSite: http.SameSiteLaxMode,
		CORSOrigin:     "http://localhost:5173",
		Port:           "0",
	}
}

func newTestAPI(t *testing.T) (*api, *memoryStore, http.Handler) {
	t.Helper()
	mem := newMemoryStore()
	a := &api{cfg: testConfig(), users: mem, sessions: mem}
	return a, mem, a.routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

type loginData struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

func registerAndLogin(t *testing.T, h http.Handler, name, email, password string) loginData {
	t.Helper()
	rec, env := doJSON(t, h, http.MethodPost, "/api/v1/users/register",
		registerReq{Name: name, Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, rec.Code, "register: %s", env.Message)

	rec, env = doJSON(t, h, http.MethodPost, "/api/v1/users/login",
		loginReq{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login: %s", env.Message)

	var data loginData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data
}
