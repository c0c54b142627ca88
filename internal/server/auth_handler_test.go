package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/ats-inspector/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthHandler() *AuthHandler {
	svc, _ := testUserService()
	return NewAuthHandler(svc, testJWTService())
}

func TestAuthHandlerRegister(t *testing.T) {
	h := testAuthHandler()

	body := `{"name":"Jane Doe","email":"jane@example.com","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "jane@example.com", resp.User.Email)
}

func TestAuthHandlerRegisterInvalidBody(t *testing.T) {
	h := testAuthHandler()

	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlerRegisterShortPassword(t *testing.T) {
	h := testAuthHandler()

	body := `{"name":"Jane","email":"jane@example.com","password":"short"}`
	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlerRegisterDuplicate(t *testing.T) {
	h := testAuthHandler()
	body := `{"name":"Jane Doe","email":"jane@example.com","password":"password123"}`

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandlerLogin(t *testing.T) {
	h := testAuthHandler()

	registerBody := `{"name":"Jane Doe","email":"jane@example.com","password":"password123"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(registerBody)))
	require.Equal(t, http.StatusCreated, rec.Code)

	loginBody := `{"email":"jane@example.com","password":"password123"}`
	rec = httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(loginBody)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandlerLoginBadCredentials(t *testing.T) {
	h := testAuthHandler()

	loginBody := `{"email":"nobody@example.com","password":"password123"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(loginBody)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
