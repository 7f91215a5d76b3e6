package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	user := env.register("new@test.com", "secret")
	require.Equal(t, "new@test.com", user["email"])
	require.Equal(t, false, user["isAdmin"])
	// пароль не должен утекать в ответ
	require.NotContains(t, user, "password")

	// регистрация сразу открывает сессию
	rec := env.do(http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/register", map[string]any{"email": "  ", "password": "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/v1/register", map[string]any{"email": "a@test.com", "password": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.register("dup@test.com", "one")

	rec := env.do(http.MethodPost, "/api/v1/register", map[string]any{
		"email":    "DUP@test.com",
		"password": "two",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginCaseInsensitiveEmail(t *testing.T) {
	env := newTestEnv(t)

	env.register("a@test.com", "pw1")
	env.do(http.MethodPost, "/api/v1/logout", nil)

	rec := env.do(http.MethodPost, "/api/v1/login", map[string]any{
		"email":    "A@Test.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	env.register("a@test.com", "pw1")
	env.do(http.MethodPost, "/api/v1/logout", nil)

	rec := env.do(http.MethodPost, "/api/v1/login", map[string]any{
		"email":    "a@test.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutEndsSession(t *testing.T) {
	env := newTestEnv(t)

	env.register("a@test.com", "pw1")

	rec := env.do(http.MethodPost, "/api/v1/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// повторный logout — no-op
	rec = env.do(http.MethodPost, "/api/v1/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDefaultAdminCanLogin(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin()

	rec := env.do(http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"isAdmin":true`)
}
