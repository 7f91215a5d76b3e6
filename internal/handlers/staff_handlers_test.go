package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosered/backend/internal/models"
)

func TestStaffRoutesAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/admin/staff", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env.register("plain@test.com", "pw")
	rec = env.do(http.MethodGet, "/api/v1/admin/staff", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStaffCRUD(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin()

	rec := env.do(http.MethodPost, "/api/v1/admin/staff", map[string]any{
		"name": " Anna ",
		"role": "waiter",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var m models.StaffMember
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	require.Equal(t, "Anna", m.Name)

	rec = env.do(http.MethodPatch, "/api/v1/admin/staff/"+m.ID, map[string]any{"role": "chef"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.StaffMember
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "chef", updated.Role)
	require.Equal(t, "Anna", updated.Name)

	rec = env.do(http.MethodGet, "/api/v1/admin/staff", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.StaffMember
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = env.do(http.MethodDelete, "/api/v1/admin/staff/"+m.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/admin/staff", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Empty(t, list)
}

func TestCreateStaffValidationHTTP(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin()

	rec := env.do(http.MethodPost, "/api/v1/admin/staff", map[string]any{"name": "Anna"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchMissingStaff(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin()

	rec := env.do(http.MethodPatch, "/api/v1/admin/staff/no-such-id", map[string]any{"role": "chef"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
