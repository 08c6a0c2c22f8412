package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequestNormalizesEmail(t *testing.T) {
	var req CreateUserRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"full_name":"Ana","email":"  Ana@Example.COM ","password":"pw","id_role":2}`), &req))

	assert.Equal(t, "ana@example.com", req.Email)
	assert.Equal(t, "Ana", req.FullName)
	require.NotNil(t, req.RoleID)
	assert.Equal(t, uint(2), *req.RoleID)
}

func TestCreateUserRequestKeepsTypeErrors(t *testing.T) {
	var req CreateUserRequest
	err := json.Unmarshal([]byte(`{"full_name":"Ana","email":"a@b.io","password":"pw","id_role":"admin"}`), &req)

	var typeErr *json.UnmarshalTypeError
	require.True(t, errors.As(err, &typeErr), "got %v", err)
	assert.Equal(t, "id_role", typeErr.Field)
}
