package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
)

func run(t *testing.T, fn func(c *gin.Context)) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestStoreNotFound(t *testing.T) {
	code, body := run(t, func(c *gin.Context) { Store(c, repository.ErrNotFound, "barber_schedule") })

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "barber_schedule_not_found", body.Code)
	assert.Equal(t, "Barber schedule not found.", body.Message)
}

func TestStoreConstraint(t *testing.T) {
	code, body := run(t, func(c *gin.Context) {
		Store(c, &repository.ConstraintError{Kind: repository.ConstraintUnique}, "user")
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "duplicate_value", body.Code)

	code, body = run(t, func(c *gin.Context) {
		Store(c, &repository.ConstraintError{Kind: repository.ConstraintForeignKey}, "city")
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "constraint_violation", body.Code)
}

func TestStoreUnexpected(t *testing.T) {
	code, body := run(t, func(c *gin.Context) { Store(c, errors.New("boom"), "role") })

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal_error", body.Code)
}

func TestBindingMalformed(t *testing.T) {
	var syntaxErr error = &json.SyntaxError{}
	code, body := run(t, func(c *gin.Context) { Binding(c, syntaxErr) })

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "malformed_body", body.Code)
	assert.Empty(t, body.Fields)
}
