package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_IncludesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, 404, "Post not found", errors.New("record not found"))

	assert.Equal(t, 404, w.Code)

	var body struct {
		Error ErrorInfo `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Post not found", body.Error.Message)
	assert.Equal(t, "record not found", body.Error.Details)
}

func TestErrorResponse_NilErrorOmitsDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, 401, "Missing token", nil)

	assert.Equal(t, 401, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}

func TestErrorStatus_Mapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrorStatus(ErrPostNotFound))
	assert.Equal(t, http.StatusConflict, ErrorStatus(ErrAlreadyReposted))
	assert.Equal(t, http.StatusBadRequest, ErrorStatus(ErrSelfFollow))
	assert.Equal(t, http.StatusBadGateway, ErrorStatus(ErrStoreUnavailable))
	assert.Equal(t, http.StatusInternalServerError, ErrorStatus(errors.New("unmapped")))
}
