package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistly/internal/common"
)

type countingCollector struct {
	errors atomic.Int64
}

func (c *countingCollector) IncErrors() {
	c.errors.Add(1)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestErrorValidationEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, common.NewValidationError("invalid application", map[string]string{"name": "Name is required"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	payload := decodeError(t, rec)
	assert.Equal(t, common.CodeValidation, payload.Code)
	assert.Equal(t, "invalid application", payload.Message)
	assert.Equal(t, map[string]string{"name": "Name is required"}, payload.Fields)
}

func TestErrorHidesInternalDetails(t *testing.T) {
	collector := &countingCollector{}
	SetErrorCollector(collector)
	rec := httptest.NewRecorder()

	Error(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	payload := decodeError(t, rec)
	assert.Equal(t, common.CodeInternal, payload.Code)
	assert.Equal(t, "internal error", payload.Message)
	assert.Equal(t, int64(1), collector.errors.Load())
}

func TestErrorUnavailableCountsAsServerError(t *testing.T) {
	collector := &countingCollector{}
	SetErrorCollector(collector)
	rec := httptest.NewRecorder()

	failure := common.NewError(common.CodeUnavailable, "Error submitting application. Please try again.", errors.New("timeout"))
	failure.Retryable = true

	Error(rec, failure)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	payload := decodeError(t, rec)
	assert.Equal(t, "Error submitting application. Please try again.", payload.Message)
	assert.True(t, payload.Retryable)
	assert.Equal(t, int64(1), collector.errors.Load())
}

func TestStatusFor(t *testing.T) {
	cases := map[common.Code]int{
		common.CodeBadRequest:  http.StatusBadRequest,
		common.CodeValidation:  http.StatusUnprocessableEntity,
		common.CodeNotFound:    http.StatusNotFound,
		common.CodeConflict:    http.StatusConflict,
		common.CodeRateLimited: http.StatusTooManyRequests,
		common.CodeUnavailable: http.StatusServiceUnavailable,
		common.CodeInternal:    http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, StatusFor(code), string(code))
	}
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusCreated, map[string]int{"count": 0})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"count":0}`, rec.Body.String())
}
