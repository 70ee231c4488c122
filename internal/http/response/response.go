package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"artistly/internal/common"
)

type ErrorCollector interface {
	IncErrors()
}

type collectorHolder struct {
	collector ErrorCollector
}

var errorCollector atomic.Value

// SetErrorCollector registers the sink counting server-side errors.
func SetErrorCollector(collector ErrorCollector) {
	if collector == nil {
		return
	}
	errorCollector.Store(collectorHolder{collector: collector})
}

type errorBody struct {
	Error errorPayload `json:"error"`
}

type errorPayload struct {
	Code      common.Code       `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

func JSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if value == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.Default().Error("response encode failed", slog.String("error", err.Error()))
	}
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	status := StatusFor(code)
	message := "internal error"
	retryable := false
	var coded *common.Error
	if errors.As(err, &coded) && code != common.CodeInternal {
		message = coded.Message
		retryable = coded.Retryable
	}
	if status >= http.StatusInternalServerError {
		if holder, ok := errorCollector.Load().(collectorHolder); ok {
			holder.collector.IncErrors()
		}
		if code == common.CodeInternal {
			slog.Default().Error("request failed", slog.String("error", err.Error()))
		}
	}
	JSON(w, status, errorBody{Error: errorPayload{Code: code, Message: message, Fields: common.FieldsOf(err), Retryable: retryable}})
}

func StatusFor(code common.Code) int {
	switch code {
	case common.CodeBadRequest:
		return http.StatusBadRequest
	case common.CodeValidation:
		return http.StatusUnprocessableEntity
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	case common.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
