package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"artistly/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	data, err := readBody(r)
	if err != nil {
		return err
	}
	return unmarshalStrict(data, dst)
}

// decodeOptionalJSON accepts an empty body and leaves dst untouched.
func decodeOptionalJSON(r *http.Request, dst any) error {
	data, err := readBody(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return unmarshalStrict(data, dst)
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, common.NewError(common.CodeBadRequest, "request body too large", err)
		}
		return nil, common.NewError(common.CodeBadRequest, "unable to read request body", err)
	}
	return data, nil
}

func unmarshalStrict(data []byte, dst any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return common.NewError(common.CodeBadRequest, "invalid json body", err)
	}
	return nil
}

func pathSegments(r *http.Request) []string {
	trimmed := strings.Trim(r.URL.Path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func segmentFromPath(r *http.Request, index int) (string, error) {
	segments := pathSegments(r)
	if index >= len(segments) || strings.TrimSpace(segments[index]) == "" {
		return "", common.NewError(common.CodeNotFound, "resource not found", nil)
	}
	return segments[index], nil
}

func idFromPath(r *http.Request, index int) (common.UUID, error) {
	value, err := segmentFromPath(r, index)
	if err != nil {
		return "", err
	}
	id, err := common.ParseUUID(value)
	if err != nil {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "invalid uuid"})
	}
	return id, nil
}
