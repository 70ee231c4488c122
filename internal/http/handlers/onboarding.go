package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"artistly/internal/app"
	"artistly/internal/common"
	"artistly/internal/domain/application"
	"artistly/internal/http/middleware"
	"artistly/internal/http/response"
)

const onboardingSchemaURL = "https://artistly.local/schemas/onboarding.schema.json"

const onboardingSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "maxLength": 200},
    "bio": {"type": "string", "maxLength": 5000},
    "categories": {"type": ["array", "null"], "maxItems": 20, "items": {"type": "string"}},
    "languages": {"type": ["array", "null"], "maxItems": 20, "items": {"type": "string"}},
    "feeRange": {"type": "string", "maxLength": 100},
    "location": {"type": "string", "maxLength": 200},
    "profileImage": {"type": "string", "maxLength": 2048}
  }
}`

type OnboardingHandler struct {
	drafts     *app.DraftService
	workflow   *app.SubmissionWorkflow
	schema     *jsonschema.Schema
	limiter    middleware.Limiter
	submitRate int
}

func NewOnboardingHandler(drafts *app.DraftService, workflow *app.SubmissionWorkflow, limiter middleware.Limiter, submitRatePerMin int) (*OnboardingHandler, error) {
	schema, err := compileOnboardingSchema()
	if err != nil {
		return nil, err
	}
	return &OnboardingHandler{
		drafts:     drafts,
		workflow:   workflow,
		schema:     schema,
		limiter:    limiter,
		submitRate: submitRatePerMin,
	}, nil
}

func compileOnboardingSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(onboardingSchemaURL, strings.NewReader(onboardingSchema)); err != nil {
		return nil, fmt.Errorf("onboarding schema load failed: %w", err)
	}
	compiled, err := c.Compile(onboardingSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("onboarding schema compile failed: %w", err)
	}
	return compiled, nil
}

type validateResponse struct {
	Valid  bool              `json:"valid"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (h *OnboardingHandler) Options(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, application.DefaultOptions())
}

func (h *OnboardingHandler) Validate(w http.ResponseWriter, r *http.Request) {
	fields, err := h.decodeFields(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	result := h.drafts.Validate(fields)
	response.JSON(w, http.StatusOK, validateResponse{Valid: result.Valid(), Fields: result.Fields})
}

func (h *OnboardingHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := h.decodeFields(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.drafts.Create(r.Context(), fields)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *OnboardingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	draft, err := h.drafts.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, draft)
}

func (h *OnboardingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	fields, err := h.decodeFields(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.drafts.Update(r.Context(), id, fields)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *OnboardingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "submit:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, h.submitRate, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "submit rate limit exceeded", nil))
			return
		}
	}
	outcome, err := h.workflow.Submit(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, outcome)
}

// decodeFields checks the payload shape against the schema before decoding it.
func (h *OnboardingHandler) decodeFields(r *http.Request) (application.Fields, error) {
	var fields application.Fields
	data, err := readBody(r)
	if err != nil {
		return fields, err
	}
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return fields, common.NewError(common.CodeBadRequest, "invalid json body", err)
	}
	if err := h.schema.Validate(raw); err != nil {
		var invalid *jsonschema.ValidationError
		if errors.As(err, &invalid) {
			return fields, common.NewValidationError("invalid request", schemaFieldErrors(invalid))
		}
		return fields, common.NewError(common.CodeBadRequest, "invalid request", err)
	}
	if err := unmarshalStrict(data, &fields); err != nil {
		return fields, err
	}
	return fields, nil
}

// schemaFieldErrors keys the leaf violations by top-level property, keeping the
// first message per property.
func schemaFieldErrors(err *jsonschema.ValidationError) map[string]string {
	fields := make(map[string]string)
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			key := strings.TrimPrefix(e.InstanceLocation, "/")
			key, _, _ = strings.Cut(key, "/")
			if key == "" {
				key = "body"
			}
			if _, ok := fields[key]; !ok {
				fields[key] = e.Message
			}
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)
	return fields
}
