package application

import (
	"strings"
	"time"

	"artistly/internal/common"
)

// State is the submission state of a draft.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type Draft struct {
	ID           common.UUID `json:"id"`
	Name         string      `json:"name"`
	Bio          string      `json:"bio"`
	Categories   []string    `json:"categories"`
	Languages    []string    `json:"languages"`
	FeeRange     string      `json:"feeRange"`
	Location     string      `json:"location"`
	ProfileImage string      `json:"profileImage,omitempty"`
	State        State       `json:"state"`
	LastError    string      `json:"lastError,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Fields is the user-editable part of a draft.
type Fields struct {
	Name         string   `json:"name"`
	Bio          string   `json:"bio"`
	Categories   []string `json:"categories"`
	Languages    []string `json:"languages"`
	FeeRange     string   `json:"feeRange"`
	Location     string   `json:"location"`
	ProfileImage string   `json:"profileImage,omitempty"`
}

func (d Draft) Fields() Fields {
	return Fields{
		Name:         d.Name,
		Bio:          d.Bio,
		Categories:   append([]string(nil), d.Categories...),
		Languages:    append([]string(nil), d.Languages...),
		FeeRange:     d.FeeRange,
		Location:     d.Location,
		ProfileImage: d.ProfileImage,
	}
}

// Apply overwrites the editable fields of the draft. Single-line fields are stored
// trimmed so the fee tier keeps its enumerated label.
func (d *Draft) Apply(f Fields) {
	d.Name = strings.TrimSpace(f.Name)
	d.Bio = f.Bio
	d.Categories = append([]string(nil), f.Categories...)
	d.Languages = append([]string(nil), f.Languages...)
	d.FeeRange = strings.TrimSpace(f.FeeRange)
	d.Location = strings.TrimSpace(f.Location)
	d.ProfileImage = f.ProfileImage
}

// ValidationResult maps each failing field to its first violation. Empty means valid.
type ValidationResult struct {
	Fields map[string]string `json:"fields,omitempty"`
}

func (r ValidationResult) Valid() bool {
	return len(r.Fields) == 0
}

// Err converts an invalid result into a validation error, nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return common.NewValidationError("invalid application", r.Fields)
}
