package application

import (
	"context"

	"artistly/internal/common"
)

type DraftRepository interface {
	Create(ctx context.Context, draft Draft) (*Draft, error)
	Get(ctx context.Context, id common.UUID) (*Draft, error)
	// Update replaces the editable fields and resets a settled draft to idle.
	// It fails with CodeConflict while a submission is in flight.
	Update(ctx context.Context, id common.UUID, fields Fields) (*Draft, error)
	// BeginSubmit moves a settled draft to submitting and returns the snapshot to
	// submit with the state it left. It fails with CodeConflict when already
	// submitting. A non-nil check runs against the stored draft under the same
	// lock; its error is returned and the draft is left untouched.
	BeginSubmit(ctx context.Context, id common.UUID, check func(Draft) error) (*Draft, State, error)
	SetState(ctx context.Context, id common.UUID, state State, lastError string) error
	Delete(ctx context.Context, id common.UUID) error
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission Submission) (*Submission, error)
	Get(ctx context.Context, id common.UUID) (*Submission, error)
	List(ctx context.Context) ([]Submission, error)
	UpdateStatus(ctx context.Context, id common.UUID, status ReviewStatus) (*Submission, error)
}
