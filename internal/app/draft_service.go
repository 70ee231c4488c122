package app

import (
	"context"

	"artistly/internal/common"
	"artistly/internal/domain/application"
)

type DraftService struct {
	drafts application.DraftRepository
}

func NewDraftService(drafts application.DraftRepository) *DraftService {
	return &DraftService{drafts: drafts}
}

// Create stores an unvalidated draft; validation happens on submit.
func (s *DraftService) Create(ctx context.Context, fields application.Fields) (*application.Draft, error) {
	var draft application.Draft
	draft.Apply(fields)
	return s.drafts.Create(ctx, draft)
}

func (s *DraftService) Get(ctx context.Context, id common.UUID) (*application.Draft, error) {
	return s.drafts.Get(ctx, id)
}

// Update edits a draft. A succeeded or failed draft returns to idle.
func (s *DraftService) Update(ctx context.Context, id common.UUID, fields application.Fields) (*application.Draft, error) {
	return s.drafts.Update(ctx, id, fields)
}

func (s *DraftService) Validate(fields application.Fields) application.ValidationResult {
	return Validate(fields)
}
