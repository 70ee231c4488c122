package memory

import (
	"context"
	"sync"
	"time"

	"artistly/internal/common"
	"artistly/internal/domain/application"
)

type DraftRepository struct {
	mu     sync.Mutex
	drafts map[common.UUID]*application.Draft
	clock  func() time.Time
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[common.UUID]*application.Draft), clock: time.Now}
}

func (r *DraftRepository) Create(_ context.Context, d application.Draft) (*application.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = common.NewUUID()
	now := r.clock().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	d.State = application.StateIdle
	r.drafts[d.ID] = cloneDraft(&d)
	return cloneDraft(&d), nil
}

func (r *DraftRepository) Get(_ context.Context, id common.UUID) (*application.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.drafts[id]
	if d == nil {
		return nil, common.NewError(common.CodeNotFound, "draft not found", nil)
	}
	return cloneDraft(d), nil
}

func (r *DraftRepository) Update(_ context.Context, id common.UUID, fields application.Fields) (*application.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.drafts[id]
	if d == nil {
		return nil, common.NewError(common.CodeNotFound, "draft not found", nil)
	}
	if d.State == application.StateSubmitting {
		return nil, common.NewError(common.CodeConflict, "draft is being submitted", nil)
	}
	d.Apply(fields)
	d.State = application.StateIdle
	d.LastError = ""
	d.UpdatedAt = r.clock().UTC()
	return cloneDraft(d), nil
}

func (r *DraftRepository) BeginSubmit(_ context.Context, id common.UUID, check func(application.Draft) error) (*application.Draft, application.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.drafts[id]
	if d == nil {
		return nil, "", common.NewError(common.CodeNotFound, "draft not found", nil)
	}
	previous := d.State
	if previous == application.StateSubmitting {
		return nil, previous, common.NewError(common.CodeConflict, "submission already in progress", nil)
	}
	if check != nil {
		if err := check(*cloneDraft(d)); err != nil {
			return nil, previous, err
		}
	}
	d.State = application.StateSubmitting
	d.LastError = ""
	d.UpdatedAt = r.clock().UTC()
	return cloneDraft(d), previous, nil
}

func (r *DraftRepository) SetState(_ context.Context, id common.UUID, state application.State, lastError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.drafts[id]
	if d == nil {
		return common.NewError(common.CodeNotFound, "draft not found", nil)
	}
	d.State = state
	d.LastError = lastError
	d.UpdatedAt = r.clock().UTC()
	return nil
}

func (r *DraftRepository) Delete(_ context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[id]; !ok {
		return common.NewError(common.CodeNotFound, "draft not found", nil)
	}
	delete(r.drafts, id)
	return nil
}

func cloneDraft(d *application.Draft) *application.Draft {
	clone := *d
	clone.Categories = append([]string(nil), d.Categories...)
	clone.Languages = append([]string(nil), d.Languages...)
	return &clone
}
