package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"artistly/internal/common"
	"artistly/internal/domain/application"
)

const (
	submitSucceededMessage = "Application submitted successfully!"
	submitFailedMessage    = "Error submitting application. Please try again."
)

// Submitter delivers a validated draft to the remote side.
type Submitter interface {
	Submit(ctx context.Context, draft application.Draft) error
}

// SimulatedSubmitter stands in for the remote call: it waits for a fixed delay and
// succeeds unless a fault is injected.
type SimulatedSubmitter struct {
	delay time.Duration
	fault func(application.Draft) error
}

func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{delay: delay}
}

// WithFault makes every call return fault(draft) after the delay.
func (s *SimulatedSubmitter) WithFault(fault func(application.Draft) error) *SimulatedSubmitter {
	s.fault = fault
	return s
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, draft application.Draft) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if s.fault != nil {
		return s.fault(draft)
	}
	return nil
}

type Transition struct {
	DraftID common.UUID
	From    application.State
	To      application.State
	At      time.Time
}

// Outcome is the user-visible result of a submit attempt.
type Outcome struct {
	DraftID    common.UUID             `json:"draftId"`
	State      application.State       `json:"state"`
	Message    string                  `json:"message"`
	Retryable  bool                    `json:"retryable"`
	Submission *application.Submission `json:"submission,omitempty"`
}

type SubmissionWorkflow struct {
	drafts      application.DraftRepository
	submissions application.SubmissionRepository
	submitter   Submitter
	timeout     time.Duration
	recorder    Recorder
	observer    func(Transition)
	clock       func() time.Time
	logger      *slog.Logger
}

func NewSubmissionWorkflow(drafts application.DraftRepository, submissions application.SubmissionRepository, submitter Submitter, timeout time.Duration, recorder Recorder, logger *slog.Logger) *SubmissionWorkflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionWorkflow{
		drafts:      drafts,
		submissions: submissions,
		submitter:   submitter,
		timeout:     timeout,
		recorder:    recorderOrNoop(recorder),
		clock:       time.Now,
		logger:      logger,
	}
}

// WithObserver registers fn to receive every state transition of a submit.
func (w *SubmissionWorkflow) WithObserver(fn func(Transition)) *SubmissionWorkflow {
	w.observer = fn
	return w
}

// Submit validates the draft and, when valid, runs the remote call. An invalid
// draft never leaves idle. A failed call keeps the draft for a retry; a
// successful one files a pending submission and discards the draft.
func (w *SubmissionWorkflow) Submit(ctx context.Context, id common.UUID) (*Outcome, error) {
	// Validate the stored draft under the repository lock, not an earlier read.
	snapshot, previous, err := w.drafts.BeginSubmit(ctx, id, func(d application.Draft) error {
		return Validate(d.Fields()).Err()
	})
	if err != nil {
		return nil, err
	}
	w.transition(id, previous, application.StateSubmitting)

	// State writes after the call must land even if the caller went away.
	settleCtx := context.WithoutCancel(ctx)
	callCtx := ctx
	if w.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	if err := w.submitter.Submit(callCtx, *snapshot); err != nil {
		return w.fail(settleCtx, id, err)
	}
	created, err := w.submissions.Create(settleCtx, application.SubmissionFromDraft(*snapshot, w.clock().UTC()))
	if err != nil {
		return w.fail(settleCtx, id, err)
	}
	if err := w.drafts.SetState(settleCtx, id, application.StateSucceeded, ""); err != nil {
		return nil, err
	}
	w.transition(id, application.StateSubmitting, application.StateSucceeded)
	w.recorder.SubmissionFinished(application.StateSucceeded)
	if err := w.drafts.Delete(settleCtx, id); err != nil {
		w.logger.Warn("draft discard failed", slog.String("draft_id", id.String()), slog.String("error", err.Error()))
	}
	w.logger.Info("application submitted", slog.String("draft_id", id.String()), slog.String("submission_id", created.ID.String()))
	return &Outcome{DraftID: id, State: application.StateSucceeded, Message: submitSucceededMessage, Submission: created}, nil
}

func (w *SubmissionWorkflow) fail(ctx context.Context, id common.UUID, cause error) (*Outcome, error) {
	reason := "remote call failed"
	switch {
	case errors.Is(cause, context.DeadlineExceeded):
		reason = "remote call timed out"
	case errors.Is(cause, context.Canceled):
		reason = "remote call canceled"
	}
	if err := w.drafts.SetState(ctx, id, application.StateFailed, submitFailedMessage); err != nil {
		return nil, err
	}
	w.transition(id, application.StateSubmitting, application.StateFailed)
	w.recorder.SubmissionFinished(application.StateFailed)
	w.logger.Warn("application submit failed", slog.String("draft_id", id.String()), slog.String("reason", reason), slog.String("error", cause.Error()))
	outcome := &Outcome{DraftID: id, State: application.StateFailed, Message: submitFailedMessage, Retryable: true}
	failure := common.NewError(common.CodeUnavailable, submitFailedMessage, cause)
	failure.Retryable = true
	return outcome, failure
}

func (w *SubmissionWorkflow) transition(id common.UUID, from, to application.State) {
	if w.observer == nil {
		return
	}
	w.observer(Transition{DraftID: id, From: from, To: to, At: w.clock().UTC()})
}
