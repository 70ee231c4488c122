package app

import "artistly/internal/domain/application"

// Recorder receives domain events worth counting. Implementations must not block.
type Recorder interface {
	FilterApplied(facets string, matches int)
	SubmissionFinished(state application.State)
	ReviewDecided(status application.ReviewStatus)
}

type noopRecorder struct{}

func (noopRecorder) FilterApplied(string, int) {}

func (noopRecorder) SubmissionFinished(application.State) {}

func (noopRecorder) ReviewDecided(application.ReviewStatus) {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
