package app

import "artistly/internal/domain/catalog"

// SyncFromExternalSignal seeds the category filter from a deep-link category.
// It reports false when current already reflects the signal so callers can skip
// the state write; repeated calls with the same signal are no-ops.
func SyncFromExternalSignal(current catalog.Selection, signal string) (catalog.Selection, bool) {
	if signal == "" {
		return current, false
	}
	if len(current.Categories) == 1 && current.Categories[0] == signal {
		return current, false
	}
	next := current.Clone()
	next.Categories = []string{signal}
	return next, true
}
