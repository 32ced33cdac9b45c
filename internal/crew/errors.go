package crew

import "fmt"

// UnknownIntentError is the configuration error for an intent key absent
// from the effect catalog: there is no sensible context to score against, so
// the call fails instead of silently defaulting.
type UnknownIntentError struct {
	Key string
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("unknown intent %q", e.Key)
}

// PinnedCaptainError reports an explicitly requested captain that is not in
// the eligible officer pool (unowned or simply not in the roster).
type PinnedCaptainError struct {
	CaptainID string
}

func (e *PinnedCaptainError) Error() string {
	return fmt.Sprintf("pinned captain %q is not in the eligible officer pool", e.CaptainID)
}
