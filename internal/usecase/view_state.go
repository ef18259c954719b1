package usecase

// ViewState exposes the per-usecase loading flag and last error message the
// screens render. The error slot holds a human-readable message, cleared by
// the next successful call.
type ViewState interface {
	Loading() bool
	LastError() string
}
