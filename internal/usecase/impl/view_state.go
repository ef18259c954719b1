// Package impl contains the implementation of the application's business logic.
package impl

import (
	"sync"

	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/errors"
)

// viewState tracks the loading flag and error slot one usecase exposes to
// its screens. Calls are numbered; a result arriving after a newer call has
// started is stale and must not clobber the newer call's state.
type viewState struct {
	mu         sync.Mutex
	generation uint64
	inflight   int
	lastError  string
}

// begin marks a call as started and returns its generation number.
func (v *viewState) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.generation++
	v.inflight++

	return v.generation
}

// finish records the outcome of a call. It reports whether the result is
// still relevant; stale results leave the error slot alone.
func (v *viewState) finish(gen uint64, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.inflight > 0 {
		v.inflight--
	}
	if gen != v.generation {
		return false
	}

	if err != nil {
		v.lastError = errorMessage(err)
	} else {
		v.lastError = ""
	}

	return true
}

// Loading reports whether any call is in flight.
func (v *viewState) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.inflight > 0
}

// LastError returns the last human-readable failure message, or "".
func (v *viewState) LastError() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.lastError
}

// errorMessage extracts the message a screen should display. Application
// errors carry a localized message; anything else surfaces verbatim, which
// for API failures is the server-supplied message.
func errorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}

	return err.Error()
}
