package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starfund/internal/errors"
)

func TestViewStateLoadingTracksInflightCalls(t *testing.T) {
	var v viewState
	assert.False(t, v.Loading())

	gen := v.begin()
	assert.True(t, v.Loading())

	require.True(t, v.finish(gen, nil))
	assert.False(t, v.Loading())
	assert.Empty(t, v.LastError())
}

func TestViewStateRecordsAndClearsError(t *testing.T) {
	var v viewState

	gen := v.begin()
	v.finish(gen, errors.New("boom"))
	assert.Equal(t, "boom", v.LastError())

	gen = v.begin()
	v.finish(gen, nil)
	assert.Empty(t, v.LastError())
}

func TestViewStateIgnoresStaleResults(t *testing.T) {
	var v viewState

	first := v.begin()
	second := v.begin()

	// The newer call resolves cleanly first.
	require.True(t, v.finish(second, nil))
	assert.Empty(t, v.LastError())

	// The superseded call's failure arrives late and must be dropped.
	require.False(t, v.finish(first, errors.New("stale failure")))
	assert.Empty(t, v.LastError())
	assert.False(t, v.Loading())
}
