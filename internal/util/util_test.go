package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 VND", FormatVND(0))
	assert.Equal(t, "999 VND", FormatVND(999))
	assert.Equal(t, "1.000 VND", FormatVND(1000))
	assert.Equal(t, "1.500.000 VND", FormatVND(1500000))
	assert.Equal(t, "2.000.000.000 VND", FormatVND(2e9))
	assert.Equal(t, "-1.234 VND", FormatVND(-1234.4))
}

func TestFormatProgress(t *testing.T) {
	assert.Equal(t, "500.000 VND/1.000.000 VND (50%)", FormatProgress(500000, 1000000))
	assert.Equal(t, "0 VND/0 VND (0%)", FormatProgress(0, 0))
}
