package partials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "+2.10%", FormatPct(2.1))
	assert.Equal(t, "+0.00%", FormatPct(0))
	assert.Equal(t, "-3.50%", FormatPct(-3.5))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "52.0%", FormatFixed(52, 1))
	assert.Equal(t, "1%", FormatFixed(1, 0))
	assert.Equal(t, "6.4%", FormatFixed(6.4123, 1))
}

func TestReturnClass(t *testing.T) {
	assert.Equal(t, "positive", ReturnClass(0.1))
	assert.Equal(t, "negative", ReturnClass(-0.1))
}
