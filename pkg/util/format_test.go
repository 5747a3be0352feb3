package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$199.99", FormatPrice(floatPtr(199.99)))
	assert.Equal(t, "$200", FormatPrice(floatPtr(200)))
	assert.Equal(t, "$0.50", FormatPrice(floatPtr(0.5)))
	assert.Equal(t, "", FormatPrice(nil))
	assert.Equal(t, "", FormatPrice(floatPtr(0)))
	assert.Equal(t, "", FormatPrice(floatPtr(-5)))
}

func TestItemCountBadge(t *testing.T) {
	assert.Equal(t, "1 item", ItemCountBadge(1))
	assert.Equal(t, "3 items", ItemCountBadge(3))
	assert.Equal(t, "0 items", ItemCountBadge(0))
}

func floatPtr(f float64) *float64 {
	return &f
}
