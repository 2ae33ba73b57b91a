package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_LabelStaysUnclamped(t *testing.T) {
	out := RenderProgress(125, 10)
	assert.Contains(t, out, "125%")
	assert.Equal(t, 10, strings.Count(out, filledBlock), "bar caps at full width")
}

func TestRenderProgress_PartialFill(t *testing.T) {
	out := RenderProgress(50, 10)
	assert.Contains(t, out, "50%")
	assert.Equal(t, 5, strings.Count(out, filledBlock))
	assert.Equal(t, 5, strings.Count(out, emptyBlock))
}

func TestRenderProgress_NegativeRendersEmptyBar(t *testing.T) {
	out := RenderProgress(-10, 8)
	assert.Equal(t, 0, strings.Count(out, filledBlock))
	assert.Equal(t, 8, strings.Count(out, emptyBlock))
}
