package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rumbo/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%. The percentage
// label stays unclamped past 100; the bar itself caps at full width. Color
// follows the progress band of the raw percentage.
func RenderProgress(pct int, width int) string {
	if width < 2 {
		width = 2
	}

	capped := pct
	if capped < 0 {
		capped = 0
	}
	if capped > 100 {
		capped = 100
	}

	filled := capped * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	style := BandColor(domain.BandFor(pct))

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}
