package report

import (
	"io"

	"github.com/harrison/rgrep/internal/config"
	"github.com/harrison/rgrep/internal/logger"
)

// ResolveColor decides whether output to w should be styled.
// Auto mode defers to logger.AutoColor so results and diagnostics agree.
func ResolveColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return logger.AutoColor(w)
	}
}
