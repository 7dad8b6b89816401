package update

import (
	"fmt"
	"runtime"
	"strings"
)

func formatDuration(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	min := totalSec / 60
	sec := totalSec % 60
	return fmt.Sprintf("%02d:%02d", min, sec)
}

func progressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func speechEngineName(muted bool) string {
	if muted {
		return "none"
	}
	switch runtime.GOOS {
	case "darwin":
		return "say"
	case "linux":
		return "espeak"
	default:
		return "unsupported"
	}
}
