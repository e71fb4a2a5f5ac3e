package game

import (
	"fmt"
	"path/filepath"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func soundtrackStatus(path string, playing bool) string {
	if path == "" {
		return "soundtrack: none (O to open)"
	}
	state := "paused"
	if playing {
		state = "playing"
	}
	return fmt.Sprintf("soundtrack: %s %s (M to toggle)", state, filepath.Base(path))
}
