package game

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{75*time.Minute + 3*time.Second, "75:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSoundtrackStatus(t *testing.T) {
	tests := []struct {
		path    string
		playing bool
		want    string
	}{
		{"", false, "soundtrack: none (O to open)"},
		{"/music/deep.mp3", true, "soundtrack: playing deep.mp3 (M to toggle)"},
		{"/music/deep.mp3", false, "soundtrack: paused deep.mp3 (M to toggle)"},
	}
	for _, tt := range tests {
		if got := soundtrackStatus(tt.path, tt.playing); got != tt.want {
			t.Errorf("soundtrackStatus(%q, %v) = %q, want %q", tt.path, tt.playing, got, tt.want)
		}
	}
}
