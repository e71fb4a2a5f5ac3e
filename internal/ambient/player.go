// Package ambient plays an optional looping soundtrack behind the scene.
package ambient

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/star-whale/internal/logger"
)

// Swapped in tests so no audio device is needed.
var (
	speakerInit  = speaker.Init
	speakerClear = speaker.Clear
)

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// decoderFor picks a beep decoder from the file extension.
func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	}
	return nil, errors.New("unsupported file type: " + filepath.Ext(path))
}

// Player loops one soundtrack through the speaker.
type Player struct {
	volume float64

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	path     string

	paused   bool
	initDone bool
}

// NewPlayer returns an idle player. volume is in beep's base-2 scale:
// 0 keeps the file level, -1 halves it.
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Load replaces the current soundtrack with path and starts it looping.
func (p *Player) Load(path string) error {
	decode, err := decoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open soundtrack: %w", err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode soundtrack %s: %w", path, err)
	}

	if p.initDone {
		speakerClear()
	}
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		bufferSize := format.SampleRate.N(time.Second / 20)
		if err := speakerInit(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			// the old track was already cleared from the speaker
			p.closeStreamer()
			p.ctrl = nil
			p.path = ""
			p.paused = false
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	}
	p.closeStreamer()

	loop := beep.Loop(-1, streamer)
	vol := &effects.Volume{Streamer: loop, Base: 2, Volume: p.volume}
	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}

	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.path = path
	p.paused = false

	speaker.Play(ctrl)
	logger.Info("Soundtrack: playing %s (%d Hz)", path, format.SampleRate)
	return nil
}

// TogglePause pauses or resumes playback. It is a no-op with nothing loaded.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
	logger.Debug("Soundtrack: paused=%v", p.paused)
}

func (p *Player) Playing() bool { return p.ctrl != nil && !p.paused }

func (p *Player) Path() string { return p.path }

func (p *Player) closeStreamer() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
}

// Close stops playback and releases the file.
func (p *Player) Close() {
	if p.initDone {
		speakerClear()
	}
	p.closeStreamer()
	p.ctrl = nil
}

// PickFile asks the user for a soundtrack. It returns "" when the dialog is
// cancelled.
func PickFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
