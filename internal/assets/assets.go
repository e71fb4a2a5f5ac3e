// Package assets loads the scene sprites from disk and draws the built-in
// ones used when no file is configured.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/iburimskiy/star-whale/internal/config"
)

// Load decodes a PNG or JPEG file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("sprite %s (%s) is empty", path, format)
	}
	return img, nil
}

// LoadOr loads path, or calls fallback when path is empty.
func LoadOr(path string, fallback func() image.Image) (image.Image, error) {
	if path == "" {
		return fallback(), nil
	}
	return Load(path)
}

// CheckSheet reports an error when a sheet of size b cannot hold every frame
// the whale will ask for.
func CheckSheet(b image.Rectangle, w config.WhaleConfig) error {
	frames := w.MaxFrame + 1
	cols := w.SheetColumns()
	rows := (frames + cols - 1) / cols
	if frames < cols {
		cols = frames
	}
	needW, needH := cols*w.FrameWidth, rows*w.FrameHeight
	if b.Dx() < needW || b.Dy() < needH {
		return fmt.Errorf("whale sheet is %dx%d, %d frames of %dx%d in %d columns need %dx%d",
			b.Dx(), b.Dy(), frames, w.FrameWidth, w.FrameHeight, w.SheetColumns(), needW, needH)
	}
	return nil
}
