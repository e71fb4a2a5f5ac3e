// Command genassets writes the built-in star and whale sprites to PNG files,
// ready to be edited and referenced from the scene config.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/iburimskiy/star-whale/internal/assets"
	"github.com/iburimskiy/star-whale/internal/config"
	"github.com/iburimskiy/star-whale/internal/logger"
)

var (
	outFlag     = flag.String("out", "assets", "Output directory")
	configFlag  = flag.String("config", "", "Scene config to take the whale frame layout from")
	columnsFlag = flag.Int("columns", -1, "Frames per sheet row (0 = one row)")
	starFlag    = flag.Int("star", assets.StarSize, "Star sprite size in pixels")
	staticFlag  = flag.Bool("static", false, "Write a single whale frame instead of a sheet")
)

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func run() error {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}
	if *columnsFlag >= 0 {
		cfg.Whale.Columns = *columnsFlag
	}
	if *starFlag <= 0 {
		return fmt.Errorf("star size must be positive, got %d", *starFlag)
	}

	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", *outFlag, err)
	}

	starPath := filepath.Join(*outFlag, "star.png")
	if err := writePNG(starPath, assets.Star(*starFlag)); err != nil {
		return fmt.Errorf("write %s: %w", starPath, err)
	}
	logger.Info("Wrote %s", starPath)

	whale := assets.WhaleSheet(cfg.Whale)
	if *staticFlag {
		whale = assets.Whale(cfg.Whale.FrameWidth, cfg.Whale.FrameHeight)
	}
	whalePath := filepath.Join(*outFlag, "whale.png")
	if err := writePNG(whalePath, whale); err != nil {
		return fmt.Errorf("write %s: %w", whalePath, err)
	}
	b := whale.Bounds()
	logger.Info("Wrote %s (%dx%d)", whalePath, b.Dx(), b.Dy())
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
