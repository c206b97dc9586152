package debug

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/video"
)

// SavePNG encodes img to path.
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}

// SaveSnapshot writes fb to dir as <baseName>_<timestamp>.png and returns
// the path. An empty dir means the working directory.
func SaveSnapshot(fb *video.FrameBuffer, baseName, dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}

	name := fmt.Sprintf("%s_%s.png", baseName, time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := SavePNG(FrameImage(fb), path); err != nil {
		return "", err
	}

	slog.Info("Snapshot saved", "path", path, "size", fmt.Sprintf("%dx%d", video.Width, video.Height))
	return path, nil
}

// DumpVRAM writes the tile sheet and both tile maps into dir.
func DumpVRAM(reader video.MemoryReader, lcdc byte, dir string) error {
	images := map[string]image.Image{
		"tiles.png": TileSheet(reader),
		"map0.png":  BackgroundMap(reader, addr.TileMap0, lcdc),
		"map1.png":  BackgroundMap(reader, addr.TileMap1, lcdc),
	}
	for name, img := range images {
		if err := SavePNG(img, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	slog.Info("VRAM dumped", "dir", dir)
	return nil
}
