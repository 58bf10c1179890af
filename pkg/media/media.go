package media

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Processor generates derived media for an uploaded file. It runs after the
// write that referenced the file has committed; the caller logs failures and
// moves on, so a broken image can never fail a post or profile write.
type Processor interface {
	GenerateThumbnail(path string) error
}

// LocalProcessor resizes images stored on the local filesystem under Root.
type LocalProcessor struct {
	Root    string
	MaxSize int
}

// NewLocalProcessor creates a LocalProcessor with the default 800px bound.
func NewLocalProcessor(root string) *LocalProcessor {
	return &LocalProcessor{Root: root, MaxSize: 800}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// GenerateThumbnail downscales the image in place when it exceeds the size
// bound. Non-image references and remote URLs are skipped silently.
func (p *LocalProcessor) GenerateThumbnail(path string) error {
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(path))] {
		return nil
	}

	full := filepath.Join(p.Root, filepath.Clean("/"+path))
	img, err := imaging.Open(full, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	if bounds.Dx() <= p.MaxSize && bounds.Dy() <= p.MaxSize {
		return nil
	}

	thumb := imaging.Fit(img, p.MaxSize, p.MaxSize, imaging.Lanczos)
	return imaging.Save(thumb, full)
}
