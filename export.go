package main

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"
)

// renderAndSave renders the icon at size and writes it as a PNG to path,
// replacing any existing file.
func renderAndSave(size int, path string) error {
	logrus.WithFields(logrus.Fields{"file": path, "size": size}).Debug("Rendering PNG")
	return savePNG(path, renderAt(size))
}

func savePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
