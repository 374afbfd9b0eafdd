package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/sirupsen/logrus"
)

// icoSizes are the frames embedded in icon.ico, in file order.
var icoSizes = []int{16, 32, 48, 256}

// icoFrame renders one ICO frame. Sizes that are not multiples of 32 are
// always sampled from the 32 render, so 48 is upsized rather than
// downsized from 64 like renderAt would do.
func icoFrame(size int) image.Image {
	if size%gridSize != 0 {
		return resizeNearest(renderIcon(gridSize), size)
	}
	return renderIcon(size)
}

// writeICO writes a multi-resolution ICO containing one frame per size.
func writeICO(path string, sizes []int) error {
	frames := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		frames = append(frames, icoFrame(s))
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logrus.WithFields(logrus.Fields{"file": path, "frames": len(frames)}).Debug("Wrote ICO")
	return nil
}
