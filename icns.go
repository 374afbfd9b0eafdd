package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/jackmordaunt/icns/v3"
	"github.com/sirupsen/logrus"
)

// icnsFiles is the .iconset layout iconutil expects.
var icnsFiles = []iconFile{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
}

// iconsetTypes maps iconset file names to ICNS element types.
var iconsetTypes = map[string]string{
	"icon_16x16.png":      "icp4",
	"icon_16x16@2x.png":   "ic11",
	"icon_32x32.png":      "icp5",
	"icon_32x32@2x.png":   "ic12",
	"icon_128x128.png":    "ic07",
	"icon_128x128@2x.png": "ic13",
	"icon_256x256.png":    "ic08",
	"icon_256x256@2x.png": "ic14",
	"icon_512x512.png":    "ic09",
}

// iconCompiler turns a staged .iconset directory into an .icns file.
type iconCompiler interface {
	Compile(ctx context.Context, iconsetDir, outPath string) error
}

// compileError reports a failed compiler run along with its diagnostics.
type compileError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *compileError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %s", e.Tool, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *compileError) Unwrap() error { return e.Err }

// iconutil shells out to macOS iconutil.
type iconutil struct {
	path string
}

func (c iconutil) Compile(ctx context.Context, iconsetDir, outPath string) error {
	cmd := exec.CommandContext(ctx, c.path, "-c", "icns", iconsetDir, "-o", outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &compileError{
			Tool:   filepath.Base(c.path),
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}

// nativeICNS packs the staged PNGs without any external tool.
type nativeICNS struct{}

func (nativeICNS) Compile(_ context.Context, iconsetDir, outPath string) error {
	set := &icns.IconSet{}
	for _, f := range icnsFiles {
		img, err := gg.LoadPNG(filepath.Join(iconsetDir, f.name))
		if err != nil {
			return &compileError{Tool: "icns encoder", Err: err}
		}
		set.Icons = append(set.Icons, &icns.Icon{
			Type:  icns.OsType{ID: iconsetTypes[f.name], Size: uint(f.size)},
			Image: img,
		})
	}

	var buf bytes.Buffer
	if _, err := set.WriteTo(&buf); err != nil {
		return &compileError{Tool: "icns encoder", Err: err}
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

// stageIconset renders every icnsFiles entry into dir.
func stageIconset(dir string) error {
	for _, f := range icnsFiles {
		if err := renderAndSave(f.size, filepath.Join(dir, f.name)); err != nil {
			return err
		}
	}
	return nil
}

// buildICNS stages an iconset in a temporary directory and compiles it to
// outPath. Compiler failures are reported on out as warnings and, when
// fallback is set, retried with it. The staging directory is always
// removed.
func buildICNS(ctx context.Context, outPath string, compiler, fallback iconCompiler, out io.Writer) error {
	dir, err := os.MkdirTemp("", "*.iconset")
	if err != nil {
		return fmt.Errorf("create iconset dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logrus.WithError(err).WithField("dir", dir).Warn("Failed to remove iconset dir")
		}
	}()

	if err := stageIconset(dir); err != nil {
		return err
	}
	logrus.WithField("dir", dir).Debug("Staged iconset")

	name := filepath.Base(outPath)
	err = compiler.Compile(ctx, dir, outPath)
	if err == nil {
		fmt.Fprintf(out, "Created %s (macOS)\n", name)
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	fmt.Fprintf(out, "Warning: %v\n", err)
	logrus.WithError(err).Warn("ICNS compile failed")

	if fallback == nil {
		return nil
	}
	if err := fallback.Compile(ctx, dir, outPath); err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
		logrus.WithError(err).Warn("Native ICNS encode failed")
		return nil
	}
	fmt.Fprintf(out, "Created %s (native encoder)\n", name)
	return nil
}
