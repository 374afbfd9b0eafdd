package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// iconFile is an output file name and its pixel size.
type iconFile struct {
	name string
	size int
}

// flatIcons are the standalone PNGs written next to the containers.
var flatIcons = []iconFile{
	{"32x32.png", 32},
	{"128x128.png", 128},
	{"128x128@2x.png", 256},
	{"icon.png", 512},
}

const (
	icoName  = "icon.ico"
	icnsName = "icon.icns"
)

// Generator writes the full icon family into Dir.
type Generator struct {
	Dir      string
	Compiler iconCompiler
	Fallback iconCompiler // optional, used when Compiler fails
	Out      io.Writer
}

// Run writes the flat PNGs, then icon.ico, then icon.icns. A failing ICNS
// compiler only produces a warning; any other error aborts the run and
// leaves already written files in place.
func (g *Generator) Run(ctx context.Context) error {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", g.Dir, err)
	}

	for _, f := range flatIcons {
		if err := renderAndSave(f.size, filepath.Join(g.Dir, f.name)); err != nil {
			return err
		}
		fmt.Fprintf(g.Out, "Created %s (%dx%d)\n", f.name, f.size, f.size)
	}

	if err := writeICO(filepath.Join(g.Dir, icoName), icoSizes); err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "Created %s (multi-size)\n", icoName)

	if err := buildICNS(ctx, filepath.Join(g.Dir, icnsName), g.Compiler, g.Fallback, g.Out); err != nil {
		return err
	}

	fmt.Fprintln(g.Out, "\nAll icons generated!")
	return nil
}
