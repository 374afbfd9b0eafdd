package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/fogleman/gg"
	"github.com/jackmordaunt/icns/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompiler records the staged iconset and writes a placeholder bundle.
type fakeCompiler struct {
	err      error
	dir      string
	files    []string
	sizes    map[string]int
	compiled int
}

func (f *fakeCompiler) Compile(_ context.Context, iconsetDir, outPath string) error {
	f.compiled++
	f.dir = iconsetDir
	f.sizes = map[string]int{}
	entries, err := os.ReadDir(iconsetDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		f.files = append(f.files, e.Name())
		img, err := gg.LoadPNG(filepath.Join(iconsetDir, e.Name()))
		if err != nil {
			return err
		}
		f.sizes[e.Name()] = img.Bounds().Dx()
	}
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("icns"), 0o644)
}

func TestBuildICNS_StagesNineFiles(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.icns")
	fc := &fakeCompiler{}
	var buf bytes.Buffer

	require.NoError(t, buildICNS(context.Background(), out, fc, nil, &buf))

	want := make([]string, 0, len(icnsFiles))
	for _, f := range icnsFiles {
		want = append(want, f.name)
		assert.Equal(t, f.size, fc.sizes[f.name], "size of %s", f.name)
	}
	sort.Strings(want)
	assert.Equal(t, want, fc.files)
	assert.True(t, strings.HasSuffix(fc.dir, ".iconset"), "staging dir %q", fc.dir)
	assert.Equal(t, "Created icon.icns (macOS)\n", buf.String())
	assert.FileExists(t, out)
}

func TestBuildICNS_RemovesStagingDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.icns")
	fc := &fakeCompiler{}
	require.NoError(t, buildICNS(context.Background(), out, fc, nil, &bytes.Buffer{}))
	assert.NoDirExists(t, fc.dir)
}

func TestBuildICNS_FailureIsWarning(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.icns")
	fc := &fakeCompiler{err: &compileError{Tool: "iconutil", Stderr: "boom", Err: errors.New("exit status 1")}}
	var buf bytes.Buffer

	require.NoError(t, buildICNS(context.Background(), out, fc, nil, &buf))

	assert.Equal(t, "Warning: iconutil failed: boom\n", buf.String())
	assert.NoFileExists(t, out)
	assert.NoDirExists(t, fc.dir)
}

func TestBuildICNS_FallbackAfterFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.icns")
	fc := &fakeCompiler{err: &compileError{Tool: "iconutil", Err: errors.New("not found")}}
	var buf bytes.Buffer

	require.NoError(t, buildICNS(context.Background(), out, fc, nativeICNS{}, &buf))

	assert.Equal(t, "Warning: iconutil failed: not found\nCreated icon.icns (native encoder)\n", buf.String())
	assert.FileExists(t, out)
	assert.NoDirExists(t, fc.dir)
}

func TestBuildICNS_FallbackNotUsedOnSuccess(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.icns")
	fallback := &fakeCompiler{}
	require.NoError(t, buildICNS(context.Background(), out, &fakeCompiler{}, fallback, &bytes.Buffer{}))
	assert.Zero(t, fallback.compiled)
}

func TestBuildICNS_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := filepath.Join(t.TempDir(), "icon.icns")
	fc := &fakeCompiler{err: errors.New("killed")}

	err := buildICNS(ctx, out, fc, nativeICNS{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, out)
}

func TestIconutil_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	c := iconutil{path: filepath.Join(dir, "no-such-iconutil")}

	err := c.Compile(context.Background(), dir, filepath.Join(dir, "icon.icns"))
	var ce *compileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "no-such-iconutil", ce.Tool)
	assert.Contains(t, err.Error(), "no-such-iconutil failed:")
}

func TestNativeICNS_Encodes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, stageIconset(dir))
	out := filepath.Join(t.TempDir(), "icon.icns")

	require.NoError(t, nativeICNS{}.Compile(context.Background(), dir, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "icns", string(data[:4]))

	// The decoder skips the small icp4/icp5 entries it does not know.
	desc, err := icns.Probe(bytes.NewReader(data))
	require.NoError(t, err)
	var ids []string
	for _, d := range desc {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"ic11", "ic12", "ic07", "ic13", "ic08", "ic14", "ic09"}, ids)

	largest, err := icns.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 512, largest.Bounds().Dx())
}

func TestNativeICNS_MissingFile(t *testing.T) {
	dir := t.TempDir()
	err := nativeICNS{}.Compile(context.Background(), dir, filepath.Join(dir, "icon.icns"))
	var ce *compileError
	assert.ErrorAs(t, err, &ce)
}

func TestIconsetTypes_CoverStagedFiles(t *testing.T) {
	for _, f := range icnsFiles {
		id, ok := iconsetTypes[f.name]
		assert.True(t, ok, "no ICNS type for %s", f.name)
		assert.Len(t, id, 4)
	}
	assert.Len(t, iconsetTypes, len(icnsFiles))
}
