package compressors

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediacompress/internal/domain/entities"
)

type call struct {
	name string
	args []string
}

// fakeRunner записывает вызовы и выполняет заданное действие вместо утилиты
type fakeRunner struct {
	calls  []call
	action func(args []string) error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if f.action != nil {
		return nil, f.action(args)
	}
	return nil, nil
}

func TestGhostscriptCompressor_BuildArgs(t *testing.T) {
	g := NewGhostscriptCompressor("", &fakeRunner{})
	config := entities.NewCompressionConfig(entities.PresetPrepress)

	args := g.BuildArgs("/tmp/in 1.pdf", "/tmp/out 1.pdf", config)

	assert.Equal(t, []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/prepress",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-dSAFER",
		"-sOutputFile=/tmp/out 1.pdf",
		"/tmp/in 1.pdf",
	}, args)
	assert.Equal(t, entities.EngineGhostscript, g.Name())
}

func TestGhostscriptCompressor_Compress(t *testing.T) {
	runner := &fakeRunner{}
	g := NewGhostscriptCompressor("/usr/bin/gs", runner)

	err := g.Compress(context.Background(), "in.pdf", "out.pdf", entities.NewCompressionConfig(entities.PresetEbook))
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "/usr/bin/gs", runner.calls[0].name)
	assert.Contains(t, runner.calls[0].args, "-dPDFSETTINGS=/ebook")
}

func TestGhostscriptCompressor_Failure(t *testing.T) {
	runner := &fakeRunner{action: func([]string) error { return errors.New("exit status 1") }}
	g := NewGhostscriptCompressor("gs", runner)

	err := g.Compress(context.Background(), "in.pdf", "out.pdf", entities.NewCompressionConfig(entities.PresetPrepress))
	assert.ErrorIs(t, err, entities.ErrToolInvocationFailure)
}

// indexOf возвращает позицию пары "flag value" в аргументах
func indexOf(args []string, flag, value string) int {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag && args[i+1] == value {
			return i
		}
	}
	return -1
}

func TestFFmpegTranscoder_BuildArgs(t *testing.T) {
	tr := NewFFmpegTranscoder("", "", entities.DefaultVideoCRF, &fakeRunner{})

	args := tr.BuildArgs("/videos/my clip.mov", "/videos/my clip-small.mov")

	assert.GreaterOrEqual(t, indexOf(args, "-i", "/videos/my clip.mov"), 0)
	assert.GreaterOrEqual(t, indexOf(args, "-vcodec", "libx264"), 0)
	assert.GreaterOrEqual(t, indexOf(args, "-crf", "28"), 0)
	assert.Contains(t, args, "/videos/my clip-small.mov")
	assert.Contains(t, args, "-y")
	assert.Less(t, indexOf(args, "-i", "/videos/my clip.mov"), indexOf(args, "-crf", "28"))
}

func TestProtectPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"clip.mp4", "clip.mp4"},
		{"/abs/clip.mp4", "/abs/clip.mp4"},
		{"-dash.mp4", "file:-dash.mp4"},
		{"a:b.mp4", "file:a:b.mp4"},
		{"dir/a:b.mp4", "dir/a:b.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, protectPath(tt.input))
		})
	}
}

func TestFFmpegTranscoder_FailureRemovesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "clip-small.mp4")

	runner := &fakeRunner{action: func([]string) error {
		require.NoError(t, os.WriteFile(output, []byte("partial"), 0o644))
		return errors.New("exit status 1")
	}}
	tr := NewFFmpegTranscoder("ffmpeg", "libx264", 28, runner)

	err := tr.Transcode(context.Background(), filepath.Join(dir, "clip.mp4"), output)
	assert.ErrorIs(t, err, entities.ErrToolInvocationFailure)
	assert.NoFileExists(t, output)
}

func TestFFmpegTranscoder_FailureKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "clip-small.mp4")
	require.NoError(t, os.WriteFile(output, []byte("previous run"), 0o644))

	runner := &fakeRunner{action: func([]string) error { return errors.New("invalid data found") }}
	tr := NewFFmpegTranscoder("ffmpeg", "libx264", 28, runner)

	err := tr.Transcode(context.Background(), filepath.Join(dir, "clip.mp4"), output)
	assert.Error(t, err)
	assert.FileExists(t, output)
}

func TestPDFCPUCompressor_InvalidInput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/proc/nonexistent-config")
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(input, []byte("not a pdf"), 0o644))

	c := NewPDFCPUCompressor(nil)
	err := c.Compress(context.Background(), input, filepath.Join(dir, "out.pdf"), entities.NewCompressionConfig(entities.PresetDefault))
	assert.ErrorIs(t, err, entities.ErrToolInvocationFailure)
	assert.Equal(t, entities.EnginePDFCPU, c.Name())
}

func TestPDFCPUCompressor_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPDFCPUCompressor(nil).Compress(ctx, "in.pdf", "out.pdf", entities.NewCompressionConfig(entities.PresetDefault))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUniPDFCompressor_RequiresLicense(t *testing.T) {
	t.Setenv("UNIDOC_LICENSE_API_KEY", "")

	c := NewUniPDFCompressor()
	err := c.Compress(context.Background(), "in.pdf", "out.pdf", entities.NewCompressionConfig(entities.PresetEbook))

	assert.ErrorIs(t, err, entities.ErrToolInvocationFailure)
	assert.ErrorIs(t, err, ErrUniPDFLicenseMissing)
}
