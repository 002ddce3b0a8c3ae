package usecases

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
)

// recordingLogger собирает сообщения по уровням
type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debug(f string, a ...interface{})   { l.log("DEBUG", f, a...) }
func (l *recordingLogger) Info(f string, a ...interface{})    { l.log("INFO", f, a...) }
func (l *recordingLogger) Warning(f string, a ...interface{}) { l.log("WARNING", f, a...) }
func (l *recordingLogger) Error(f string, a ...interface{})   { l.log("ERROR", f, a...) }
func (l *recordingLogger) Success(f string, a ...interface{}) { l.log("SUCCESS", f, a...) }
func (l *recordingLogger) Close() error                       { return nil }

func (l *recordingLogger) WithField(string, interface{}) repositories.Logger { return l }

func (l *recordingLogger) withLevel(level string) []string {
	var out []string
	for _, e := range l.entries {
		if strings.HasPrefix(e, level+": ") {
			out = append(out, strings.TrimPrefix(e, level+": "))
		}
	}
	return out
}

// fakeCompressor "сжимает" PDF, дописывая маркер к содержимому
type fakeCompressor struct {
	calls [][2]string
	fail  map[string]error // по содержимому входа
}

func (f *fakeCompressor) Name() string { return "fake" }

func (f *fakeCompressor) Compress(ctx context.Context, in, out string, config *entities.CompressionConfig) error {
	f.calls = append(f.calls, [2]string{in, out})
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	if err, ok := f.fail[string(data)]; ok {
		return err
	}
	return os.WriteFile(out, []byte("compressed:"+config.Preset.String()+":"+string(data)), 0o644)
}

// fakeValidator отклоняет результат с заданным содержимым
type fakeValidator struct {
	reject string
	pages  int
}

func (v *fakeValidator) Validate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if v.reject != "" && strings.Contains(string(data), v.reject) {
		return entities.ErrInvalidPDF
	}
	return nil
}

func (v *fakeValidator) PageCount(string) (int, error) { return v.pages, nil }

// fakeTranscoder пишет половину входа в выходной файл
type fakeTranscoder struct {
	calls [][2]string
	fail  error
}

func (f *fakeTranscoder) Transcode(_ context.Context, in, out string) error {
	f.calls = append(f.calls, [2]string{in, out})
	if f.fail != nil {
		return f.fail
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	return os.WriteFile(out, data[:len(data)/2], 0o644)
}
