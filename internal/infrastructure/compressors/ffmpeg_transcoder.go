package compressors

import (
	"context"
	"os"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
)

// FFmpegTranscoder перекодирует видео через ffmpeg с фиксированными кодеком и CRF
type FFmpegTranscoder struct {
	binary string
	codec  string
	crf    int
	runner repositories.CommandRunner
}

// NewFFmpegTranscoder создает новый транскодер
func NewFFmpegTranscoder(binary, codec string, crf int, runner repositories.CommandRunner) *FFmpegTranscoder {
	if binary == "" {
		binary = "ffmpeg"
	}
	if codec == "" {
		codec = entities.DefaultVideoCodec
	}
	return &FFmpegTranscoder{
		binary: binary,
		codec:  codec,
		crf:    crf,
		runner: runner,
	}
}

// BuildArgs строит аргументы ffmpeg; -y, так как запуск неинтерактивный
func (t *FFmpegTranscoder) BuildArgs(inputPath, outputPath string) []string {
	return ffmpeg.Input(protectPath(inputPath)).
		Output(protectPath(outputPath), ffmpeg.KwArgs{
			"vcodec": t.codec,
			"crf":    strconv.Itoa(t.crf),
		}).
		OverWriteOutput().
		GetArgs()
}

// Transcode запускает ffmpeg; при ошибке удаляет частично записанный результат
func (t *FFmpegTranscoder) Transcode(ctx context.Context, inputPath, outputPath string) error {
	_, statErr := os.Stat(outputPath)
	existedBefore := statErr == nil

	if _, err := t.runner.Run(ctx, t.binary, t.BuildArgs(inputPath, outputPath)...); err != nil {
		if !existedBefore {
			_ = os.Remove(outputPath)
		}
		return entities.ToolInvocationError(t.binary, err)
	}
	return nil
}

// protectPath не дает ffmpeg принять имя файла за опцию или протокол ("a:b.mp4")
func protectPath(path string) string {
	if strings.HasPrefix(path, "-") {
		return "file:" + path
	}
	if i := strings.Index(path, ":"); i > 0 && !strings.ContainsAny(path[:i], `/\`) {
		return "file:" + path
	}
	return path
}
