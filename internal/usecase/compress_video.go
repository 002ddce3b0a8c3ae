package usecases

import (
	"context"
	"time"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
)

// CompressVideoUseCase сценарий сжатия одного видеофайла.
// Временные файлы не используются: путь передается ffmpeg отдельным аргументом.
type CompressVideoUseCase struct {
	transcoder repositories.VideoTranscoder
	fileRepo   repositories.FileRepository
	logger     repositories.Logger
	suffix     string
}

// NewCompressVideoUseCase создает новый сценарий сжатия видео
func NewCompressVideoUseCase(
	transcoder repositories.VideoTranscoder,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
	suffix string,
) *CompressVideoUseCase {
	if suffix == "" {
		suffix = entities.DefaultVideoSuffix
	}
	return &CompressVideoUseCase{
		transcoder: transcoder,
		fileRepo:   fileRepo,
		logger:     logger,
		suffix:     suffix,
	}
}

// Process перекодирует один файл в {base}-small.{ext}
func (uc *CompressVideoUseCase) Process(ctx context.Context, inputPath string) (*entities.CompressionResult, error) {
	start := time.Now()

	outputPath, err := entities.OutputPath(inputPath, uc.suffix)
	result := entities.NewCompressionResult(inputPath, outputPath)
	if err != nil {
		result.Fail(entities.ConfigError("некорректное имя выходного файла", err))
		return result, result.Error
	}
	defer func() { result.Duration = time.Since(start) }()

	uc.logger.Info("Сжатие %s -> %s", inputPath, outputPath)

	info, err := uc.fileRepo.GetFileInfo(inputPath)
	if err != nil {
		result.Fail(entities.UnreadableSourceError(inputPath, err))
		return result, result.Error
	}
	result.OriginalSize = info.Size

	src, err := uc.fileRepo.OpenSource(inputPath)
	if err != nil {
		result.Fail(entities.UnreadableSourceError(inputPath, err))
		return result, result.Error
	}
	src.Close()

	if err := uc.transcoder.Transcode(ctx, inputPath, outputPath); err != nil {
		result.Fail(asToolError("ffmpeg", err))
		return result, result.Error
	}

	compressed, err := uc.fileRepo.GetFileInfo(outputPath)
	if err != nil {
		result.Fail(entities.WriteFailureError(outputPath, err))
		return result, result.Error
	}

	result.Succeed(compressed.Size)
	return result, nil
}
