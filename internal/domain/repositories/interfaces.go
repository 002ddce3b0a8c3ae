package repositories

import (
	"context"
	"io"

	"mediacompress/internal/domain/entities"
)

// PDFCompressor интерфейс для перезаписи PDF файлов
type PDFCompressor interface {
	Name() string
	Compress(ctx context.Context, inputPath, outputPath string, config *entities.CompressionConfig) error
}

// VideoTranscoder интерфейс для перекодирования видео
type VideoTranscoder interface {
	Transcode(ctx context.Context, inputPath, outputPath string) error
}

// PDFValidator проверяет результат сжатия
type PDFValidator interface {
	Validate(path string) error
	PageCount(path string) (int, error)
}

// CommandRunner запускает внешнюю утилиту без участия оболочки
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// StagingFile временный файл, принадлежащий одному вызову сжатия
type StagingFile interface {
	io.Writer
	Name() string
	Close() error
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	GetFileInfo(path string) (*entities.SourceFile, error)
	OpenSource(path string) (io.ReadCloser, error)
	CreateStagingFile(pattern string) (StagingFile, error)
	MoveFile(src, dst string) error
	Remove(path string) error
}

// ConfigRepository интерфейс для получения конфигурации сжатия
type ConfigRepository interface {
	GetCompressionConfig(preset entities.Preset) (*entities.CompressionConfig, error)
}
