package app

import (
	"io"
	"os"

	"github.com/google/uuid"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
	"mediacompress/internal/infrastructure/compressors"
	"mediacompress/internal/infrastructure/execution"
	"mediacompress/internal/infrastructure/logging"
	infraRepos "mediacompress/internal/infrastructure/repositories"
	"mediacompress/internal/infrastructure/validation"
	usecases "mediacompress/internal/usecase"
)

// Options параметры сборки приложения
type Options struct {
	ConfigRepo repositories.AppConfigRepository
	ConfigPath string
	Stdout     io.Writer
	Stderr     io.Writer
}

// Application собранные зависимости одного запуска
type Application struct {
	config          *entities.Config
	logger          repositories.Logger
	runID           string
	fileRepo        repositories.FileRepository
	compressionRepo repositories.ConfigRepository
	runner          repositories.CommandRunner
}

// New загружает конфигурацию и инициализирует логгеры
func New(opts Options) (*Application, error) {
	config, err := opts.ConfigRepo.Load(opts.ConfigPath)
	if err != nil {
		return nil, entities.ConfigError("ошибка загрузки конфигурации", err)
	}

	runID := newRunID()

	consoleOpts := []logging.ConsoleOption{logging.WithWriters(writerOr(opts.Stdout, os.Stdout), writerOr(opts.Stderr, os.Stderr))}
	if config.Output.NoColor {
		consoleOpts = append(consoleOpts, logging.WithoutColor())
	}
	loggers := []repositories.Logger{logging.NewConsoleLogger(config.Output.LogLevel, consoleOpts...)}

	fileLogger, err := logging.NewFileLogger(config.Output.LogFileName, config.Output.LogLevel, config.Output.LogToFile)
	if err != nil {
		return nil, entities.ConfigError("не удалось открыть файл лога "+config.Output.LogFileName, err)
	}
	// Типизированный nil в интерфейсе не передаем
	if fileLogger != nil {
		loggers = append(loggers, fileLogger.WithField("run_id", runID))
	}

	return &Application{
		config:          config,
		logger:          logging.NewMultiLogger(loggers...),
		runID:           runID,
		fileRepo:        infraRepos.NewFileSystemRepository(config.Processing.StagingDir),
		compressionRepo: infraRepos.NewConfigRepository(config.PDF.CompatibilityLevel, config.PDF.UniPDFLicenseKey),
		runner:          execution.NewRunner(config.Processing.Timeout()),
	}, nil
}

// PDFBatch собирает пакетную обработку PDF с движком из конфигурации
func (a *Application) PDFBatch() (*usecases.ProcessBatchUseCase, error) {
	preset, err := entities.ParsePreset(a.config.PDF.Preset)
	if err != nil {
		return nil, entities.ConfigError("некорректный пресет", err)
	}

	compression, err := a.compressionRepo.GetCompressionConfig(preset)
	if err != nil {
		return nil, entities.ConfigError("некорректные параметры сжатия", err)
	}

	// Выбираем компрессор на основе конфигурации
	var compressor repositories.PDFCompressor
	switch a.config.PDF.Engine {
	case entities.EnginePDFCPU:
		compressor = compressors.NewPDFCPUCompressor(a.logger)
	case entities.EngineUniPDF:
		compressor = compressors.NewUniPDFCompressor()
	case entities.EngineGhostscript, "":
		compressor = compressors.NewGhostscriptCompressor(a.config.PDF.GhostscriptPath, a.runner)
	default:
		return nil, entities.ConfigError(a.config.PDF.Engine, entities.ErrUnknownEngine)
	}

	var validator repositories.PDFValidator
	if a.config.PDF.ValidateOutput {
		validator = validation.NewPDFCPUValidator()
	}

	pdf := usecases.NewCompressPDFUseCase(compressor, a.fileRepo, validator, compression, a.logger, usecases.PDFOptions{
		Suffix:            a.config.PDF.Suffix,
		RunID:             a.runID,
		KeepFailedStaging: a.config.PDF.KeepFailedStaging,
	})

	a.logger.Debug("PDF: движок %s, пресет %s, совместимость %s",
		compressor.Name(), compression.Preset, compression.CompatibilityLevel)

	return usecases.NewProcessBatchUseCase(pdf, a.logger, a.runID), nil
}

// VideoBatch собирает пакетную обработку видео через ffmpeg
func (a *Application) VideoBatch() (*usecases.ProcessBatchUseCase, error) {
	transcoder := compressors.NewFFmpegTranscoder(a.config.Video.FFmpegPath, a.config.Video.Codec, a.config.Video.CRF, a.runner)
	video := usecases.NewCompressVideoUseCase(transcoder, a.fileRepo, a.logger, a.config.Video.Suffix)

	a.logger.Debug("Видео: кодек %s, CRF %d", a.config.Video.Codec, a.config.Video.CRF)

	return usecases.NewProcessBatchUseCase(video, a.logger, a.runID), nil
}

// Close закрывает логгеры
func (a *Application) Close() error {
	return a.logger.Close()
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

