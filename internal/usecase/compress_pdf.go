package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
)

// PDFOptions параметры сценария сжатия PDF
type PDFOptions struct {
	Suffix            string
	RunID             string
	KeepFailedStaging bool // не удалять временные файлы при ошибке, для разбора
}

// CompressPDFUseCase сценарий сжатия одного PDF файла через временные файлы
type CompressPDFUseCase struct {
	compressor repositories.PDFCompressor
	fileRepo   repositories.FileRepository
	validator  repositories.PDFValidator
	config     *entities.CompressionConfig
	logger     repositories.Logger
	options    PDFOptions
}

// NewCompressPDFUseCase создает новый сценарий сжатия PDF.
// validator может быть nil - тогда результат не проверяется.
func NewCompressPDFUseCase(
	compressor repositories.PDFCompressor,
	fileRepo repositories.FileRepository,
	validator repositories.PDFValidator,
	config *entities.CompressionConfig,
	logger repositories.Logger,
	options PDFOptions,
) *CompressPDFUseCase {
	if options.Suffix == "" {
		options.Suffix = entities.DefaultPDFSuffix
	}
	return &CompressPDFUseCase{
		compressor: compressor,
		fileRepo:   fileRepo,
		validator:  validator,
		config:     config,
		logger:     logger,
		options:    options,
	}
}

// Process сжимает один файл. Результат возвращается всегда, ошибка дублирует result.Error.
func (uc *CompressPDFUseCase) Process(ctx context.Context, inputPath string) (*entities.CompressionResult, error) {
	start := time.Now()

	outputPath, err := entities.OutputPath(inputPath, uc.options.Suffix)
	result := entities.NewCompressionResult(inputPath, outputPath)
	if err != nil {
		return uc.fail(result, entities.ConfigError("некорректное имя выходного файла", err))
	}
	defer func() { result.Duration = time.Since(start) }()

	uc.logger.Info("Сжатие %s -> %s", inputPath, outputPath)

	info, err := uc.fileRepo.GetFileInfo(inputPath)
	if err != nil {
		return uc.fail(result, entities.UnreadableSourceError(inputPath, err))
	}
	result.OriginalSize = info.Size

	staging, err := uc.createStaging()
	if err != nil {
		return uc.fail(result, err)
	}
	succeeded := false
	defer func() { uc.cleanupStaging(ctx, staging, succeeded) }()

	if err := uc.stageSource(inputPath, staging.input); err != nil {
		return uc.fail(result, err)
	}

	uc.logger.Debug("Движок %s, пресет %s, временные файлы %s, %s",
		uc.compressor.Name(), uc.config.Preset, staging.input.Name(), staging.output)

	if err := uc.compressor.Compress(ctx, staging.input.Name(), staging.output, uc.config); err != nil {
		return uc.fail(result, asToolError(uc.compressor.Name(), err))
	}

	if uc.validator != nil {
		if err := uc.validator.Validate(staging.output); err != nil {
			return uc.fail(result, entities.ToolInvocationError(uc.compressor.Name(), err))
		}
		if pages, err := uc.validator.PageCount(staging.output); err == nil {
			result.Pages = pages
		}
	}

	compressed, err := uc.fileRepo.GetFileInfo(staging.output)
	if err != nil {
		return uc.fail(result, entities.ToolInvocationError(uc.compressor.Name(), err))
	}

	if err := uc.fileRepo.MoveFile(staging.output, outputPath); err != nil {
		return uc.fail(result, entities.WriteFailureError(outputPath, err))
	}

	succeeded = true
	result.Succeed(compressed.Size)
	return result, nil
}

// stagingFiles пара временных файлов одного вызова
type stagingFiles struct {
	input  repositories.StagingFile
	output string
}

func (uc *CompressPDFUseCase) stagingPattern(kind string) string {
	if uc.options.RunID == "" {
		return fmt.Sprintf("pdfcompress-*-%s.pdf", kind)
	}
	return fmt.Sprintf("pdfcompress-%s-*-%s.pdf", uc.options.RunID, kind)
}

// createStaging создает два пустых временных файла с уникальными именами
func (uc *CompressPDFUseCase) createStaging() (*stagingFiles, error) {
	input, err := uc.fileRepo.CreateStagingFile(uc.stagingPattern("in"))
	if err != nil {
		return nil, entities.WriteFailureError("временный файл", err)
	}

	output, err := uc.fileRepo.CreateStagingFile(uc.stagingPattern("out"))
	if err != nil {
		input.Close()
		_ = uc.fileRepo.Remove(input.Name())
		return nil, entities.WriteFailureError("временный файл", err)
	}
	// Движок открывает выходной файл сам по имени
	name := output.Name()
	if err := output.Close(); err != nil {
		input.Close()
		_ = uc.fileRepo.Remove(input.Name())
		_ = uc.fileRepo.Remove(name)
		return nil, entities.WriteFailureError(name, err)
	}

	return &stagingFiles{input: input, output: name}, nil
}

// stageSource копирует исходный файл во временный и закрывает его
func (uc *CompressPDFUseCase) stageSource(inputPath string, staging repositories.StagingFile) error {
	src, err := uc.fileRepo.OpenSource(inputPath)
	if err != nil {
		staging.Close()
		return entities.UnreadableSourceError(inputPath, err)
	}
	defer src.Close()

	reader := &trackingReader{r: src}
	if _, err := io.Copy(staging, reader); err != nil {
		staging.Close()
		if reader.err != nil {
			return entities.UnreadableSourceError(inputPath, reader.err)
		}
		return entities.WriteFailureError(staging.Name(), err)
	}

	if err := staging.Close(); err != nil {
		return entities.WriteFailureError(staging.Name(), err)
	}
	return nil
}

// cleanupStaging удаляет временные файлы на всех путях выхода
func (uc *CompressPDFUseCase) cleanupStaging(ctx context.Context, staging *stagingFiles, succeeded bool) {
	if !succeeded && uc.options.KeepFailedStaging && ctx.Err() == nil {
		uc.logger.Warning("Временные файлы сохранены для анализа: %s, %s", staging.input.Name(), staging.output)
		return
	}

	for _, path := range []string{staging.input.Name(), staging.output} {
		if err := uc.fileRepo.Remove(path); err != nil {
			uc.logger.Warning("Не удалось удалить временный файл %s: %v", path, err)
		}
	}
}

func (uc *CompressPDFUseCase) fail(result *entities.CompressionResult, err error) (*entities.CompressionResult, error) {
	result.Fail(err)
	return result, err
}

// asToolError оборачивает ошибку движка, если она еще не классифицирована
func asToolError(tool string, err error) error {
	var pe *entities.ProcessingError
	if errors.As(err, &pe) {
		return err
	}
	return entities.ToolInvocationError(tool, err)
}

// trackingReader запоминает ошибку чтения, чтобы отличить ее от ошибки записи
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}
