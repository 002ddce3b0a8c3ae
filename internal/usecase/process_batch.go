package usecases

import (
	"context"
	"path/filepath"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
)

// FileProcessor обрабатывает один файл
type FileProcessor interface {
	Process(ctx context.Context, path string) (*entities.CompressionResult, error)
}

// ProcessBatchUseCase сценарий последовательной обработки списка файлов.
// Ошибка одного файла не прерывает обработку остальных.
type ProcessBatchUseCase struct {
	processor FileProcessor
	logger    repositories.Logger
	runID     string
}

// NewProcessBatchUseCase создает новый сценарий пакетной обработки
func NewProcessBatchUseCase(processor FileProcessor, logger repositories.Logger, runID string) *ProcessBatchUseCase {
	return &ProcessBatchUseCase{
		processor: processor,
		logger:    logger,
		runID:     runID,
	}
}

// Execute обрабатывает файлы по одному в порядке аргументов
func (uc *ProcessBatchUseCase) Execute(ctx context.Context, paths []string) *entities.BatchReport {
	report := entities.NewBatchReport(uc.runID, len(paths))
	if len(paths) == 0 {
		report.Complete()
		return report
	}

	uc.logger.Debug("Запуск %s: файлов %d", uc.runID, len(paths))

	for i, path := range paths {
		var result *entities.CompressionResult
		if err := ctx.Err(); err != nil {
			// Прерванный запуск: оставшиеся файлы не обрабатываются
			result = entities.NewCompressionResult(path, "")
			result.Fail(err)
		} else {
			result, _ = uc.processor.Process(ctx, path)
		}

		report.AddResult(result)
		uc.logResult(i+1, len(paths), result)
	}

	report.Complete()
	uc.logSummary(report)
	return report
}

func (uc *ProcessBatchUseCase) logResult(n, total int, result *entities.CompressionResult) {
	fileName := filepath.Base(result.SourcePath)

	if result.Success() {
		uc.logger.Success("[%d/%d] ✓ %s: %.2f MB → %.2f MB (%.1f%%)",
			n, total, fileName,
			megabytes(result.OriginalSize),
			megabytes(result.CompressedSize),
			result.CompressionRatio)
		return
	}

	uc.logger.Error("[%d/%d] ✗ %s: %v", n, total, fileName, result.Error)
}

func (uc *ProcessBatchUseCase) logSummary(report *entities.BatchReport) {
	if report.TotalFiles < 2 {
		return
	}

	if report.HasFailures() {
		uc.logger.Warning("Готово за %s: успешно %d, ошибок %d из %d",
			report.FormatElapsedTime(), report.SuccessfulFiles, report.FailedFiles, report.TotalFiles)
		return
	}

	uc.logger.Success("Готово за %s: успешно %d из %d, сэкономлено %.2f MB",
		report.FormatElapsedTime(), report.SuccessfulFiles, report.TotalFiles, megabytes(report.TotalSavedSpace))
}

func megabytes(size int64) float64 {
	return float64(size) / 1024 / 1024
}
