package entities

import (
	"time"
)

// SourceFile представляет исходный файл
type SourceFile struct {
	Path         string
	Size         int64
	ModifiedTime time.Time
}

// CompressionResult представляет результат сжатия одного файла
type CompressionResult struct {
	SourcePath       string
	OutputPath       string
	Status           FileStatus
	OriginalSize     int64
	CompressedSize   int64
	CompressionRatio float64
	SavedSpace       int64
	Pages            int // 0, если не определялось
	Duration         time.Duration
	Error            error
}

// NewCompressionResult создает результат в состоянии pending
func NewCompressionResult(sourcePath, outputPath string) *CompressionResult {
	return &CompressionResult{
		SourcePath: sourcePath,
		OutputPath: outputPath,
		Status:     FileStatusPending,
	}
}

// CalculateCompressionRatio вычисляет коэффициент сжатия
func (cr *CompressionResult) CalculateCompressionRatio() {
	if cr.OriginalSize > 0 {
		cr.CompressionRatio = ((float64(cr.OriginalSize) - float64(cr.CompressedSize)) / float64(cr.OriginalSize)) * 100
		cr.SavedSpace = cr.OriginalSize - cr.CompressedSize
	}
}

// Succeed переводит результат в состояние succeeded
func (cr *CompressionResult) Succeed(compressedSize int64) {
	cr.Status = FileStatusSucceeded
	cr.CompressedSize = compressedSize
	cr.Error = nil
	cr.CalculateCompressionRatio()
}

// Fail переводит результат в состояние failed
func (cr *CompressionResult) Fail(err error) {
	cr.Status = FileStatusFailed
	cr.Error = err
}

// Success проверяет, завершилась ли обработка успешно
func (cr *CompressionResult) Success() bool {
	return cr.Status == FileStatusSucceeded && cr.Error == nil
}

// IsEffective проверяет, было ли сжатие эффективным
func (cr *CompressionResult) IsEffective() bool {
	return cr.Success() && cr.CompressionRatio > 0
}
