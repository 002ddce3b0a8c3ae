package entities

import "time"

// FileStatus состояние обработки файла
type FileStatus string

const (
	FileStatusPending   FileStatus = "pending"
	FileStatusSucceeded FileStatus = "succeeded"
	FileStatusFailed    FileStatus = "failed"
)

func (s FileStatus) String() string {
	return string(s)
}

// IsFinished возвращает true для succeeded и failed
func (s FileStatus) IsFinished() bool {
	return s == FileStatusSucceeded || s == FileStatusFailed
}

// BatchReport итог обработки списка файлов
type BatchReport struct {
	RunID   string
	Results []*CompressionResult

	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     int

	TotalOriginalSize   int64
	TotalCompressedSize int64
	TotalSavedSpace     int64
	AverageCompression  float64

	StartTime   time.Time
	ElapsedTime time.Duration
}

// NewBatchReport создает новый отчет
func NewBatchReport(runID string, totalFiles int) *BatchReport {
	return &BatchReport{
		RunID:      runID,
		TotalFiles: totalFiles,
		Results:    make([]*CompressionResult, 0, totalFiles),
		StartTime:  time.Now(),
	}
}

// AddResult добавляет результат обработки файла
func (r *BatchReport) AddResult(result *CompressionResult) {
	r.Results = append(r.Results, result)

	if result.Success() {
		r.SuccessfulFiles++
		r.TotalOriginalSize += result.OriginalSize
		r.TotalCompressedSize += result.CompressedSize
		r.TotalSavedSpace += result.SavedSpace

		if r.TotalOriginalSize > 0 {
			r.AverageCompression = ((float64(r.TotalOriginalSize) - float64(r.TotalCompressedSize)) / float64(r.TotalOriginalSize)) * 100
		}
	} else {
		r.FailedFiles++
	}

	r.ElapsedTime = time.Since(r.StartTime)
}

// Complete фиксирует время выполнения
func (r *BatchReport) Complete() {
	r.ElapsedTime = time.Since(r.StartTime)
}

// HasFailures true, если хотя бы один файл не обработан
func (r *BatchReport) HasFailures() bool {
	return r.FailedFiles > 0
}

// Errors возвращает ошибки всех неудачных файлов
func (r *BatchReport) Errors() []error {
	var errs []error
	for _, result := range r.Results {
		if result.Error != nil {
			errs = append(errs, result.Error)
		}
	}
	return errs
}

// FormatElapsedTime форматирует время выполнения
func (r *BatchReport) FormatElapsedTime() string {
	if r.ElapsedTime < time.Second {
		return "< 1 сек"
	}
	return r.ElapsedTime.Round(time.Second).String()
}
