package entities

import (
	"errors"
	"fmt"
)

// Доменные ошибки
var (
	ErrInvalidPreset             = errors.New("неизвестный пресет сжатия (screen, ebook, printer, prepress, default)")
	ErrInvalidImageQuality       = errors.New("качество изображения должно быть от 10 до 100")
	ErrInvalidCompatibilityLevel = errors.New("не задана версия совместимости PDF")
	ErrUnknownEngine             = errors.New("неизвестный движок сжатия PDF")
	ErrMissingBinary             = errors.New("не задан путь к внешней утилите")
	ErrInvalidVideoCodec         = errors.New("не задан видеокодек")
	ErrInvalidCRF                = errors.New("CRF должен быть от 0 до 51")
	ErrInvalidTimeout            = errors.New("таймаут не может быть отрицательным")
	ErrInvalidLogLevel           = errors.New("неизвестный уровень логирования")
	ErrEmptySuffix               = errors.New("суффикс выходного файла не может быть пустым")
	ErrOutputCollides            = errors.New("выходной файл совпадает с исходным")
	ErrNotRegularFile            = errors.New("путь не является обычным файлом")
	ErrInvalidPDF                = errors.New("результат не является корректным PDF")
)

// ErrorType категория ошибки обработки файла
type ErrorType string

const (
	ErrorTypeUnreadableSource ErrorType = "unreadable_source"
	ErrorTypeToolInvocation   ErrorType = "tool_invocation_failure"
	ErrorTypeWriteFailure     ErrorType = "write_failure"
	ErrorTypeConfig           ErrorType = "config"
)

// Сентинелы для errors.Is по категории
var (
	ErrUnreadableSource      = &ProcessingError{Type: ErrorTypeUnreadableSource}
	ErrToolInvocationFailure = &ProcessingError{Type: ErrorTypeToolInvocation}
	ErrWriteFailure          = &ProcessingError{Type: ErrorTypeWriteFailure}
	ErrConfig                = &ProcessingError{Type: ErrorTypeConfig}
)

// ProcessingError ошибка обработки одного файла
type ProcessingError struct {
	Type    ErrorType
	Path    string
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Type, e.Message)
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Is сравнивает только категорию, чтобы работал errors.Is(err, ErrWriteFailure)
func (e *ProcessingError) Is(target error) bool {
	t, ok := target.(*ProcessingError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// NewProcessingError создает ошибку обработки
func NewProcessingError(errType ErrorType, path, message string, err error) *ProcessingError {
	return &ProcessingError{
		Type:    errType,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

func UnreadableSourceError(path string, err error) *ProcessingError {
	return NewProcessingError(ErrorTypeUnreadableSource, path, "исходный файл недоступен для чтения", err)
}

func ToolInvocationError(tool string, err error) *ProcessingError {
	return NewProcessingError(ErrorTypeToolInvocation, "", fmt.Sprintf("ошибка выполнения %s", tool), err)
}

func WriteFailureError(path string, err error) *ProcessingError {
	return NewProcessingError(ErrorTypeWriteFailure, path, "не удалось записать файл", err)
}

func ConfigError(message string, err error) *ProcessingError {
	return NewProcessingError(ErrorTypeConfig, "", message, err)
}
