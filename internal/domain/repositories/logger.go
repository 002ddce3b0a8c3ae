package repositories

// Logger интерфейс для логирования.
// Success - отдельный уровень для строк об успешно обработанных файлах.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	Success(format string, args ...interface{})
	// WithField возвращает логгер с дополнительным полем (например, run_id)
	WithField(key string, value interface{}) Logger
	Close() error
}
