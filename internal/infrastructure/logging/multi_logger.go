package logging

import (
	"errors"

	"mediacompress/internal/domain/repositories"
)

// MultiLogger рассылает сообщения в несколько логгеров (консоль и файл)
type MultiLogger struct {
	loggers []repositories.Logger
}

// NewMultiLogger создает логгер-адаптер; nil логгеры пропускаются
func NewMultiLogger(loggers ...repositories.Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Debug логирует отладочное сообщение
func (m *MultiLogger) Debug(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Debug(format, args...)
	}
}

// Info логирует информационное сообщение
func (m *MultiLogger) Info(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Info(format, args...)
	}
}

// Warning логирует предупреждение
func (m *MultiLogger) Warning(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Warning(format, args...)
	}
}

// Error логирует ошибку
func (m *MultiLogger) Error(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Error(format, args...)
	}
}

// Success логирует успешное выполнение
func (m *MultiLogger) Success(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Success(format, args...)
	}
}

// WithField добавляет поле во все логгеры
func (m *MultiLogger) WithField(key string, value interface{}) repositories.Logger {
	derived := &MultiLogger{loggers: make([]repositories.Logger, 0, len(m.loggers))}
	for _, l := range m.loggers {
		derived.loggers = append(derived.loggers, l.WithField(key, value))
	}
	return derived
}

// Close закрывает все логгеры
func (m *MultiLogger) Close() error {
	var errs []error
	for _, l := range m.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
