package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"mediacompress/internal/domain/repositories"
)

// FileLogger реализация логгера в файл на базе logrus
type FileLogger struct {
	file  *os.File
	entry *logrus.Entry
}

// NewFileLogger создает новый файловый логгер.
// Если запись в файл выключена, возвращает nil без ошибки.
func NewFileLogger(filename, logLevel string, logToFile bool) (*FileLogger, error) {
	if !logToFile {
		return nil, nil
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetLevel(parseLevel(logLevel))

	return &FileLogger{
		file:  file,
		entry: logrus.NewEntry(logger),
	}, nil
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Debug логирует отладочное сообщение
func (l *FileLogger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Info логирует информационное сообщение
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warning логирует предупреждение
func (l *FileLogger) Warning(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error логирует ошибку
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Success логирует успешное выполнение на уровне info с пометкой
func (l *FileLogger) Success(format string, args ...interface{}) {
	l.entry.WithField("result", "success").Infof(format, args...)
}

// WithField возвращает логгер, пишущий в тот же файл с дополнительным полем
func (l *FileLogger) WithField(key string, value interface{}) repositories.Logger {
	return &FileLogger{
		file:  l.file,
		entry: l.entry.WithField(key, value),
	}
}

// Close закрывает логгер
func (l *FileLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
