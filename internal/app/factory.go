package app

import (
	"os"

	"mediacompress/internal/infrastructure/config"
	"mediacompress/internal/interface/controllers"
	usecases "mediacompress/internal/usecase"
)

// Kind вид обрабатываемых файлов
type Kind int

const (
	KindPDF Kind = iota
	KindVideo
)

// Factory возвращает фабрику обработчика для контроллера.
// Конфигурация читается только при запуске команды, чтобы --help работал без нее.
func Factory(kind Kind) controllers.ExecutorFactory {
	return func() (controllers.BatchExecutor, func(), error) {
		application, err := New(Options{
			ConfigRepo: config.NewRepository(),
			ConfigPath: config.ResolvePath(),
			Stdout:     os.Stdout,
			Stderr:     os.Stderr,
		})
		if err != nil {
			return nil, nil, err
		}

		var batch *usecases.ProcessBatchUseCase
		switch kind {
		case KindVideo:
			batch, err = application.VideoBatch()
		default:
			batch, err = application.PDFBatch()
		}
		if err != nil {
			application.Close()
			return nil, nil, err
		}

		return batch, func() { _ = application.Close() }, nil
	}
}
