package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mediacompress/internal/domain/entities"
)

// Коды завершения процесса
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitConfig = 2
)

// ErrBatchFailed хотя бы один файл не обработан
var ErrBatchFailed = errors.New("не все файлы обработаны")

// BatchExecutor выполняет обработку списка файлов
type BatchExecutor interface {
	Execute(ctx context.Context, paths []string) *entities.BatchReport
}

// ExecutorFactory собирает обработчик при запуске команды.
// Возвращаемая функция освобождает ресурсы (логгеры).
type ExecutorFactory func() (BatchExecutor, func(), error)

// CLIController контроллер командной строки для одного вида файлов
type CLIController struct {
	use     string
	short   string
	long    string
	version string
	factory ExecutorFactory
	prepare func(args []string) []string
}

// NewPDFController создает контроллер pdfcompress
func NewPDFController(factory ExecutorFactory, version string) *CLIController {
	return &CLIController{
		use:   "pdfcompress <file.pdf> [file.pdf ...]",
		short: "Сжатие PDF через Ghostscript",
		long: `Каждый файл переписывается через Ghostscript с пресетом prepress
и совместимостью PDF 1.4. Результат сохраняется рядом с исходным
как {имя}-compressed.{расширение}, исходный файл не изменяется.`,
		version: version,
		factory: factory,
	}
}

// NewVideoController создает контроллер vidcompress.
// Аргументы делятся только по переводу строки, пробелы в именах сохраняются.
func NewVideoController(factory ExecutorFactory, version string) *CLIController {
	return &CLIController{
		use:   "vidcompress <file> [file ...]",
		short: "Сжатие видео через ffmpeg (H.264, CRF 28)",
		long: `Каждый файл перекодируется ffmpeg в H.264 с CRF 28.
Результат сохраняется рядом с исходным как {имя}-small.{расширение}.
Аргументы, содержащие перевод строки, делятся на несколько путей.`,
		version: version,
		factory: factory,
		prepare: entities.SplitArgsOnNewlines,
	}
}

// Command строит cobra-команду
func (c *CLIController) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           c.use,
		Short:         c.short,
		Long:          c.long,
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}
	return cmd
}

func (c *CLIController) run(cmd *cobra.Command, args []string) error {
	paths := args
	if c.prepare != nil {
		paths = c.prepare(args)
	}

	executor, cleanup, err := c.factory()
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	report := executor.Execute(cmd.Context(), paths)
	if report.HasFailures() {
		return fmt.Errorf("%w: %d из %d", ErrBatchFailed, report.FailedFiles, report.TotalFiles)
	}
	return nil
}

// Execute запускает команду и возвращает код завершения
func Execute(ctx context.Context, cmd *cobra.Command, errOut io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	code := ExitCode(err)
	// Ошибки по файлам уже выведены построчно
	if err != nil && code != ExitFailed {
		fmt.Fprintf(errOut, "Ошибка: %v\n", err)
	}
	return code
}

// ExitCode сопоставляет ошибку коду завершения
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrBatchFailed):
		return ExitFailed
	default:
		return ExitConfig
	}
}
