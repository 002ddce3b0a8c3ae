package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// maxOutputTail сколько байт вывода утилиты прикладывать к ошибке
const maxOutputTail = 2048

// waitDelay сколько ждать дочерние процессы после отмены контекста
const waitDelay = 500 * time.Millisecond

// ExitError ошибка завершения внешней утилиты
type ExitError struct {
	Command  string
	ExitCode int // -1, если процесс не удалось запустить
	Output   string
	Err      error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Runner запускает утилиту через exec.CommandContext, аргументы передаются без оболочки
type Runner struct {
	timeout time.Duration
}

// NewRunner создает новый запускатель; timeout 0 - без ограничения
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{timeout: timeout}
}

// Run выполняет команду и возвращает объединенный stdout/stderr
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return output.Bytes(), nil
	}

	exitErr := &ExitError{
		Command:  name,
		ExitCode: -1,
		Output:   tail(output.String(), maxOutputTail),
		Err:      err,
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		exitErr.Err = fmt.Errorf("превышено время ожидания %v: %w", r.timeout, context.DeadlineExceeded)
	case errors.Is(ctx.Err(), context.Canceled):
		exitErr.Err = context.Canceled
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		exitErr.ExitCode = ee.ExitCode()
	}

	return output.Bytes(), exitErr
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
