package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/interface/controllers"
)

type fakeExecutor struct {
	paths  []string
	failed map[string]bool
}

func (f *fakeExecutor) Execute(_ context.Context, paths []string) *entities.BatchReport {
	f.paths = paths
	report := entities.NewBatchReport("test", len(paths))
	for _, p := range paths {
		result := entities.NewCompressionResult(p, p+".out")
		if f.failed[p] {
			result.Fail(errors.New("boom"))
		} else {
			result.OriginalSize = 10
			result.Succeed(5)
		}
		report.AddResult(result)
	}
	report.Complete()
	return report
}

func factoryFor(executor *fakeExecutor, cleaned *bool) controllers.ExecutorFactory {
	return func() (controllers.BatchExecutor, func(), error) {
		return executor, func() { *cleaned = true }, nil
	}
}

func TestPDFController_PassesArgumentsVerbatim(t *testing.T) {
	executor := &fakeExecutor{}
	var cleaned bool
	cmd := controllers.NewPDFController(factoryFor(executor, &cleaned), "test").Command()
	cmd.SetArgs([]string{"My Report.pdf", "b.pdf"})

	var errOut bytes.Buffer
	code := controllers.Execute(context.Background(), cmd, &errOut)

	assert.Equal(t, controllers.ExitOK, code)
	assert.Equal(t, []string{"My Report.pdf", "b.pdf"}, executor.paths)
	assert.True(t, cleaned)
	assert.Empty(t, errOut.String())
}

func TestVideoController_SplitsOnNewlines(t *testing.T) {
	executor := &fakeExecutor{}
	var cleaned bool
	cmd := controllers.NewVideoController(factoryFor(executor, &cleaned), "test").Command()
	cmd.SetArgs([]string{"my clip.mp4\nother.mov"})

	code := controllers.Execute(context.Background(), cmd, &bytes.Buffer{})

	assert.Equal(t, controllers.ExitOK, code)
	assert.Equal(t, []string{"my clip.mp4", "other.mov"}, executor.paths)
}

func TestController_EmptyList(t *testing.T) {
	executor := &fakeExecutor{}
	var cleaned bool
	cmd := controllers.NewPDFController(factoryFor(executor, &cleaned), "test").Command()
	cmd.SetArgs([]string{})

	var errOut bytes.Buffer
	code := controllers.Execute(context.Background(), cmd, &errOut)

	assert.Equal(t, controllers.ExitOK, code)
	assert.Empty(t, executor.paths)
	assert.Empty(t, errOut.String())
}

func TestController_FailureExitCode(t *testing.T) {
	executor := &fakeExecutor{failed: map[string]bool{"b.pdf": true}}
	var cleaned bool
	cmd := controllers.NewPDFController(factoryFor(executor, &cleaned), "test").Command()
	cmd.SetArgs([]string{"a.pdf", "b.pdf", "c.pdf"})

	var errOut bytes.Buffer
	code := controllers.Execute(context.Background(), cmd, &errOut)

	assert.Equal(t, controllers.ExitFailed, code)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, executor.paths)
	// Строки по файлам выводит логгер, контроллер ничего не дублирует
	assert.Empty(t, errOut.String())
}

func TestController_FactoryError(t *testing.T) {
	factory := func() (controllers.BatchExecutor, func(), error) {
		return nil, nil, entities.ConfigError("ошибка загрузки конфигурации", entities.ErrInvalidCRF)
	}
	cmd := controllers.NewVideoController(factory, "test").Command()
	cmd.SetArgs([]string{"a.mp4"})

	var errOut bytes.Buffer
	code := controllers.Execute(context.Background(), cmd, &errOut)

	assert.Equal(t, controllers.ExitConfig, code)
	require.NotEmpty(t, errOut.String())
	assert.Contains(t, errOut.String(), "CRF")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, controllers.ExitOK, controllers.ExitCode(nil))
	assert.Equal(t, controllers.ExitFailed, controllers.ExitCode(controllers.ErrBatchFailed))
	assert.Equal(t, controllers.ExitConfig, controllers.ExitCode(errors.New("unknown flag")))
}
