package compressors

import (
	"context"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
)

// GhostscriptCompressor перезаписывает PDF через Ghostscript (pdfwrite)
type GhostscriptCompressor struct {
	binary string
	runner repositories.CommandRunner
}

// NewGhostscriptCompressor создает новый Ghostscript компрессор
func NewGhostscriptCompressor(binary string, runner repositories.CommandRunner) *GhostscriptCompressor {
	if binary == "" {
		binary = "gs"
	}
	return &GhostscriptCompressor{
		binary: binary,
		runner: runner,
	}
}

// Name имя движка
func (g *GhostscriptCompressor) Name() string {
	return entities.EngineGhostscript
}

// BuildArgs строит аргументы gs: пакетный режим, pdfwrite, версия и пресет
func (g *GhostscriptCompressor) BuildArgs(inputPath, outputPath string, config *entities.CompressionConfig) []string {
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=" + config.CompatibilityLevel,
		"-dPDFSETTINGS=" + config.Preset.GhostscriptSetting(),
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-dSAFER",
		"-sOutputFile=" + outputPath,
		inputPath,
	}
}

// Compress запускает gs и ждет завершения
func (g *GhostscriptCompressor) Compress(ctx context.Context, inputPath, outputPath string, config *entities.CompressionConfig) error {
	if _, err := g.runner.Run(ctx, g.binary, g.BuildArgs(inputPath, outputPath, config)...); err != nil {
		return entities.ToolInvocationError(g.binary, err)
	}
	return nil
}
