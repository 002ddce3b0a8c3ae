package compressors

import (
	"context"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
)

// PDFCPUCompressor реализация компрессора с использованием PDFCPU
type PDFCPUCompressor struct {
	logger repositories.Logger
}

// NewPDFCPUCompressor создает новый PDFCPU компрессор
func NewPDFCPUCompressor(logger repositories.Logger) *PDFCPUCompressor {
	// Встроенная конфигурация вместо $XDG_CONFIG_HOME/pdfcpu
	api.DisableConfigDir()
	return &PDFCPUCompressor{logger: logger}
}

// Name имя движка
func (p *PDFCPUCompressor) Name() string {
	return entities.EnginePDFCPU
}

// Compress оптимизирует PDF библиотекой PDFCPU.
// PDFCPU не перекодирует изображения, поэтому пресет не влияет на результат.
func (p *PDFCPUCompressor) Compress(ctx context.Context, inputPath, outputPath string, config *entities.CompressionConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.logger != nil && config.Preset != entities.PresetDefault {
		p.logger.Debug("PDFCPU игнорирует пресет %s, выполняется только оптимизация структуры", config.Preset)
	}

	if err := api.OptimizeFile(inputPath, outputPath, nil); err != nil {
		return entities.ToolInvocationError(entities.EnginePDFCPU, err)
	}
	return nil
}
