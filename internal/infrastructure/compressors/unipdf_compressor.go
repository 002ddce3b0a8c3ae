package compressors

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/unidoc/unipdf/v3/common"
	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/model/optimize"

	"mediacompress/internal/domain/entities"
)

// ErrUniPDFLicenseMissing нет ключа UniPDF
var ErrUniPDFLicenseMissing = errors.New("UniPDF требует лицензионный ключ: укажите pdf.unipdf_license_key или UNIDOC_LICENSE_API_KEY, либо используйте движок ghostscript")

// UniPDFCompressor реализация компрессора с использованием UniPDF
type UniPDFCompressor struct {
	licenseOnce sync.Once
	licenseErr  error
}

// NewUniPDFCompressor создает новый UniPDF компрессор
func NewUniPDFCompressor() *UniPDFCompressor {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelError))
	return &UniPDFCompressor{}
}

// Name имя движка
func (u *UniPDFCompressor) Name() string {
	return entities.EngineUniPDF
}

func (u *UniPDFCompressor) ensureLicense(key string) error {
	u.licenseOnce.Do(func() {
		if key == "" {
			key = os.Getenv("UNIDOC_LICENSE_API_KEY")
		}
		if key == "" {
			u.licenseErr = ErrUniPDFLicenseMissing
			return
		}
		u.licenseErr = license.SetMeteredKey(key)
	})
	return u.licenseErr
}

// Compress сжимает PDF файл используя UniPDF; качество и PPI берутся из пресета
func (u *UniPDFCompressor) Compress(ctx context.Context, inputPath, outputPath string, config *entities.CompressionConfig) error {
	if err := u.ensureLicense(config.UniPDFLicenseKey); err != nil {
		return entities.ToolInvocationError(entities.EngineUniPDF, err)
	}

	pdfReader, file, err := model.NewPdfReaderFromFile(inputPath, nil)
	if err != nil {
		return entities.ToolInvocationError(entities.EngineUniPDF, fmt.Errorf("ошибка открытия файла: %w", err))
	}
	defer file.Close()

	pdfWriter := model.NewPdfWriter()
	pdfWriter.SetOptimizer(optimize.New(optimize.Options{
		CombineDuplicateDirectObjects:   config.RemoveDuplicates,
		CombineIdenticalIndirectObjects: config.RemoveDuplicates,
		CombineDuplicateStreams:         config.RemoveDuplicates,
		CompressStreams:                 true,
		ImageUpperPPI:                   config.ImageUpperPPI,
		ImageQuality:                    config.ImageQuality,
	}))

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return entities.ToolInvocationError(entities.EngineUniPDF, fmt.Errorf("ошибка получения количества страниц: %w", err))
	}

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := pdfReader.GetPage(i)
		if err != nil {
			return entities.ToolInvocationError(entities.EngineUniPDF, fmt.Errorf("ошибка получения страницы %d: %w", i, err))
		}
		if err := pdfWriter.AddPage(page); err != nil {
			return entities.ToolInvocationError(entities.EngineUniPDF, fmt.Errorf("ошибка добавления страницы %d: %w", i, err))
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return entities.WriteFailureError(outputPath, err)
	}

	if err := pdfWriter.Write(outputFile); err != nil {
		outputFile.Close()
		return entities.ToolInvocationError(entities.EngineUniPDF, fmt.Errorf("ошибка записи файла: %w", err))
	}
	if err := outputFile.Close(); err != nil {
		return entities.WriteFailureError(outputPath, err)
	}

	return nil
}
