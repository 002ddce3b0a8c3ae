package validation

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"mediacompress/internal/domain/entities"
)

// PDFCPUValidator проверяет синтаксис PDF библиотекой PDFCPU (режим relaxed)
type PDFCPUValidator struct{}

// NewPDFCPUValidator создает новый валидатор.
// Каталог конфигурации pdfcpu отключается, иначе при недоступном каталоге pdfcpu вызывает os.Exit.
func NewPDFCPUValidator() *PDFCPUValidator {
	api.DisableConfigDir()
	return &PDFCPUValidator{}
}

// Validate возвращает ErrInvalidPDF, если файл не читается как PDF
func (v *PDFCPUValidator) Validate(path string) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrInvalidPDF, err)
	}
	return nil
}

// PageCount возвращает количество страниц
func (v *PDFCPUValidator) PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}
