package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediacompress/internal/domain/entities"
)

func TestPDFCPUValidator_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nthis is not a real document"), 0o644))

	err := NewPDFCPUValidator().Validate(path)
	assert.ErrorIs(t, err, entities.ErrInvalidPDF)
}

func TestPDFCPUValidator_MissingFile(t *testing.T) {
	err := NewPDFCPUValidator().Validate(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, entities.ErrInvalidPDF)

	_, err = NewPDFCPUValidator().PageCount(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestPDFCPUValidator_UnwritableConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/proc/nonexistent-config")
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	validator := NewPDFCPUValidator()

	assert.ErrorIs(t, validator.Validate(path), entities.ErrInvalidPDF)
	_, err := validator.PageCount(path)
	assert.Error(t, err)
}
