package entities

import (
	"fmt"
	"strings"
)

// Preset уровень качества при перезаписи PDF
type Preset string

const (
	PresetScreen   Preset = "screen"   // минимальный размер, 72 dpi
	PresetEbook    Preset = "ebook"    // 150 dpi
	PresetPrinter  Preset = "printer"  // 300 dpi
	PresetPrepress Preset = "prepress" // 300 dpi, сохранение цвета
	PresetDefault  Preset = "default"
)

// DefaultPreset пресет по умолчанию - наибольшее качество и размер
const DefaultPreset = PresetPrepress

// DefaultCompatibilityLevel версия PDF на выходе
const DefaultCompatibilityLevel = "1.4"

// Presets возвращает все допустимые пресеты от меньшего размера к большему
func Presets() []Preset {
	return []Preset{PresetScreen, PresetEbook, PresetPrinter, PresetPrepress, PresetDefault}
}

// ParsePreset разбирает имя пресета, допускается ведущий слэш ("/ebook")
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "/")))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPreset, name)
}

// GhostscriptSetting значение для -dPDFSETTINGS
func (p Preset) GhostscriptSetting() string {
	return "/" + string(p)
}

func (p Preset) String() string {
	return string(p)
}

// CompressionConfig представляет конфигурацию сжатия PDF
type CompressionConfig struct {
	Preset             Preset
	CompatibilityLevel string // Версия PDF (-dCompatibilityLevel)
	ImageQuality       int    // Качество изображений для встроенных движков (10-100)
	ImageUpperPPI      float64
	RemoveDuplicates   bool   // Объединять дубликаты объектов
	UniPDFLicenseKey   string // Лицензионный ключ для UniPDF
}

// NewCompressionConfig создает конфигурацию сжатия на основе пресета
func NewCompressionConfig(preset Preset) *CompressionConfig {
	return NewCompressionConfigWithLicense(preset, "")
}

// NewCompressionConfigWithLicense создает конфигурацию сжатия с лицензионным ключом
func NewCompressionConfigWithLicense(preset Preset, licenseKey string) *CompressionConfig {
	config := &CompressionConfig{
		Preset:             preset,
		CompatibilityLevel: DefaultCompatibilityLevel,
		RemoveDuplicates:   true,
		UniPDFLicenseKey:   licenseKey,
	}

	// Значения повторяют разрешения дистиллятора Ghostscript
	switch preset {
	case PresetScreen:
		config.ImageQuality = 40
		config.ImageUpperPPI = 72
	case PresetEbook:
		config.ImageQuality = 60
		config.ImageUpperPPI = 150
	case PresetPrinter:
		config.ImageQuality = 85
		config.ImageUpperPPI = 300
	case PresetPrepress:
		config.ImageQuality = 95
		config.ImageUpperPPI = 300
	default:
		config.ImageQuality = 75
		config.ImageUpperPPI = 150
	}

	return config
}

// Validate проверяет корректность конфигурации
func (c *CompressionConfig) Validate() error {
	if _, err := ParsePreset(string(c.Preset)); err != nil {
		return err
	}
	if c.ImageQuality < 10 || c.ImageQuality > 100 {
		return ErrInvalidImageQuality
	}
	if c.CompatibilityLevel == "" {
		return ErrInvalidCompatibilityLevel
	}
	return nil
}
