package entities

import (
	"fmt"
	"strings"
	"time"
)

// Движки перезаписи PDF
const (
	EngineGhostscript = "ghostscript"
	EnginePDFCPU      = "pdfcpu"
	EngineUniPDF      = "unipdf"
)

// Значения по умолчанию для видео
const (
	DefaultVideoCodec = "libx264"
	DefaultVideoCRF   = 28
	MaxVideoCRF       = 51
)

// Суффиксы выходных файлов
const (
	DefaultPDFSuffix   = "-compressed"
	DefaultVideoSuffix = "-small"
)

// Config представляет конфигурацию приложения
type Config struct {
	PDF        PDFConfig        `yaml:"pdf"`
	Video      VideoConfig      `yaml:"video"`
	Processing ProcessingConfig `yaml:"processing"`
	Output     OutputConfig     `yaml:"output"`
}

// PDFConfig настройки сжатия PDF
type PDFConfig struct {
	Engine             string `yaml:"engine"`
	Preset             string `yaml:"preset"`
	CompatibilityLevel string `yaml:"compatibility_level"`
	GhostscriptPath    string `yaml:"ghostscript_path"`
	Suffix             string `yaml:"suffix"`
	ValidateOutput     bool   `yaml:"validate_output"`
	KeepFailedStaging  bool   `yaml:"keep_failed_staging"`
	UniPDFLicenseKey   string `yaml:"unipdf_license_key"`
}

// VideoConfig настройки сжатия видео
type VideoConfig struct {
	FFmpegPath string `yaml:"ffmpeg_path"`
	Codec      string `yaml:"codec"`
	CRF        int    `yaml:"crf"` // Чем меньше, тем выше качество и больше файл
	Suffix     string `yaml:"suffix"`
}

// ProcessingConfig настройки обработки
type ProcessingConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"` // 0 - без ограничения
	StagingDir     string `yaml:"staging_dir"`     // пусто - системная временная директория
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel    string `yaml:"log_level"`
	NoColor     bool   `yaml:"no_color"`
	LogToFile   bool   `yaml:"log_to_file"`
	LogFileName string `yaml:"log_file_name"`
}

// NewDefaultConfig возвращает конфигурацию, совпадающую со встроенными константами
func NewDefaultConfig() *Config {
	return &Config{
		PDF: PDFConfig{
			Engine:             EngineGhostscript,
			Preset:             string(DefaultPreset),
			CompatibilityLevel: DefaultCompatibilityLevel,
			GhostscriptPath:    "gs",
			Suffix:             DefaultPDFSuffix,
			ValidateOutput:     true,
		},
		Video: VideoConfig{
			FFmpegPath: "ffmpeg",
			Codec:      DefaultVideoCodec,
			CRF:        DefaultVideoCRF,
			Suffix:     DefaultVideoSuffix,
		},
		Output: OutputConfig{
			LogLevel:    "info",
			LogFileName: "mediacompress.log",
		},
	}
}

// Validate проверяет корректность конфигурации приложения
func (c *Config) Validate() error {
	switch c.PDF.Engine {
	case EngineGhostscript, EnginePDFCPU, EngineUniPDF:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEngine, c.PDF.Engine)
	}

	if _, err := ParsePreset(c.PDF.Preset); err != nil {
		return err
	}
	if c.PDF.CompatibilityLevel == "" {
		return ErrInvalidCompatibilityLevel
	}
	if c.PDF.Suffix == "" || c.Video.Suffix == "" {
		return ErrEmptySuffix
	}
	if c.PDF.Engine == EngineGhostscript && c.PDF.GhostscriptPath == "" {
		return fmt.Errorf("%w: ghostscript_path", ErrMissingBinary)
	}
	if c.Video.FFmpegPath == "" {
		return fmt.Errorf("%w: ffmpeg_path", ErrMissingBinary)
	}
	if strings.TrimSpace(c.Video.Codec) == "" {
		return ErrInvalidVideoCodec
	}
	if c.Video.CRF < 0 || c.Video.CRF > MaxVideoCRF {
		return ErrInvalidCRF
	}
	if c.Processing.TimeoutSeconds < 0 {
		return ErrInvalidTimeout
	}

	switch strings.ToLower(c.Output.LogLevel) {
	case "debug", "info", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Output.LogLevel)
	}

	return nil
}

// Timeout ограничение времени на один вызов внешней утилиты
func (c *ProcessingConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
