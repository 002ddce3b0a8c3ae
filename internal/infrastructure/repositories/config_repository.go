package repositories

import (
	"mediacompress/internal/domain/entities"
)

// ConfigRepository реализация репозитория конфигурации сжатия
type ConfigRepository struct {
	compatibilityLevel string
	licenseKey         string
}

// NewConfigRepository создает новый репозиторий конфигурации
func NewConfigRepository(compatibilityLevel, licenseKey string) *ConfigRepository {
	return &ConfigRepository{
		compatibilityLevel: compatibilityLevel,
		licenseKey:         licenseKey,
	}
}

// GetCompressionConfig получает конфигурацию сжатия по пресету
func (r *ConfigRepository) GetCompressionConfig(preset entities.Preset) (*entities.CompressionConfig, error) {
	config := entities.NewCompressionConfigWithLicense(preset, r.licenseKey)
	if r.compatibilityLevel != "" {
		config.CompatibilityLevel = r.compatibilityLevel
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
