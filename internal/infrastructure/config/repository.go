package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mediacompress/internal/domain/entities"
)

// Переменные окружения
const (
	EnvConfigPath   = "MEDIACOMPRESS_CONFIG"
	EnvGhostscript  = "MEDIACOMPRESS_GS_PATH"
	EnvFFmpeg       = "MEDIACOMPRESS_FFMPEG_PATH"
	EnvLogLevel     = "MEDIACOMPRESS_LOG_LEVEL"
	EnvStagingDir   = "MEDIACOMPRESS_STAGING_DIR"
	EnvUniPDFKey    = "UNIDOC_LICENSE_API_KEY"
	DefaultFileName = "mediacompress.yaml"
)

// Repository реализация репозитория конфигурации
type Repository struct {
	envFiles []string
}

// NewRepository создает новый репозиторий конфигурации.
// envFiles - .env файлы для godotenv; по умолчанию ".env" в текущей директории.
func NewRepository(envFiles ...string) *Repository {
	return &Repository{envFiles: envFiles}
}

// ResolvePath возвращает путь к файлу конфигурации из окружения или имя по умолчанию
func ResolvePath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return DefaultFileName
}

// Load загружает конфигурацию из файла поверх значений по умолчанию.
// Отсутствующий файл не ошибка: используются встроенные значения.
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	r.loadEnvFiles()

	config := entities.NewDefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("ошибка разбора %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("ошибка чтения %s: %w", configPath, err)
	}

	applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация: %w", err)
	}

	return config, nil
}

// loadEnvFiles подгружает .env; уже заданные переменные не перезаписываются
func (r *Repository) loadEnvFiles() {
	files := r.envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

func applyEnv(config *entities.Config) {
	if v := os.Getenv(EnvGhostscript); v != "" {
		config.PDF.GhostscriptPath = v
	}
	if v := os.Getenv(EnvFFmpeg); v != "" {
		config.Video.FFmpegPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Output.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvStagingDir); v != "" {
		config.Processing.StagingDir = v
	}
	if v := os.Getenv(EnvUniPDFKey); v != "" && config.PDF.UniPDFLicenseKey == "" {
		config.PDF.UniPDFLicenseKey = v
	}
}
