package repositories

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mediacompress/internal/domain/entities"
	"mediacompress/internal/domain/repositories"
)

var _ repositories.StagingFile = (*os.File)(nil)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct {
	stagingDir string
}

// NewFileSystemRepository создает новый репозиторий файловой системы.
// stagingDir пустой - используется системная временная директория.
func NewFileSystemRepository(stagingDir string) *FileSystemRepository {
	return &FileSystemRepository{stagingDir: stagingDir}
}

// GetFileInfo получает информацию об исходном файле
func (r *FileSystemRepository) GetFileInfo(path string) (*entities.SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", entities.ErrNotRegularFile, path)
	}

	return &entities.SourceFile{
		Path:         path,
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
	}, nil
}

// OpenSource открывает исходный файл на чтение
func (r *FileSystemRepository) OpenSource(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// CreateStagingFile создает пустой временный файл с уникальным именем (os.CreateTemp)
func (r *FileSystemRepository) CreateStagingFile(pattern string) (repositories.StagingFile, error) {
	return os.CreateTemp(r.stagingDir, pattern)
}

// MoveFile перемещает файл с перезаписью назначения.
// Если rename невозможен (другая файловая система), файл копируется.
func (r *FileSystemRepository) MoveFile(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return errors.Join(renameErr, err)
	}
	return os.Remove(src)
}

// Remove удаляет файл; отсутствие файла не считается ошибкой
func (r *FileSystemRepository) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// copyFile копирует во временный файл рядом с dst и переименовывает его,
// чтобы прерванное копирование не испортило существующий dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm() | 0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
