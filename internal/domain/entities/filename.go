package entities

import (
	"path/filepath"
	"strings"
)

// FileName представляет путь к файлу, разобранный на директорию, базовое имя и расширение
type FileName struct {
	Dir  string
	Base string
	Ext  string
}

// SplitName разбивает путь по последней точке в имени файла.
// Точки в директориях не учитываются. Если точки нет, а также для
// имён вида ".profile" и "file." расширение пустое.
func SplitName(path string) FileName {
	dir, name := filepath.Split(path)

	idx := strings.LastIndex(name, ".")
	switch {
	case idx <= 0:
		return FileName{Dir: dir, Base: name}
	case idx == len(name)-1:
		return FileName{Dir: dir, Base: name[:idx]}
	default:
		return FileName{Dir: dir, Base: name[:idx], Ext: name[idx+1:]}
	}
}

// WithSuffix возвращает путь вида {dir}{base}{suffix}.{ext}; без расширения точка не ставится
func (f FileName) WithSuffix(suffix string) string {
	name := f.Base + suffix
	if f.Ext != "" {
		name += "." + f.Ext
	}
	return f.Dir + name
}

// OutputPath строит путь выходного файла и проверяет, что он не совпадает с исходным
func OutputPath(inputPath, suffix string) (string, error) {
	if suffix == "" {
		return "", ErrEmptySuffix
	}

	output := SplitName(inputPath).WithSuffix(suffix)
	if filepath.Clean(output) == filepath.Clean(inputPath) {
		return "", ErrOutputCollides
	}
	return output, nil
}

// SplitArgsOnNewlines разбивает аргументы только по переводу строки.
// Пробелы и \r внутри имён сохраняются, пустые части отбрасываются.
func SplitArgsOnNewlines(args []string) []string {
	var paths []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, "\n") {
			if part == "" {
				continue
			}
			paths = append(paths, part)
		}
	}
	return paths
}
