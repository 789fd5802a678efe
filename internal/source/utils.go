package source

import (
	"path/filepath"
	"strings"
)

const utf8BOM = "\xEF\xBB\xBF"

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новую строку и флаг: были ли замены.
func normalizeCRLF(content string) (string, bool) {
	// Быстрый путь: если нет \r\n, возвращаем как есть.
	if !strings.Contains(content, "\r\n") {
		return content, false
	}
	return strings.ReplaceAll(content, "\r\n", "\n"), true
}

func removeBOM(content string) (string, bool) {
	if rest, ok := strings.CutPrefix(content, utf8BOM); ok {
		return rest, true
	}
	return content, false
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
