package source

type (
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, --expr).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single expression source.
type File struct {
	Path    string
	Content string
	Flags   FileFlags
}

// LineCol represents a human-readable position in source text.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
