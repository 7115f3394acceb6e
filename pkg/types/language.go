package types

import "strings"

// Language identifies the grammar used to parse a source file into a CST.
// The set is closed: unknown extensions stay in text-only mode upstream.
type Language int

const (
	LangUnknown Language = iota
	LangRust
	LangJavaScript
	LangTypeScript
	LangPython
	LangJava
	LangGo
	LangC
	LangCpp
)

func (l Language) String() string {
	switch l {
	case LangRust:
		return "rust"
	case LangJavaScript:
		return "javascript"
	case LangTypeScript:
		return "typescript"
	case LangPython:
		return "python"
	case LangJava:
		return "java"
	case LangGo:
		return "go"
	case LangC:
		return "c"
	case LangCpp:
		return "cpp"
	default:
		return "unknown"
	}
}

// LanguageFromName classifies a language name (as produced by
// Language.String, e.g. from a config file) into a Language. Unknown
// names return LangUnknown.
func LanguageFromName(name string) Language {
	switch strings.ToLower(name) {
	case "rust":
		return LangRust
	case "javascript":
		return LangJavaScript
	case "typescript":
		return LangTypeScript
	case "python":
		return LangPython
	case "java":
		return LangJava
	case "go":
		return LangGo
	case "c":
		return LangC
	case "cpp":
		return LangCpp
	default:
		return LangUnknown
	}
}

// LanguageFromExtension classifies a file extension (with or without the
// leading dot) into a Language. Unknown extensions return LangUnknown.
func LanguageFromExtension(ext string) Language {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "rs":
		return LangRust
	case "js", "mjs", "cjs":
		return LangJavaScript
	case "ts", "tsx":
		return LangTypeScript
	case "py":
		return LangPython
	case "java":
		return LangJava
	case "go":
		return LangGo
	case "c", "h":
		return LangC
	case "cpp", "cc", "cxx", "hpp", "hxx":
		return LangCpp
	default:
		return LangUnknown
	}
}
