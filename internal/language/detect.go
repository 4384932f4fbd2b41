// Package language maps files to the editor language ids used for
// comment limiter lookup.
package language

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Plaintext is the id of files whose language could not be detected.
const Plaintext = "plaintext"

// ids holds the linguist names whose editor id is not the lowercase name.
var ids = map[string]string{
	"Batchfile":          "bat",
	"C#":                 "csharp",
	"C++":                "cpp",
	"Common Lisp":        "lisp",
	"Emacs Lisp":         "lisp",
	"F#":                 "fsharp",
	"Java Properties":    "properties",
	"JSON with Comments": "jsonc",
	"Objective-C":        "objective-c",
	"Objective-C++":      "objective-cpp",
	"Shell":              "shellscript",
	"TSX":                "typescriptreact",
	"Vim Script":         "vim",
	"Visual Basic .NET":  "vb",
}

// ID returns the editor language id for a linguist language name.
func ID(name string) string {
	if name == "" || name == "Text" {
		return Plaintext
	}
	if id, ok := ids[name]; ok {
		return id
	}
	return strings.ToLower(name)
}

// Detect returns the language id of the file at path. Content may be nil;
// when given it is used for shebangs, modelines and ambiguous extensions.
func Detect(path string, content []byte) string {
	filename := filepath.Base(path)

	if lang := enry.GetLanguage(filename, content); lang != "" && lang != "Text" {
		return ID(lang)
	}

	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return ID(lang)
	}

	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return ID(lang)
	}

	return Plaintext
}
