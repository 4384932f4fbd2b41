package config

// defaultLanguages maps editor language ids to limiter specs.
// Ids missing from the table fall back to the default limiters.
var defaultLanguages = map[string]string{
	// C-style
	"c":               "c-block",
	"cpp":             "c-block",
	"csharp":          "c-block",
	"go":              "c-block",
	"groovy":          "c-block",
	"java":            "c-block",
	"javascript":      "c-block",
	"javascriptreact": "c-block",
	"jsonc":           "c-block",
	"kotlin":          "c-block",
	"less":            "c-block",
	"objective-c":     "c-block",
	"php":             "c-block",
	"sass":            "c-block",
	"scala":           "c-block",
	"stylus":          "c-block",
	"swift":           "c-block",
	"typescript":      "c-block",
	"typescriptreact": "c-block",
	"css":             "c-block",
	"scss":            "c-block",

	// line comments with //
	"dart":   "c",
	"fsharp": "c",
	"rust":   "c",
	"zig":    "c",

	"coffeescript": "shell",
	"dockerfile":   "shell",
	"elixir":       "shell",
	"graphql":      "shell",
	"julia":        "shell",
	"makefile":     "shell",
	"nim":          "shell",
	"perl":         "shell",
	"powershell":   "shell",
	"properties":   "shell",
	"python":       "shell",
	"r":            "shell",
	"ruby":         "shell",
	"shellscript":  "shell",
	"toml":         "shell",
	"yaml":         "shell",

	"ada":     "lua",
	"elm":     "lua",
	"haskell": "lua",
	"lua":     "lua",
	"sql":     "sql",

	"clojure": "semicolon",
	"ini":     "semicolon",
	"lisp":    "semicolon",
	"scheme":  "semicolon",

	"erlang": "percent",
	"latex":  "percent",
	"matlab": "percent",
	"tex":    "percent",

	"html":     "html",
	"markdown": "html",
	"xml":      "html",
	"xsl":      "html",

	"bat":   "batch",
	"ocaml": "ocaml",
	"vb":    "apostrophe",
	"vim":   "vim",
}
