package json

import (
	"strings"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/path"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no comments",
			input: `{"key": "value"}`,
			want:  `{"key": "value"}`,
		},
		{
			name:  "single line comment",
			input: "// comment\n{\"key\": \"value\"}",
			want:  "\n{\"key\": \"value\"}",
		},
		{
			name:  "inline comment",
			input: "{\"key\": \"value\"} // comment",
			want:  "{\"key\": \"value\"} ",
		},
		{
			name:  "comment with leading whitespace",
			input: "  // comment\n{\"key\": \"value\"}",
			want:  "  \n{\"key\": \"value\"}",
		},
		{
			name:  "comment markers inside strings",
			input: `{"rust": "//", "css": "/*|*/"} // limiters`,
			want:  `{"rust": "//", "css": "/*|*/"} `,
		},
		{
			name:  "escaped quote",
			input: `{"k": "a\"//b"} // c`,
			want:  `{"k": "a\"//b"} `,
		},
		{
			name:  "block comment keeps line breaks",
			input: "{/* a\nb */\"k\": 1}",
			want:  "{\n\"k\": 1}",
		},
		{
			name:  "unterminated block comment",
			input: "{} /* open",
			want:  "{} ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripComments([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("StripComments() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_Parse(t *testing.T) {
	h := New()

	tests := []struct {
		name     string
		input    string
		opts     format.ParseOptions
		wantKeys []string
		wantErr  bool
	}{
		{
			name:     "sections keep document order",
			input:    `{"subheader": {"sym": "="}, "line": {"lineLen": 60}}`,
			wantKeys: []string{"subheader", "line"},
		},
		{
			name:     "jsonc",
			input:    "{\n  // narrower separators\n  \"line\": {\"lineLen\": 60}\n}",
			opts:     format.ParseOptions{StripComments: true},
			wantKeys: []string{"line"},
		},
		{
			name:    "comments without stripping",
			input:   "{\n  // comment\n  \"line\": {}\n}",
			wantErr: true,
		},
		{
			name:    "invalid json",
			input:   `{"line": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Parse([]byte(tt.input), tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			om, ok := got.(*orderedmap.OrderedMap)
			if !ok {
				t.Fatalf("Parse() returned %T, want *orderedmap.OrderedMap", got)
			}
			keys := om.Keys()
			if strings.Join(keys, ",") != strings.Join(tt.wantKeys, ",") {
				t.Errorf("Parse() keys = %v, want %v", keys, tt.wantKeys)
			}
		})
	}
}

func TestHandler_GetSetPath(t *testing.T) {
	h := New()

	tree, err := h.Parse([]byte(`{"subheader": {"sym": "="}}`), format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sym := path.NewArrayPath([]string{"subheader", "sym"})
	if got, ok := h.GetPath(tree, sym); !ok || got != "=" {
		t.Errorf("GetPath(subheader.sym) = %v, %v; want =, true", got, ok)
	}

	if _, ok := h.GetPath(tree, path.NewArrayPath([]string{"line", "sym"})); ok {
		t.Error("GetPath(line.sym) should not exist")
	}

	if err := h.SetPath(tree, sym, "*"); err != nil {
		t.Fatalf("SetPath() error = %v", err)
	}
	if err := h.SetPath(tree, path.NewArrayPath([]string{"languages", "python"}), "#"); err != nil {
		t.Fatalf("SetPath() error = %v", err)
	}

	out, err := h.Serialize(tree, format.SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	want := "{\n  \"subheader\": {\n    \"sym\": \"*\"\n  },\n  \"languages\": {\n    \"python\": \"#\"\n  }\n}\n"
	if string(out) != want {
		t.Errorf("Serialize() = %q, want %q", out, want)
	}
}

func TestHandler_SetPath_NotAMap(t *testing.T) {
	h := New()

	tree, _ := h.Parse([]byte(`{"line": "solid"}`), format.ParseOptions{})
	err := h.SetPath(tree, path.NewArrayPath([]string{"line", "sym"}), "-")
	if err == nil {
		t.Error("SetPath() through a string should fail")
	}
}
