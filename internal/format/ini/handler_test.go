package ini

import (
	"strings"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/path"
)

func TestHandler_Parse(t *testing.T) {
	h := New()

	tests := []struct {
		name     string
		input    string
		wantKeys []string
	}{
		{
			name:     "simple section",
			input:    "[line]\nsym = =",
			wantKeys: []string{"line"},
		},
		{
			name:     "multiple sections",
			input:    "[subheader]\nsym = *\n\n[languages]\npython = #",
			wantKeys: []string{"subheader", "languages"},
		},
		{
			name:     "empty ini",
			input:    "",
			wantKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Parse([]byte(tt.input), format.ParseOptions{})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			om, ok := got.(*orderedmap.OrderedMap)
			if !ok {
				t.Fatalf("Parse() returned %T, want *orderedmap.OrderedMap", got)
			}
			if strings.Join(om.Keys(), ",") != strings.Join(tt.wantKeys, ",") {
				t.Errorf("Parse() keys = %v, want %v", om.Keys(), tt.wantKeys)
			}
		})
	}
}

func TestHandler_Parse_CommentMarkersAsValues(t *testing.T) {
	h := New()

	input := `[languages]
python = #
clojure = ;
html = <!--|-->
`
	tree, err := h.Parse([]byte(input), format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := map[string]string{"python": "#", "clojure": ";", "html": "<!--|-->"}
	for lang, spec := range want {
		got, ok := h.GetPath(tree, path.NewArrayPath([]string{"languages", lang}))
		if !ok || got != spec {
			t.Errorf("languages.%s = %v, want %q", lang, got, spec)
		}
	}
}

func TestHandler_SetPath(t *testing.T) {
	h := New()
	tree := orderedmap.New()

	if err := h.SetPath(tree, path.NewArrayPath([]string{"line", "lineLen"}), 60); err != nil {
		t.Fatalf("SetPath() error = %v", err)
	}
	got, _ := h.GetPath(tree, path.NewArrayPath([]string{"line", "lineLen"}))
	if got != "60" {
		t.Errorf("line.lineLen = %#v, want \"60\"", got)
	}

	if err := h.SetPath(tree, path.NewArrayPath([]string{"a", "b", "c"}), "x"); err == nil {
		t.Error("SetPath() with 3 segments should fail")
	}
}

func TestHandler_SerializeRoundTrip(t *testing.T) {
	h := New()
	tree := orderedmap.New()
	_ = h.SetPath(tree, path.NewArrayPath([]string{"languages", "python"}), "#")
	_ = h.SetPath(tree, path.NewArrayPath([]string{"subheader", "sym"}), "=")

	out, err := h.Serialize(tree, format.SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	parsed, err := h.Parse(out, format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v\n%s", err, out)
	}
	if got, _ := h.GetPath(parsed, path.NewArrayPath([]string{"languages", "python"})); got != "#" {
		t.Errorf("languages.python = %v, want #\n%s", got, out)
	}
	if got, _ := h.GetPath(parsed, path.NewArrayPath([]string{"subheader", "sym"})); got != "=" {
		t.Errorf("subheader.sym = %v, want =\n%s", got, out)
	}
}
