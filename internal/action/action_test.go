package action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirteen37/comment-divider/internal/config"
	"github.com/thirteen37/comment-divider/internal/divider"
	"github.com/thirteen37/comment-divider/internal/editor"
	"github.com/thirteen37/comment-divider/internal/render"
)

// newTestAction builds an Action over the default settings shortened to 20 columns.
func newTestAction() *Action {
	s := config.Default()
	for t, p := range s.Presets {
		p.LineLen = 20
		s.Presets[t] = p
	}
	provider := config.NewProvider(s)
	return New(provider, render.New(provider))
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name string
		typ  divider.Type
		text string
		lang string
		want string
	}{
		{
			name: "line replaces any text",
			typ:  divider.Line,
			text: "hello",
			lang: "python",
			want: "# ------------------",
		},
		{
			name: "subheader from plain text",
			typ:  divider.Subheader,
			text: "Title",
			lang: "python",
			want: "# ----- Title ------",
		},
		{
			name: "subheader from comment drops limiters",
			typ:  divider.Subheader,
			text: "# hello",
			lang: "python",
			want: "# ----- hello ------",
		},
		{
			name: "subheader divider collapses to comment",
			typ:  divider.Subheader,
			text: "# ----- hello ------",
			lang: "python",
			want: "# hello",
		},
		{
			name: "header on solid line keeps indentation",
			typ:  divider.Subheader,
			text: "    # --------------",
			lang: "python",
			want: "    ",
		},
		{
			name: "main header on solid line",
			typ:  divider.MainHeader,
			text: "# ------------------",
			lang: "python",
			want: "",
		},
		{
			name: "whitespace becomes solid line",
			typ:  divider.Subheader,
			text: "   ",
			lang: "python",
			want: "   # ---------------",
		},
		{
			name: "empty line becomes solid line",
			typ:  divider.MainHeader,
			text: "",
			lang: "python",
			want: "# ------------------",
		},
		{
			name: "main header from comment",
			typ:  divider.MainHeader,
			text: "# hello",
			lang: "python",
			want: "# ------------------\n#       HELLO\n# ------------------",
		},
		{
			name: "subheader promoted to main header",
			typ:  divider.MainHeader,
			text: "# ----- hello ------",
			lang: "python",
			want: "# ------------------\n#       HELLO\n# ------------------",
		},
		{
			name: "bare limiter becomes solid line",
			typ:  divider.MainHeader,
			text: "#",
			lang: "python",
			want: "# ------------------",
		},
		{
			name: "line comment accepted in c-style language",
			typ:  divider.Subheader,
			text: "// hello",
			lang: "javascript",
			want: "/* --- hello ---- */",
		},
		{
			name: "c-style subheader collapses to line comment",
			typ:  divider.Subheader,
			text: "/* --- hello ---- */",
			lang: "javascript",
			want: "// hello",
		},
		{
			name: "foreign comment style kept as text",
			typ:  divider.Subheader,
			text: "// hello",
			lang: "python",
			want: "# ---- // hello ----",
		},
		{
			name: "unmapped language uses line comments",
			typ:  divider.Line,
			text: "",
			lang: "made-up",
			want: "// -----------------",
		},
	}

	a := newTestAction()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Transform(tt.typ, tt.text, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransform_SubheaderTwiceRestoresComment(t *testing.T) {
	a := newTestAction()

	for _, lang := range []string{"python", "lua", "rust", "html"} {
		t.Run(lang, func(t *testing.T) {
			comment := plainComment("  ", "section", lang, config.Default().LimitersFor(lang))

			divided, err := a.Transform(divider.Subheader, comment, lang)
			require.NoError(t, err)
			assert.NotEqual(t, comment, divided)

			back, err := a.Transform(divider.Subheader, divided, lang)
			require.NoError(t, err)
			assert.Equal(t, comment, back)
		})
	}
}

func TestTransform_UnknownType(t *testing.T) {
	a := newTestAction()
	_, err := a.Transform(divider.Type("banner"), "x", "python")
	assert.ErrorIs(t, err, divider.ErrUnknownType)
}

func TestApply(t *testing.T) {
	a := newTestAction()
	buf := editor.NewBuffer("x = 1\n# hello\n", "python")

	require.NoError(t, a.Apply(buf, divider.Subheader, 1))

	assert.Equal(t, "x = 1\n# ----- hello ------\n", buf.String())
	assert.Equal(t, []editor.Selection{editor.Cursor(editor.Position{Line: 1, Character: 20})}, buf.Selections())
}

func TestApply_BlockHeaderCursor(t *testing.T) {
	a := newTestAction()
	buf := editor.NewBuffer("# hello\nx = 1\n", "python")

	require.NoError(t, a.Apply(buf, divider.MainHeader, 0))

	assert.Equal(t, "# ------------------\n#       HELLO\n# ------------------\nx = 1\n", buf.String())
	assert.Equal(t, []editor.Selection{editor.Cursor(editor.Position{Line: 0, Character: 20})}, buf.Selections())
}

func TestEndOf(t *testing.T) {
	tests := []struct {
		name  string
		start editor.Position
		text  string
		want  editor.Position
	}{
		{"single line", editor.Position{Line: 3, Character: 2}, "abc", editor.Position{Line: 3, Character: 5}},
		{"block", editor.Position{Line: 3, Character: 2}, "abc\nde\nf", editor.Position{Line: 3, Character: 1}},
		{"trailing break", editor.Position{Line: 1}, "abc\n", editor.Position{Line: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, endOf(tt.start, tt.text))
		})
	}
}

func TestApply_LineOutOfRange(t *testing.T) {
	a := newTestAction()
	buf := editor.NewBuffer("x\n", "python")

	err := a.Apply(buf, divider.Line, 4)
	assert.True(t, errors.Is(err, editor.ErrLineOutOfRange))
	assert.Equal(t, "x\n", buf.String())
}

func TestPlainComment(t *testing.T) {
	tests := []struct {
		name     string
		indent   string
		text     string
		lang     string
		limiters divider.Limiters
		want     string
	}{
		{"line comment", "", "note", "python", divider.Limiters{Left: "#"}, "# note"},
		{"block comment", "  ", "note", "html", divider.Limiters{Left: "<!--", Right: "-->"}, "  <!-- note -->"},
		{"c-style forced to //", "\t", "note", "go", divider.Limiters{Left: "/*", Right: "*/"}, "\t// note"},
		{"empty text", "", "", "python", divider.Limiters{Left: "#"}, "#"},
		{"trailing nbsp trimmed", "", "note\u00a0", "python", divider.Limiters{Left: "#"}, "# note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plainComment(tt.indent, tt.text, tt.lang, tt.limiters))
		})
	}
}
