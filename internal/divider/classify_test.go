package divider

import "testing"

func testConfig(sym string, limiters Limiters) Config {
	return Config{
		Preset: Preset{
			LineLen:   20,
			Sym:       sym,
			Height:    HeightLine,
			Align:     AlignCenter,
			Transform: TransformNone,
		},
		Limiters: limiters,
	}
}

func TestIsSolidLine(t *testing.T) {
	block := testConfig("-", Limiters{Left: "/*", Right: "*/"})
	hash := testConfig("-", Limiters{Left: "#"})

	tests := []struct {
		name string
		text string
		cfg  Config
		lang string
		want bool
	}{
		{"canonical", "/* ---------- */", block, "javascript", true},
		{"indented", "    /* ---------- */", block, "javascript", true},
		{"line comment fallback", "// ----------", block, "javascript", true},
		{"left limiter only", "/* ----------", block, "css", true},
		{"hash", "# ----------", hash, "python", true},
		{"no spaces", "#----", hash, "python", true},
		{"header text", "# --- Title ---", hash, "python", false},
		{"other symbol", "# ==========", hash, "python", false},
		{"no limiter", "----------", hash, "python", false},
		{"only limiter", "#", hash, "python", false},
		{"empty", "", hash, "python", false},
		{"whitespace", "   \t", hash, "python", false},
		{"slashes in python", "// ----------", hash, "python", false},
		{"multi-char sym never solid", "# -=-=-=", testConfig("-=", Limiters{Left: "#"}), "python", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSolidLine(tt.text, tt.cfg, tt.lang); got != tt.want {
				t.Errorf("IsSolidLine(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsSubheaderDivider(t *testing.T) {
	block := testConfig("-", Limiters{Left: "/*", Right: "*/"})
	hash := testConfig("-", Limiters{Left: "#"})

	tests := []struct {
		name string
		text string
		cfg  Config
		lang string
		want bool
	}{
		{"block", "/* ----- Title ----- */", block, "javascript", true},
		{"hash", "# ----- Title ------", hash, "python", true},
		{"indented", "  # -- Two Words --", hash, "python", true},
		{"fallback limiter rejected", "// ----- Title -----", block, "javascript", false},
		{"solid line has no gap", "# ----------", hash, "python", false},
		{"gap without trailing run", "# ----- Title", hash, "python", false},
		{"gap without leading run", "# Title -----", hash, "python", false},
		{"plain comment", "# Title", hash, "python", false},
		{"empty comment", "#", hash, "python", false},
		{"no limiter", "----- Title -----", hash, "python", false},
		{"multi-char sym", "# =-=- Title =-=-", testConfig("=-", Limiters{Left: "#"}), "python", true},
		{"regex chars in sym", "# ** Title **", testConfig("*", Limiters{Left: "#"}), "python", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSubheaderDivider(tt.text, tt.cfg, tt.lang); got != tt.want {
				t.Errorf("IsSubheaderDivider(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractContent(t *testing.T) {
	tests := []struct {
		inner string
		sym   string
		want  string
	}{
		{"----- Title -----", "-", "Title"},
		{"=== Two Words ===", "=", "Two Words"},
		{"--- a-b ---", "-", "a-b"},
		{"=-=- Mixed =-=-", "=-", "Mixed"},
		{"-- --", "-", ""},
		{"Title", "-", "Title"},
		{"  spaced  ", "-", "spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.inner, func(t *testing.T) {
			if got := ExtractContent(tt.inner, tt.sym); got != tt.want {
				t.Errorf("ExtractContent(%q, %q) = %q, want %q", tt.inner, tt.sym, got, tt.want)
			}
		})
	}
}
