package divider

import (
	"regexp"
	"strings"
)

// IsSolidLine reports whether text is a comment made only of cfg.Sym.
// Every character is compared with the whole symbol, so a multi-character
// symbol never produces a solid line.
func IsSolidLine(text string, cfg Config, lang string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	res := Match(trimmed, cfg.Limiters, lang, false)
	if !res.HasLimiter || res.Inner == "" {
		return false
	}

	for _, r := range res.Inner {
		if string(r) != cfg.Sym {
			return false
		}
	}
	return true
}

// IsSubheaderDivider reports whether text is a sub-header divider written
// with the canonical limiters of cfg: symbol runs around a gap-separated text.
func IsSubheaderDivider(text string, cfg Config, lang string) bool {
	res := Match(text, cfg.Limiters, lang, true)
	if !res.HasLimiter || res.Inner == "" {
		return false
	}

	if !strings.Contains(res.Inner, GapSym) {
		return false
	}

	return fillerPattern(cfg.Sym).MatchString(res.Inner)
}

// fillerPattern matches text that starts and ends with a run of sym.
func fillerPattern(sym string) *regexp.Regexp {
	run := "(?:" + regexp.QuoteMeta(sym) + ")+"
	return regexp.MustCompile("^" + run + ".*" + run + "$")
}

// ExtractContent removes the leading and trailing runs of sym from the
// inner text of a sub-header and returns the trimmed header text.
func ExtractContent(inner, sym string) string {
	if sym == "" {
		return strings.TrimSpace(inner)
	}

	for strings.HasPrefix(inner, sym) {
		inner = inner[len(sym):]
	}
	for strings.HasSuffix(inner, sym) {
		inner = inner[:len(inner)-len(sym)]
	}
	return strings.TrimSpace(inner)
}
