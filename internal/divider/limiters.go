package divider

import "strings"

// Result is the outcome of matching a line against candidate limiters.
type Result struct {
	// Inner is the trimmed text with the matched limiters removed.
	Inner string
	// HasLimiter is false when no candidate matched; Inner is then the trimmed text.
	HasLimiter bool
	// Limiters is the candidate that matched, nil otherwise.
	Limiters *Limiters
}

// Candidates returns the limiters tried by Match, in precedence order.
//
// In strict mode only the canonical limiters are tried. Otherwise the
// canonical pair is followed by its line-comment form (when it is a block
// comment) and, for C-style languages, by // and /* */.
func Candidates(limiters Limiters, lang string, strict bool) []Limiters {
	if strict {
		return []Limiters{limiters}
	}

	all := []Limiters{limiters}
	if limiters.Right != "" {
		all = append(all, Limiters{Left: limiters.Left})
	}
	if IsCStyle(lang) {
		all = append(all, Limiters{Left: "//"}, Limiters{Left: "/*", Right: "*/"})
	}

	seen := make(map[Limiters]bool, len(all))
	unique := all[:0]
	for _, l := range all {
		if seen[l] {
			continue
		}
		seen[l] = true
		unique = append(unique, l)
	}
	return unique
}

// Match strips the first candidate limiters that wrap text.
func Match(text string, limiters Limiters, lang string, strict bool) Result {
	trimmed := strings.TrimSpace(text)

	for _, candidate := range Candidates(limiters, lang, strict) {
		inner, ok := unwrap(trimmed, candidate)
		if !ok {
			continue
		}
		matched := candidate
		return Result{Inner: inner, HasLimiter: true, Limiters: &matched}
	}

	return Result{Inner: trimmed}
}

// unwrap removes l from the already trimmed text.
func unwrap(trimmed string, l Limiters) (string, bool) {
	inner := trimmed

	if l.Left != "" {
		if !strings.HasPrefix(inner, l.Left) {
			return "", false
		}
		inner = inner[len(l.Left):]
	}
	inner = strings.TrimSpace(inner)

	if l.Right != "" {
		if !strings.HasSuffix(inner, l.Right) {
			return "", false
		}
		inner = strings.TrimSpace(inner[:len(inner)-len(l.Right)])
	}

	return inner, true
}
