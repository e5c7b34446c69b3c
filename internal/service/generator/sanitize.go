package generator

import "strings"

// labelPrefixes are lead-ins models add despite being told not to.
// Matching is case-insensitive and longest first.
var labelPrefixes = []string{
	"revised sentence:",
	"example sentence:",
	"rewritten sentence:",
	"revised:",
	"rewrite:",
	"sentence:",
	"example:",
	"output:",
	"answer:",
}

var quotePairs = [][2]string{
	{`"`, `"`},
	{"'", "'"},
	{"`", "`"},
	{"“", "”"},
	{"‘", "’"},
	{"«", "»"},
}

// Sanitize reduces model output to a single bare sentence: the first
// non-empty line, without a label prefix or surrounding quotes. It returns
// "" when nothing usable remains.
func Sanitize(text string) string {
	line := firstLine(text)
	line = stripLabel(line)
	line = stripQuotes(line)
	return strings.TrimSpace(line)
}

func firstLine(text string) string {
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			return l
		}
	}
	return ""
}

func stripLabel(s string) string {
	s = strings.TrimLeft(s, "*-# ")
	lower := strings.ToLower(s)
	for _, p := range labelPrefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(s[len(p):])
		}
	}
	return s
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	for {
		trimmed := false
		for _, q := range quotePairs {
			if len(s) >= len(q[0])+len(q[1]) &&
				strings.HasPrefix(s, q[0]) && strings.HasSuffix(s, q[1]) {
				s = strings.TrimSpace(s[len(q[0]) : len(s)-len(q[1])])
				trimmed = true
			}
		}
		if !trimmed {
			return s
		}
	}
}
