package slug

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}

// Words builds a slug from at most n leading words of input.
func Words(input string, n int) string {
	fields := strings.Fields(input)
	if n > 0 && len(fields) > n {
		fields = fields[:n]
	}
	return Make(strings.Join(fields, " "))
}
