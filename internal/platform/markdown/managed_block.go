package markdown

import "strings"

// ReplaceManagedBlock swaps the text between the markers for generated,
// appending a fresh block when the markers are absent.
func ReplaceManagedBlock(body, startMarker, endMarker, generated string) string {
	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	block := startMarker + "\n" + generated + "\n" + endMarker

	if start >= 0 && end > start {
		end += len(endMarker)
		return body[:start] + block + body[end:]
	}

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return block + "\n"
	}
	if strings.HasSuffix(body, "\n") {
		return body + "\n" + block + "\n"
	}
	return body + "\n\n" + block + "\n"
}

// StripManagedBlock removes the block written by ReplaceManagedBlock together with
// the blank-line padding it introduced.
func StripManagedBlock(body, startMarker, endMarker string) string {
	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	if start < 0 || end < start {
		return body
	}
	end += len(endMarker)
	before := body[:start]
	after := strings.TrimPrefix(body[end:], "\n")
	switch {
	case strings.HasSuffix(before, "\n\n"):
		before = strings.TrimSuffix(before, "\n\n")
	case strings.HasSuffix(before, "\n") && after == "":
		before = strings.TrimSuffix(before, "\n")
	}
	return before + after
}
