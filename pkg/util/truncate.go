package util

// Ellipsis is appended to any text cut down by Truncate.
const Ellipsis = "..."

// Truncate shortens s to at most budget characters, appending an ellipsis
// marker when anything was cut. Counting is rune-based so multi-byte text
// is never split mid-sequence.
func Truncate(s string, budget int) string {
	if budget <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + Ellipsis
}
