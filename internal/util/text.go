package util

// TruncateRunes returns the first limit characters of s. The cut is a hard
// character cut and does not look for word or sentence boundaries.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
