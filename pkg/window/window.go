// Package window finds markers in character streams.
package window

// FirstUnique returns the 1-based position of the last character of the first
// window of width characters that are pairwise distinct. It reports false when
// no such window exists, which includes width <= 0 and inputs shorter than
// width. Positions count runes, not bytes.
func FirstUnique(s string, width int) (int, bool) {
	if width <= 0 {
		return 0, false
	}

	runes := []rune(s)
	counts := make(map[rune]int, width)
	distinct := 0

	for end, r := range runes {
		counts[r]++
		if counts[r] == 1 {
			distinct++
		}

		if end >= width {
			out := runes[end-width]

			counts[out]--
			if counts[out] == 0 {
				distinct--
			}
		}

		if distinct == width {
			return end + 1, true
		}
	}

	return 0, false
}
