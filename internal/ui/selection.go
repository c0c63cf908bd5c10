package ui

import (
	"strconv"
	"strings"
)

// ParseSelection parses a file-selection expression like "1,3,5-7" into
// the set of chosen 1-based indices. Ranges are inclusive. Tokens that
// do not parse and indices outside [1, maxIndex] are silently dropped,
// so a partially valid expression still selects its valid part.
func ParseSelection(input string, maxIndex int) map[int]bool {
	selected := make(map[int]bool)

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err1 != nil || err2 != nil {
				continue
			}
			for i := start; i <= end; i++ {
				if i >= 1 && i <= maxIndex {
					selected[i] = true
				}
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		if n >= 1 && n <= maxIndex {
			selected[n] = true
		}
	}

	return selected
}
