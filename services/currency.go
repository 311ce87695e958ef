package services

import (
	"fmt"
	"math"
	"strconv"
)

// FormatGBP renders an amount the way it appears in deal summaries:
// pound sign, thousands separators, no decimal places (e.g. "£1,250,000").
func FormatGBP(amount float64) string {
	rounded := int64(math.Round(math.Abs(amount)))
	s := strconv.FormatInt(rounded, 10)

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if amount < 0 {
		return fmt.Sprintf("-£%s", out)
	}
	return fmt.Sprintf("£%s", out)
}
