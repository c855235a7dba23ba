package partials

import (
	"fmt"
	"strconv"
)

// FormatPct formats a signed percentage, e.g. "+2.10%" or "-0.35%"
func FormatPct(n float64) string {
	sign := ""
	if n >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, n)
}

// FormatFixed formats n with the given number of decimals followed by "%"
func FormatFixed(n float64, decimals int) string {
	return strconv.FormatFloat(n, 'f', decimals, 64) + "%"
}

// ReturnClass picks the colour class for a monthly return
func ReturnClass(n float64) string {
	if n >= 0 {
		return "positive"
	}
	return "negative"
}
