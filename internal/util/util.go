package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatVND formats an amount in Vietnamese đồng with dot-separated
// thousands, the way vi-VN locales render money (e.g. "1.500.000 VND").
// Fractional đồng are not a thing; the amount is rounded.
func FormatVND(amount float64) string {
	return groupThousands(int64(math.Round(amount))) + " VND"
}

// FormatProgress renders funding progress as "raised/target (pct%)".
func FormatProgress(raised, target float64) string {
	pct := 0.0
	if target > 0 {
		pct = raised / target * 100
	}

	return fmt.Sprintf("%s/%s (%.0f%%)", FormatVND(raised), FormatVND(target), pct)
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}

	digits := strconv.FormatInt(n, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ".")
}
