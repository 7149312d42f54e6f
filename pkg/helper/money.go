package helper

import (
	"strconv"
	"strings"
)

const thousandsGroup = 3

// FormatVND renders an amount with dot thousands separators, e.g. 1500000 -> "1.500.000 VND".
func FormatVND(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var sb strings.Builder

	if neg {
		sb.WriteByte('-')
	}

	for i, d := range digits {
		if i > 0 && (len(digits)-i)%thousandsGroup == 0 {
			sb.WriteByte('.')
		}

		sb.WriteRune(d)
	}

	sb.WriteString(" VND")

	return sb.String()
}
