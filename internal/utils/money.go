package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTaka renders an amount the way the console prints it, e.g. "1560 Taka".
func FormatTaka(amount int64) string {
	return fmt.Sprintf("%d Taka", amount)
}

// FormatTakaGrouped renders amount with thousand separators for printed reports.
func FormatTakaGrouped(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%s Taka", sign, formatThousand(amount))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
