package report

import (
	"math"
	"strconv"
)

// FormatTRY: tutarı ₺ sembolü ve binlik ayraçlarla, tam liraya yuvarlayarak
// yazar (₺1.234.567). Kuruş gösterilmez.
func FormatTRY(n float64) string {
	return "₺" + groupThousands(math.Round(n))
}

// FormatNumber: binlik ayraçlı sayı (1.234.567)
func FormatNumber(n float64) string {
	return groupThousands(math.Round(n))
}

func groupThousands(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatFloat(n, 'f', 0, 64)

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
