package dxf

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat renders v as the shortest decimal that parses back to v.
// Exponent form is only used for magnitudes a plain decimal would bloat.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeGroup writes one group-code/value pair.
func writeGroup(b *strings.Builder, code int, value string) {
	b.WriteString(strconv.Itoa(code))
	b.WriteByte('\n')
	b.WriteString(value)
	b.WriteByte('\n')
}

func writeFloat(b *strings.Builder, code int, v float64) {
	writeGroup(b, code, formatFloat(v))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
