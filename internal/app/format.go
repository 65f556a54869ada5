package app

import "github.com/dustin/go-humanize"

// FormatSize renders a byte count with a binary unit, e.g. "1.5 GiB".
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// percent returns part as a whole-number share of total.
func percent(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(part * 100 / total)
}
