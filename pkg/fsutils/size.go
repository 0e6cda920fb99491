package fsutils

import "strconv"

var sizeUnits = [...]string{"KB", "MB", "GB", "TB"}

// GetSizeShortText formats a byte count with a binary unit, rounded to the nearest
// whole number. TB is the largest unit.
func GetSizeShortText(size int64) string {
	const k = 1024
	if size < k {
		return strconv.FormatInt(size, 10) + "B"
	}
	unit, div := 0, int64(k)
	for unit < len(sizeUnits)-1 && size >= div*k-div/2 {
		div *= k
		unit++
	}
	return strconv.FormatInt((size+div/2)/div, 10) + sizeUnits[unit]
}
