package pkg

// Truncate drops trailing runes from text until it measures at most width
// at size.
func Truncate(d Display, text string, size float64, width int) string {
	r := []rune(text)
	for len(r) > 0 && d.MeasureText(string(r), size) > width {
		r = r[:len(r)-1]
	}
	return string(r)
}

// FitSize shrinks size by step until text measures less than width, or
// until size reaches step.
func FitSize(d Display, text string, size, step float64, width int) float64 {
	for size > step && d.MeasureText(text, size) >= width {
		size -= step
	}
	return size
}
