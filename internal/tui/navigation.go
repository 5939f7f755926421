package tui

// Wrap moves cursor by delta over n items, wrapping at both ends.
func Wrap(cursor, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((cursor+delta)%n + n) % n
}
