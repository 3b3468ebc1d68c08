//go:build !darwin

package core

// getLargestScreenSize has no display query off macOS; a 0 dimension leaves
// the configured window size alone.
func getLargestScreenSize() (int, int) {
	return 0, 0
}
