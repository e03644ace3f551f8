// pkg/utils/math.go
package utils

// Wrap returns i modulo n in the range [0, n). n must be positive.
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
