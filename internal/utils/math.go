// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTowards сдвигает value к target не более чем на step и не перескакивает цель
func MoveTowards(value, target, step float64) float64 {
	if step <= 0 {
		return value
	}
	diff := target - value
	if math.Abs(diff) <= step {
		return target
	}
	return value + math.Copysign(step, diff)
}

