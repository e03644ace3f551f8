// component/animation.go
package component

// AnimationTimer - повторяющийся таймер смены кадров
type AnimationTimer struct {
	Interval float64 // секунды между кадрами
	Elapsed  float64
}

// Tick продвигает таймер и сообщает, сработал ли он.
// За один вызов таймер срабатывает не больше одного раза.
func (t *AnimationTimer) Tick(deltaTime float64) bool {
	t.Elapsed += deltaTime
	if t.Elapsed < t.Interval {
		return false
	}
	t.Elapsed -= t.Interval
	if t.Elapsed >= t.Interval {
		t.Elapsed = 0
	}
	return true
}
