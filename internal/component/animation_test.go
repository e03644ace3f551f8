package component

import "testing"

func TestAnimationTimerTick(t *testing.T) {
	timer := &AnimationTimer{Interval: 0.1}
	fired := 0
	for i := 0; i < 60; i++ {
		if timer.Tick(1.0 / 60) {
			fired++
		}
	}
	// За секунду таймер с интервалом 0.1 срабатывает около 10 раз
	if fired < 9 || fired > 10 {
		t.Fatalf("fired %d times in one second, want 9..10", fired)
	}

	// Длинный кадр не вызывает лавину срабатываний
	timer = &AnimationTimer{Interval: 0.1}
	if !timer.Tick(1.0) {
		t.Fatal("timer did not fire after a long frame")
	}
	if timer.Tick(0) {
		t.Fatal("timer fired twice for a single long frame")
	}
}
