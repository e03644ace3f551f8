package physics

import (
	"dr-fingers/internal/input"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const dt = 1.0 / 60

var tuning = Tuning{
	Acceleration: 1500,
	AirControl:   0.5,
	Damping:      500,
	MaxSpeed:     240,
	JumpSpeed:    250,
}

func TestDampingDecaysWithoutOvershoot(t *testing.T) {
	for _, start := range []float64{200, -200, 5, -5, 0} {
		v := cp.Vector{X: start}
		step := tuning.Damping * dt
		for frame := 0; frame < 200; frame++ {
			next := StepVelocity(tuning, v, input.Intent{}, false, dt).Velocity
			if math.Abs(next.X) > math.Abs(v.X) {
				t.Fatalf("start %v frame %d: |vx| grew from %v to %v", start, frame, v.X, next.X)
			}
			if v.X != 0 && math.Signbit(next.X) != math.Signbit(v.X) && next.X != 0 {
				t.Fatalf("start %v frame %d: vx crossed zero: %v -> %v", start, frame, v.X, next.X)
			}
			if want := math.Max(math.Abs(v.X)-step, 0); math.Abs(math.Abs(next.X)-want) > 1e-9 {
				t.Fatalf("start %v frame %d: |vx| = %v, want %v", start, frame, math.Abs(next.X), want)
			}
			v = next
		}
		if v.X != 0 {
			t.Fatalf("start %v: vx = %v after decay, want 0", start, v.X)
		}
	}
}

func TestVelocityIsClamped(t *testing.T) {
	for _, onFloor := range []bool{true, false} {
		for _, dir := range []int{-1, 1} {
			v := cp.Vector{}
			for frame := 0; frame < 600; frame++ {
				v = StepVelocity(tuning, v, input.Intent{Direction: dir}, onFloor, dt).Velocity
				if math.Abs(v.X) > tuning.MaxSpeed {
					t.Fatalf("floor=%v dir=%d frame %d: |vx| = %v exceeds %v", onFloor, dir, frame, v.X, tuning.MaxSpeed)
				}
			}
			if got := v.X * float64(dir); got != tuning.MaxSpeed {
				t.Errorf("floor=%v dir=%d: terminal speed %v, want %v", onFloor, dir, got, tuning.MaxSpeed)
			}
		}
	}

	// Скорость выше предела (например, после толчка от движка) тоже режется
	v := StepVelocity(tuning, cp.Vector{X: 1000}, input.Intent{}, true, dt).Velocity
	if v.X != tuning.MaxSpeed {
		t.Errorf("vx = %v, want %v", v.X, tuning.MaxSpeed)
	}
}

func TestAirAccelerationIsReduced(t *testing.T) {
	right := input.Intent{Direction: 1}
	ground := StepVelocity(tuning, cp.Vector{}, right, true, dt).Velocity.X
	air := StepVelocity(tuning, cp.Vector{}, right, false, dt).Velocity.X

	wantGround := (tuning.Acceleration - tuning.Damping) * dt
	wantAir := (tuning.Acceleration*tuning.AirControl - tuning.Damping) * dt
	if math.Abs(ground-wantGround) > 1e-9 {
		t.Errorf("ground vx = %v, want %v", ground, wantGround)
	}
	if math.Abs(air-wantAir) > 1e-9 {
		t.Errorf("air vx = %v, want %v", air, wantAir)
	}
	if air >= ground {
		t.Errorf("air acceleration %v not below ground %v", air, ground)
	}
}

func TestJumpRequiresFloor(t *testing.T) {
	jump := input.Intent{Jump: true}
	start := cp.Vector{X: 0, Y: -30}

	res := StepVelocity(tuning, start, jump, false, dt)
	if res.Jumped || res.Velocity.Y != start.Y {
		t.Fatalf("jumped in the air: %+v", res)
	}

	res = StepVelocity(tuning, start, jump, true, dt)
	if !res.Jumped || res.Velocity.Y != tuning.JumpSpeed {
		t.Fatalf("jump on floor: %+v, want vy = %v", res, tuning.JumpSpeed)
	}

	// Прыжок задаёт скорость, а не прибавляет её
	res = StepVelocity(tuning, cp.Vector{Y: 100}, jump, true, dt)
	if res.Velocity.Y != tuning.JumpSpeed {
		t.Fatalf("vy = %v, want %v", res.Velocity.Y, tuning.JumpSpeed)
	}

	res = StepVelocity(tuning, start, input.Intent{}, true, dt)
	if res.Jumped || res.Velocity.Y != start.Y {
		t.Fatalf("vertical velocity touched without jump: %+v", res)
	}
}
