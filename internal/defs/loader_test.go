package defs

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"
)

func TestLoadGameDefinitionsShipped(t *testing.T) {
	gd, err := LoadGameDefinitions(os.DirFS("../assets/data"), "defs/game.json")
	if err != nil {
		t.Fatalf("shipped definitions rejected: %v", err)
	}
	if gd.Movement.AirControl != 0.5 {
		t.Errorf("air_control = %v, want 0.5", gd.Movement.AirControl)
	}
	if gd.Movement.Acceleration <= gd.Movement.Damping {
		t.Error("ground acceleration must overcome damping")
	}
	if len(gd.Bindings.Jump) == 0 {
		t.Error("jump has no bindings")
	}
}

func TestLoadGameDefinitionsErrors(t *testing.T) {
	valid := `{"movement":{"acceleration":1,"air_control":0.5,"damping":1,"max_speed":1,"jump_speed":1,"gravity":1},
"bindings":{"left":["A"],"right":["D"],"jump":["Space"]}}`

	fsys := fstest.MapFS{
		"ok.json":        {Data: []byte(valid)},
		"broken.json":    {Data: []byte(`{"movement":`)},
		"negative.json":  {Data: []byte(`{"movement":{"acceleration":-1,"air_control":0.5,"damping":1,"max_speed":1,"jump_speed":1,"gravity":1},"bindings":{"left":["A"],"right":["D"],"jump":["Space"]}}`)},
		"air.json":       {Data: []byte(`{"movement":{"acceleration":1,"air_control":2,"damping":1,"max_speed":1,"jump_speed":1,"gravity":1},"bindings":{"left":["A"],"right":["D"],"jump":["Space"]}}`)},
		"nobinding.json": {Data: []byte(`{"movement":{"acceleration":1,"air_control":0.5,"damping":1,"max_speed":1,"jump_speed":1,"gravity":1},"bindings":{"left":["A"],"right":["D"]}}`)},
	}

	if _, err := LoadGameDefinitions(fsys, "ok.json"); err != nil {
		t.Fatalf("valid definitions rejected: %v", err)
	}
	if _, err := LoadGameDefinitions(fsys, "missing.json"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadGameDefinitions(fsys, "broken.json"); err == nil {
		t.Error("expected error for malformed JSON")
	}
	for _, name := range []string{"negative.json", "air.json", "nobinding.json"} {
		if _, err := LoadGameDefinitions(fsys, name); !errors.Is(err, ErrInvalidDefinition) {
			t.Errorf("%s: got %v, want ErrInvalidDefinition", name, err)
		}
	}
}
