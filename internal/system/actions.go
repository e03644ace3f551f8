// internal/system/actions.go
package system

import (
	"dr-fingers/internal/defs"
	"dr-fingers/internal/input"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings - клавиши для каждого управления
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
}

// keysByName строится из имён клавиш Ebitengine: "A", "ArrowLeft", "Space"...
var keysByName = func() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[k.String()] = k
	}
	return names
}()

// ParseBindings переводит имена клавиш из определений в ebiten.Key
func ParseBindings(b defs.BindingsDefinition) (KeyBindings, error) {
	var kb KeyBindings
	var err error
	if kb.Left, err = parseKeys(input.ControlLeft, b.Left); err != nil {
		return kb, err
	}
	if kb.Right, err = parseKeys(input.ControlRight, b.Right); err != nil {
		return kb, err
	}
	if kb.Jump, err = parseKeys(input.ControlJump, b.Jump); err != nil {
		return kb, err
	}
	return kb, nil
}

func parseKeys(control input.Control, names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, ok := keysByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown key %q bound to %s", name, control)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ActionSystem раз в кадр опрашивает клавиатуру и обновляет намерение игрока
type ActionSystem struct {
	bindings KeyBindings
	mapper   *input.Mapper
}

func NewActionSystem(bindings KeyBindings) *ActionSystem {
	return &ActionSystem{bindings: bindings, mapper: input.NewMapper()}
}

// Update снимает состояние клавиш и возвращает намерение на этот кадр
func (s *ActionSystem) Update() input.Intent {
	snapshot := input.Snapshot{
		Left:  sampleKeys(s.bindings.Left),
		Right: sampleKeys(s.bindings.Right),
		Jump:  sampleKeys(s.bindings.Jump),
	}
	return s.mapper.Update(snapshot)
}

// Intent возвращает намерение последнего кадра
func (s *ActionSystem) Intent() input.Intent {
	return s.mapper.Current()
}

// Reset забывает направление, например при выходе в меню
func (s *ActionSystem) Reset() {
	s.mapper.Reset()
}

// sampleKeys объединяет несколько клавиш одного управления через ИЛИ
func sampleKeys(keys []ebiten.Key) input.ButtonState {
	var st input.ButtonState
	for _, k := range keys {
		st.Pressed = st.Pressed || ebiten.IsKeyPressed(k)
		st.JustPressed = st.JustPressed || inpututil.IsKeyJustPressed(k)
		st.JustReleased = st.JustReleased || inpututil.IsKeyJustReleased(k)
	}
	return st
}
