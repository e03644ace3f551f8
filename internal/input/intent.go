package input

// Control - логическое управление, к которому привязываются клавиши
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlJump
)

func (c Control) String() string {
	switch c {
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlJump:
		return "jump"
	}
	return "unknown"
}

// ButtonState - состояние одного управления за кадр.
// JustPressed и JustReleased истинны только в кадре перехода.
type ButtonState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Snapshot - состояние всех управлений, снятое один раз за кадр
type Snapshot struct {
	Left  ButtonState
	Right ButtonState
	Jump  ButtonState
}

// Intent - намерение игрока на текущий кадр.
// Direction: -1 влево, 1 вправо, 0 - направления нет.
type Intent struct {
	Direction int
	Jump      bool
}

// HasDirection сообщает, задано ли горизонтальное направление
func (i Intent) HasDirection() bool {
	return i.Direction != 0
}

// Resolve строит намерение из снимка клавиш и намерения прошлого кадра.
//
// Когда зажаты обе клавиши направления, приоритет у фронта отпускания:
// если одну из них только что отпустили, побеждает та, что ещё зажата.
// Иначе побеждает только что нажатая, иначе сохраняется прошлое направление.
func Resolve(s Snapshot, prev Intent) Intent {
	next := Intent{
		Direction: prev.Direction,
		Jump:      s.Jump.Pressed || s.Jump.JustReleased,
	}

	active := s.Left.Pressed || s.Left.JustReleased ||
		s.Right.Pressed || s.Right.JustReleased
	if !active {
		next.Direction = 0
		return next
	}

	var dir int
	switch {
	case s.Right.JustReleased || s.Left.JustReleased:
		if s.Right.Pressed {
			dir = 1
		} else if s.Left.Pressed {
			dir = -1
		}
	case s.Right.JustPressed:
		dir = 1
	case s.Left.JustPressed:
		dir = -1
	default:
		dir = prev.Direction
	}

	// Нулевой результат не сбрасывает направление в этом кадре
	if dir != 0 {
		next.Direction = dir
	}
	return next
}

// Mapper хранит направление прошлого кадра между вызовами
type Mapper struct {
	current Intent
}

// NewMapper создаёт преобразователь без начального направления
func NewMapper() *Mapper {
	return &Mapper{}
}

// Update применяет снимок текущего кадра и возвращает новое намерение
func (m *Mapper) Update(s Snapshot) Intent {
	m.current = Resolve(s, m.current)
	return m.current
}

// Current возвращает последнее вычисленное намерение
func (m *Mapper) Current() Intent {
	return m.current
}

// Reset сбрасывает состояние, например при входе в игру
func (m *Mapper) Reset() {
	m.current = Intent{}
}
