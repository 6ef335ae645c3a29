package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MoveState состояние машины прыжка/полёта
type MoveState int

const (
	StateGrounded MoveState = iota
	StateAirborne
	StateFlying
)

// String возвращает строковое представление состояния движения
func (s MoveState) String() string {
	switch s {
	case StateGrounded:
		return "Grounded"
	case StateAirborne:
		return "Airborne"
	case StateFlying:
		return "Flying"
	default:
		return "Unknown"
	}
}

// State кинематическое состояние игрока. Создаётся при входе в мир,
// мутируется каждый тик контроллером движения и резолвером физики,
// уничтожается при возврате в главное меню.
type State struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Yaw      float64 // Не ограничен, оборачивается тригонометрией
	Pitch    float64 // Зажат в [-PitchLimit, PitchLimit]
	Flying   bool

	clock       float64 // Накопленное симуляционное время, секунды
	lastJumpTap float64 // Время последнего нажатия прыжка (для двойного нажатия)
}

// NewState создаёт состояние игрока в точке появления
func NewState(spawn mgl64.Vec3) *State {
	return &State{
		Position:    spawn,
		lastJumpTap: math.Inf(-1),
	}
}

// Clock возвращает накопленное симуляционное время
func (st *State) Clock() float64 {
	return st.clock
}

// MoveState возвращает текущее состояние машины прыжка/полёта.
// Вне полёта игрок считается стоящим на земле, когда вертикальная
// скорость близка к нулю.
func (st *State) MoveState() MoveState {
	if st.Flying {
		return StateFlying
	}
	if math.Abs(st.Velocity.Y()) < GroundedEpsilon {
		return StateGrounded
	}
	return StateAirborne
}
