package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/voxel-game/internal/settings"
)

// Константы управления движением
const (
	Sensitivity      = 0.002 // Радиан на единицу движения указателя
	PitchLimit       = 1.5   // Предел наклона камеры, радианы
	BaseSpeed        = 200.0 // Базовая горизонтальная скорость, юнитов/с
	SprintMultiplier = 5.0   // Множитель скорости при удержании спринта
	JumpImpulse      = 10.0  // Вертикальный импульс прыжка, юнитов/с
	FlightSpeed      = 10.0  // Вертикальная скорость в полёте, юнитов/с
	FlightTapWindow  = 0.3   // Окно двойного нажатия прыжка, секунды
	GroundedEpsilon  = 0.1   // Порог «стоит на земле» по вертикальной скорости
)

// Input снимок ввода за тик, предоставляется фронтендом
type Input interface {
	Pressed(action settings.Action) bool
	JustPressed(action settings.Action) bool
	PointerDelta() (dx, dy float64)
}

// Control выполняет тик контроллера движения: поворот камеры,
// желаемая горизонтальная скорость, жест прыжка/полёта и вертикальное
// управление в полёте. Вызывается до резолвера физики.
func Control(st *State, in Input, dt float64) {
	st.clock += dt

	controlLook(st, in)
	controlHorizontal(st, in, dt)

	// В полёте вертикальная скорость задаётся напрямую и гравитация
	// не применяется; прыжок/снижение работают как газ вверх/вниз.
	// Жест прыжка обрабатывается после, чтобы переключение полёта
	// обнуляло вертикальную скорость на тике перехода.
	if st.Flying {
		switch {
		case in.Pressed(settings.ActionJump):
			st.Velocity[1] = FlightSpeed
		case in.Pressed(settings.ActionDescend):
			st.Velocity[1] = -FlightSpeed
		default:
			st.Velocity[1] = 0
		}
	}

	controlJump(st, in)
}

// controlLook накапливает поворот камеры от движения указателя
func controlLook(st *State, in Input) {
	dx, dy := in.PointerDelta()
	st.Yaw -= dx * Sensitivity
	st.Pitch -= dy * Sensitivity

	if st.Pitch > PitchLimit {
		st.Pitch = PitchLimit
	}
	if st.Pitch < -PitchLimit {
		st.Pitch = -PitchLimit
	}
}

// controlHorizontal переводит зажатые клавиши движения в горизонтальную
// скорость. Скорость не накапливается: каждый тик она назначается заново
// и обнуляется, когда ни одна клавиша движения не зажата.
func controlHorizontal(st *State, in Input, dt float64) {
	dir := moveDirection(st.Yaw,
		in.Pressed(settings.ActionForward),
		in.Pressed(settings.ActionBackward),
		in.Pressed(settings.ActionStrafeLeft),
		in.Pressed(settings.ActionStrafeRight),
	)

	if dir.Len() == 0 {
		st.Velocity[0] = 0
		st.Velocity[2] = 0
		return
	}

	speed := BaseSpeed
	if in.Pressed(settings.ActionSprint) {
		speed *= SprintMultiplier
	}

	st.Velocity[0] = dir.X() * speed * dt
	st.Velocity[2] = dir.Z() * speed * dt
}

// moveDirection возвращает нормированное горизонтальное направление для
// одной из восьми осмысленных комбинаций клавиш. Противоположные клавиши
// взаимно гасятся; любая комбинация из трёх и более клавиш движения даёт
// нулевое направление.
func moveDirection(yaw float64, f, b, l, r bool) mgl64.Vec3 {
	// Единичные векторы вперёд/вправо из одного только рыскания:
	// наклон камеры на горизонтальное движение не влияет
	forward := mgl64.Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
	right := mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}

	switch {
	case f && !b && !l && !r:
		return forward
	case b && !f && !l && !r:
		return forward.Mul(-1)
	case l && !r && !f && !b:
		return right.Mul(-1)
	case r && !l && !f && !b:
		return right
	case f && l && !b && !r:
		return forward.Sub(right).Normalize()
	case f && r && !b && !l:
		return forward.Add(right).Normalize()
	case b && l && !f && !r:
		return forward.Mul(-1).Sub(right).Normalize()
	case b && r && !f && !l:
		return forward.Mul(-1).Add(right).Normalize()
	default:
		return mgl64.Vec3{}
	}
}

// controlJump обрабатывает жест прыжка: одиночное нажатие — импульс
// (только когда вертикальная скорость около нуля), повторное нажатие в
// пределах окна — переключение полёта вместо прыжка.
func controlJump(st *State, in Input) {
	if !in.JustPressed(settings.ActionJump) {
		return
	}

	if st.clock-st.lastJumpTap < FlightTapWindow {
		st.Flying = !st.Flying
		st.Velocity[1] = 0
		// Жест израсходован: третье нажатие подряд начинает новое окно
		st.lastJumpTap = math.Inf(-1)
		return
	}

	if !st.Flying && math.Abs(st.Velocity.Y()) < GroundedEpsilon {
		st.Velocity[1] = JumpImpulse
	}
	st.lastJumpTap = st.clock
}
