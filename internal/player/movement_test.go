package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-game/internal/settings"
)

// fakeInput снимок ввода для тестов контроллера
type fakeInput struct {
	pressed map[settings.Action]bool
	just    map[settings.Action]bool
	dx, dy  float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed: make(map[settings.Action]bool),
		just:    make(map[settings.Action]bool),
	}
}

func (fi *fakeInput) Pressed(action settings.Action) bool {
	return fi.pressed[action] || fi.just[action]
}

func (fi *fakeInput) JustPressed(action settings.Action) bool {
	return fi.just[action]
}

func (fi *fakeInput) PointerDelta() (float64, float64) {
	return fi.dx, fi.dy
}

func (fi *fakeInput) reset() {
	clear(fi.pressed)
	clear(fi.just)
	fi.dx, fi.dy = 0, 0
}

func horizontalSpeed(st *State) float64 {
	return math.Hypot(st.Velocity.X(), st.Velocity.Z())
}

func TestControl_DiagonalSpeedEqualsCardinal(t *testing.T) {
	dt := 1.0 / 60.0

	// Только вперёд
	st := NewState(mgl64.Vec3{})
	in := newFakeInput()
	in.pressed[settings.ActionForward] = true
	Control(st, in, dt)
	cardinal := horizontalSpeed(st)
	require.Greater(t, cardinal, 0.0)

	// Вперёд + вправо: диагональ нормирована, а не в √2 длиннее
	st = NewState(mgl64.Vec3{})
	in.reset()
	in.pressed[settings.ActionForward] = true
	in.pressed[settings.ActionStrafeRight] = true
	Control(st, in, dt)

	assert.InDelta(t, cardinal, horizontalSpeed(st), 1e-9,
		"Диагональное движение имеет ту же скорость, что и осевое")
}

func TestControl_OppositeKeysCancel(t *testing.T) {
	st := NewState(mgl64.Vec3{})
	in := newFakeInput()
	in.pressed[settings.ActionForward] = true
	in.pressed[settings.ActionBackward] = true

	Control(st, in, 1.0/60.0)

	assert.Zero(t, st.Velocity.X(), "Противоположные клавиши взаимно гасятся")
	assert.Zero(t, st.Velocity.Z())
}

func TestControl_ThreeKeysGiveZeroMovement(t *testing.T) {
	// Комбинация вне восьми осмысленных даёт ноль на этом тике
	st := NewState(mgl64.Vec3{})
	in := newFakeInput()
	in.pressed[settings.ActionForward] = true
	in.pressed[settings.ActionStrafeLeft] = true
	in.pressed[settings.ActionStrafeRight] = true

	Control(st, in, 1.0/60.0)

	assert.Zero(t, horizontalSpeed(st), "Три зажатые клавиши движения дают ноль")
}

func TestControl_SprintMultiplier(t *testing.T) {
	dt := 1.0 / 60.0

	st := NewState(mgl64.Vec3{})
	in := newFakeInput()
	in.pressed[settings.ActionForward] = true
	Control(st, in, dt)
	base := horizontalSpeed(st)

	st = NewState(mgl64.Vec3{})
	in.pressed[settings.ActionSprint] = true
	Control(st, in, dt)

	assert.InDelta(t, base*SprintMultiplier, horizontalSpeed(st), 1e-9,
		"Спринт умножает скорость в %v раза", SprintMultiplier)
}

func TestControl_VelocityResetWithoutKeys(t *testing.T) {
	st := NewState(mgl64.Vec3{})
	in := newFakeInput()
	in.pressed[settings.ActionForward] = true
	Control(st, in, 1.0/60.0)
	require.Greater(t, horizontalSpeed(st), 0.0)

	// Без зажатых клавиш горизонтальная скорость обнуляется: инерции нет
	in.reset()
	Control(st, in, 1.0/60.0)
	assert.Zero(t, horizontalSpeed(st), "Горизонтальная скорость не накапливается между тиками")
}

func TestControl_PitchClamped(t *testing.T) {
	st := NewState(mgl64.Vec3{})
	in := newFakeInput()

	// Сколько бы ни накапливалось движение указателя, наклон зажат
	for i := 0; i < 100; i++ {
		in.dy = -10000
		Control(st, in, 1.0/60.0)
		assert.LessOrEqual(t, st.Pitch, PitchLimit)
	}
	assert.Equal(t, PitchLimit, st.Pitch)

	for i := 0; i < 100; i++ {
		in.dy = 10000
		Control(st, in, 1.0/60.0)
		assert.GreaterOrEqual(t, st.Pitch, -PitchLimit)
	}
	assert.Equal(t, -PitchLimit, st.Pitch)
}

func TestControl_JumpRequiresNearZeroVerticalSpeed(t *testing.T) {
	st := NewState(mgl64.Vec3{})
	in := newFakeInput()
	in.just[settings.ActionJump] = true

	Control(st, in, 1.0/60.0)
	assert.Equal(t, JumpImpulse, st.Velocity.Y(), "Прыжок с земли даёт фиксированный импульс")

	// В воздухе повторный прыжок не срабатывает
	st = NewState(mgl64.Vec3{})
	st.Velocity[1] = 5.0
	Control(st, in, 1.0/60.0)
	assert.Equal(t, 5.0, st.Velocity.Y(), "Двойного прыжка в воздухе нет")
}

func TestControl_DoubleTapTogglesFlight(t *testing.T) {
	dt := 0.1
	st := NewState(mgl64.Vec3{})
	in := newFakeInput()

	// Первое нажатие: обычный прыжок
	in.just[settings.ActionJump] = true
	Control(st, in, dt)
	require.Equal(t, JumpImpulse, st.Velocity.Y())
	require.False(t, st.Flying)

	// Второе нажатие через 0.2 с — внутри окна: полёт вместо прыжка
	in.reset()
	Control(st, in, dt)
	in.just[settings.ActionJump] = true
	Control(st, in, dt)

	assert.True(t, st.Flying, "Двойное нажатие в пределах окна включает полёт")
	assert.Zero(t, st.Velocity.Y(), "Вход в полёт обнуляет вертикальную скорость")
}

func TestControl_TapsOutsideWindowJumpIndependently(t *testing.T) {
	dt := 0.1
	st := NewState(mgl64.Vec3{})
	in := newFakeInput()

	in.just[settings.ActionJump] = true
	Control(st, in, dt) // t=0.1, прыжок
	require.Equal(t, JumpImpulse, st.Velocity.Y())

	in.reset()
	Control(st, in, dt) // t=0.2
	Control(st, in, dt) // t=0.3

	// Ровно 0.3 с между нажатиями — граница окна, полёт НЕ включается
	st.Velocity[1] = 0 // приземлился
	in.just[settings.ActionJump] = true
	Control(st, in, dt) // t=0.4, разница 0.3

	assert.False(t, st.Flying, "Интервал ровно в окно не считается двойным нажатием")
	assert.Equal(t, JumpImpulse, st.Velocity.Y(), "Второе нажатие — независимый прыжок")
}

func TestControl_FlightVerticalControl(t *testing.T) {
	st := NewState(mgl64.Vec3{})
	st.Flying = true
	in := newFakeInput()

	// Удержание прыжка — постоянный подъём
	in.pressed[settings.ActionJump] = true
	Control(st, in, 1.0/60.0)
	assert.Equal(t, FlightSpeed, st.Velocity.Y())

	// Удержание снижения — постоянный спуск
	in.reset()
	in.pressed[settings.ActionDescend] = true
	Control(st, in, 1.0/60.0)
	assert.Equal(t, -FlightSpeed, st.Velocity.Y())

	// Ничего не зажато — зависание
	in.reset()
	Control(st, in, 1.0/60.0)
	assert.Zero(t, st.Velocity.Y())
}

func TestControl_DoubleTapExitsFlight(t *testing.T) {
	dt := 0.1
	st := NewState(mgl64.Vec3{})
	st.Flying = true
	in := newFakeInput()

	in.just[settings.ActionJump] = true
	Control(st, in, dt)
	require.True(t, st.Flying, "Одиночное нажатие полёт не выключает")

	in.reset()
	in.just[settings.ActionJump] = true
	Control(st, in, dt)

	assert.False(t, st.Flying, "Тот же жест в полёте выключает полёт")
	assert.Zero(t, st.Velocity.Y())
}

func TestMoveState(t *testing.T) {
	st := NewState(mgl64.Vec3{})
	assert.Equal(t, StateGrounded, st.MoveState())

	st.Velocity[1] = 5
	assert.Equal(t, StateAirborne, st.MoveState())

	st.Flying = true
	assert.Equal(t, StateFlying, st.MoveState())
}
