package settings

// Action логическое игровое действие, на которое назначается клавиша
type Action string

const (
	ActionForward     Action = "forward"
	ActionBackward    Action = "backward"
	ActionStrafeLeft  Action = "strafe_left"
	ActionStrafeRight Action = "strafe_right"
	ActionJump        Action = "jump"
	ActionSprint      Action = "sprint"

	// Действия ниже не перенастраиваются и не сохраняются в файл привязок
	ActionDescend    Action = "descend"
	ActionPause      Action = "pause"
	ActionStart      Action = "start"
	ActionRegenerate Action = "regenerate"
)

// Key символический идентификатор физической клавиши
type Key string

const (
	KeyW           Key = "KeyW"
	KeyA           Key = "KeyA"
	KeyS           Key = "KeyS"
	KeyD           Key = "KeyD"
	KeyQ           Key = "KeyQ"
	KeyE           Key = "KeyE"
	KeyR           Key = "KeyR"
	KeyF           Key = "KeyF"
	KeySpace       Key = "Space"
	KeyShiftLeft   Key = "ShiftLeft"
	KeyControlLeft Key = "ControlLeft"
	KeyEscape      Key = "Escape"
	KeyEnter       Key = "Enter"
)

// knownKeys содержит все распознаваемые токены клавиш.
// Неизвестный токен в файле привязок оставляет действию значение по умолчанию.
var knownKeys = map[Key]struct{}{
	KeyW: {}, KeyA: {}, KeyS: {}, KeyD: {},
	KeyQ: {}, KeyE: {}, KeyR: {}, KeyF: {},
	KeySpace: {}, KeyShiftLeft: {}, KeyControlLeft: {},
	KeyEscape: {}, KeyEnter: {},
}

// boundActions перечисляет сохраняемые действия в порядке записи в файл
var boundActions = []Action{
	ActionForward,
	ActionBackward,
	ActionStrafeLeft,
	ActionStrafeRight,
	ActionJump,
	ActionSprint,
}

// GameSettings содержит настройки, которые читают меню и система ввода
type GameSettings struct {
	FieldOfView float64        // Угол обзора камеры в градусах
	Bindings    map[Action]Key // Привязки клавиш для шести действий
}

// NewGameSettings создаёт настройки со значениями по умолчанию
func NewGameSettings() *GameSettings {
	return &GameSettings{
		FieldOfView: 90.0,
		Bindings:    defaultBindings(),
	}
}

// defaultBindings возвращает привязки клавиш по умолчанию
func defaultBindings() map[Action]Key {
	return map[Action]Key{
		ActionForward:     KeyW,
		ActionBackward:    KeyS,
		ActionStrafeLeft:  KeyA,
		ActionStrafeRight: KeyD,
		ActionJump:        KeySpace,
		ActionSprint:      KeyShiftLeft,
	}
}

// KeyFor возвращает клавишу, назначенную действию.
// Для непривязанных действий возвращается пустой токен.
func (gs *GameSettings) KeyFor(action Action) Key {
	return gs.Bindings[action]
}

// Bind назначает действию новую клавишу
func (gs *GameSettings) Bind(action Action, key Key) {
	gs.Bindings[action] = key
}
