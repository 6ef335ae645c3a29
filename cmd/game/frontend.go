package main

import (
	"github.com/annel0/voxel-game/internal/game"
	"github.com/annel0/voxel-game/internal/logging"
	"github.com/annel0/voxel-game/internal/settings"
	"github.com/annel0/voxel-game/internal/vec"
)

// headlessFrontend заглушка рендера для headless-запуска: считает
// созданные блоки и пишет эффекты интерфейса в лог вместо отрисовки
type headlessFrontend struct {
	blocksSpawned int
	pointer       bool
}

func newHeadlessFrontend() *headlessFrontend {
	return &headlessFrontend{}
}

func (hf *headlessFrontend) SpawnBlock(pos vec.Vec3, surface bool) {
	hf.blocksSpawned++
}

func (hf *headlessFrontend) DespawnTag(tag game.Tag) {
	if tag == game.TagTerrain {
		hf.blocksSpawned = 0
	}
	logging.Debug("[Frontend] убраны объекты с меткой %s", tag)
}

func (hf *headlessFrontend) ShowUI(tag game.Tag) {
	logging.Debug("[Frontend] показан элемент интерфейса %s", tag)
}

func (hf *headlessFrontend) SetPointerCaptured(captured bool) {
	hf.pointer = captured
	logging.Debug("[Frontend] захват указателя: %v", captured)
}

// scriptedInput детерминированный сценарий ввода для демонстрации:
// нажимает «старт» в меню, затем бежит вперёд и прыгает раз в пять секунд
type scriptedInput struct {
	tick        int
	justPressed map[settings.Action]bool
	pressed     map[settings.Action]bool
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{
		justPressed: make(map[settings.Action]bool),
		pressed:     make(map[settings.Action]bool),
	}
}

// Advance продвигает сценарий на один тик
func (si *scriptedInput) Advance(session *game.Session) {
	si.tick++
	clear(si.justPressed)
	clear(si.pressed)

	switch session.Mode() {
	case game.ModeMainMenu:
		si.justPressed[settings.ActionStart] = true
	case game.ModePlaying:
		si.pressed[settings.ActionForward] = true
		if si.tick%(tickRate*5) == 0 {
			si.justPressed[settings.ActionJump] = true
		}
	}
}

func (si *scriptedInput) Pressed(action settings.Action) bool {
	return si.pressed[action] || si.justPressed[action]
}

func (si *scriptedInput) JustPressed(action settings.Action) bool {
	return si.justPressed[action]
}

func (si *scriptedInput) PointerDelta() (dx, dy float64) {
	return 0, 0
}
