package game

import (
	"github.com/annel0/voxel-game/internal/vec"
)

// Tag метка группы объектов фронтенда: позволяет убирать рельеф или
// элементы интерфейса целиком при переходах режимов и перегенерации
type Tag int

const (
	TagTerrain Tag = iota
	TagMainMenuUI
	TagLoadingUI
	TagPauseUI
	TagCrosshair
)

// String возвращает строковое представление метки
func (t Tag) String() string {
	switch t {
	case TagTerrain:
		return "Terrain"
	case TagMainMenuUI:
		return "MainMenuUI"
	case TagLoadingUI:
		return "LoadingUI"
	case TagPauseUI:
		return "PauseUI"
	case TagCrosshair:
		return "Crosshair"
	default:
		return "Unknown"
	}
}

// Frontend интерфейс внешнего рендера/оконной системы.
// Ядро симуляции вызывает его для видимых побочных эффектов;
// отрисовка, раскладка интерфейса и окно остаются вне ядра.
type Frontend interface {
	// SpawnBlock создаёт видимый единичный куб в ячейке решётки.
	// surface выбирает вариант материала (поверхностный/подповерхностный).
	SpawnBlock(pos vec.Vec3, surface bool)

	// DespawnTag убирает все объекты с указанной меткой.
	DespawnTag(tag Tag)

	// ShowUI показывает элемент интерфейса с указанной меткой.
	ShowUI(tag Tag)

	// SetPointerCaptured захватывает или освобождает указатель.
	SetPointerCaptured(captured bool)
}
