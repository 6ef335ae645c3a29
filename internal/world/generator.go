package world

import (
	"github.com/annel0/voxel-game/internal/vec"
)

// BlockSink получает каждый сгенерированный воксель.
// Реализуется фронтендом, который создаёт видимый куб
// (поверхностный или подповерхностный вариант материала).
type BlockSink interface {
	PlaceBlock(pos vec.Vec3, surface bool)
}

// Progress счётчики инкрементальной генерации.
// TotalBlocks фиксируется при старте загрузки, BlocksCompleted
// растёт монотонно до TotalBlocks.
type Progress struct {
	BlocksCompleted int
	TotalBlocks     int
}

// Percent возвращает процент готовности загрузки
func (p Progress) Percent() int {
	if p.TotalBlocks == 0 {
		return 100
	}
	return p.BlocksCompleted * 100 / p.TotalBlocks
}

// Done сообщает, завершена ли генерация
func (p Progress) Done() bool {
	return p.BlocksCompleted >= p.TotalBlocks
}

// Generator наполняет VoxelWorld колоннами рельефа по полю высот.
// Работает либо целиком (GenerateFull), либо кооперативно по бюджету
// колонн за тик (Step) — возобновляемая порционная работа, чтобы
// генерация большого мира не блокировала цикл кадра. Это не фоновая
// горутина: состояние продвигается только синхронными вызовами Step.
type Generator struct {
	size     int
	hf       *HeightField
	world    *VoxelWorld
	sink     BlockSink
	progress Progress
}

// NewGenerator создаёт генератор мира со стороной size и указанным сидом.
// sink может быть nil, тогда воксели только записываются в мир.
func NewGenerator(size int, seed int64, sink BlockSink) *Generator {
	return &Generator{
		size:  size,
		hf:    NewHeightField(seed),
		world: NewVoxelWorld(size, seed),
		sink:  sink,
		progress: Progress{
			BlocksCompleted: 0,
			TotalBlocks:     size * size,
		},
	}
}

// World возвращает наполняемый мир
func (g *Generator) World() *VoxelWorld {
	return g.world
}

// Progress возвращает текущие счётчики генерации
func (g *Generator) Progress() Progress {
	return g.progress
}

// HeightField возвращает поле высот генератора
func (g *Generator) HeightField() *HeightField {
	return g.hf
}

// Step продвигает генерацию не более чем на budget колонн.
// Возвращает true, когда все колонны сгенерированы. Результат после
// последнего шага идентичен GenerateFull с теми же сидом и размером.
func (g *Generator) Step(budget int) bool {
	half := g.size / 2

	for i := 0; i < budget; i++ {
		if g.progress.Done() {
			return true
		}

		x := -half + g.progress.BlocksCompleted%g.size
		z := -half + g.progress.BlocksCompleted/g.size
		g.generateColumn(x, z)

		g.progress.BlocksCompleted++
	}

	return g.progress.Done()
}

// GenerateFull генерирует все оставшиеся колонны за один вызов
func (g *Generator) GenerateFull() *VoxelWorld {
	for !g.Step(g.size * g.size) {
	}
	return g.world
}

// generateColumn заполняет одну колонну от дна мира до высоты рельефа,
// помечая верхний воксель поверхностным
func (g *Generator) generateColumn(x, z int) {
	height := g.hf.Height(x, z)

	for y := FloorY; y <= height; y++ {
		pos := vec.Vec3{X: x, Y: y, Z: z}
		surface := y == height

		g.world.Insert(pos, surface)
		if g.sink != nil {
			g.sink.PlaceBlock(pos, surface)
		}
	}
}
