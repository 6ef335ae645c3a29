package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/voxel-game/internal/vec"
)

// Дно мира: колонны заполняются от этой высоты до высоты рельефа
const FloorY = -5

// VoxelWorld хранит множество занятых ячеек решётки.
// Инвариант: колонна (x, z) занята для всех y из [FloorY, height(x,z)],
// верхний воксель колонны помечен как поверхностный (отличие только
// визуальное). Мир наполняется генератором и пересоздаётся целиком
// при перегенерации; физика между тиками его не меняет.
type VoxelWorld struct {
	voxels map[vec.Vec3]bool // значение — признак поверхностного вокселя
	tops   map[vec.Vec2]int  // высота верхнего вокселя каждой колонны
	seed   int64
	size   int
}

// NewVoxelWorld создаёт пустой мир с указанными стороной и сидом
func NewVoxelWorld(size int, seed int64) *VoxelWorld {
	return &VoxelWorld{
		voxels: make(map[vec.Vec3]bool),
		tops:   make(map[vec.Vec2]int),
		seed:   seed,
		size:   size,
	}
}

// Seed возвращает сид, которым мир был сгенерирован
func (w *VoxelWorld) Seed() int64 {
	return w.seed
}

// Size возвращает сторону мира в колоннах
func (w *VoxelWorld) Size() int {
	return w.size
}

// Insert помечает ячейку решётки занятой
func (w *VoxelWorld) Insert(pos vec.Vec3, surface bool) {
	w.voxels[pos] = surface

	col := pos.Column()
	if top, ok := w.tops[col]; !ok || pos.Y > top {
		w.tops[col] = pos.Y
	}
}

// Occupied сообщает, занята ли ячейка решётки
func (w *VoxelWorld) Occupied(pos vec.Vec3) bool {
	_, ok := w.voxels[pos]
	return ok
}

// IsSurface сообщает, является ли воксель поверхностным.
// Для незанятой ячейки возвращает false.
func (w *VoxelWorld) IsSurface(pos vec.Vec3) bool {
	return w.voxels[pos]
}

// ColumnTop возвращает высоту верхнего вокселя колонны
func (w *VoxelWorld) ColumnTop(col vec.Vec2) (int, bool) {
	top, ok := w.tops[col]
	return top, ok
}

// Count возвращает число занятых ячеек
func (w *VoxelWorld) Count() int {
	return len(w.voxels)
}

// VoxelsIn возвращает занятые ячейки, центры которых лежат в открытом
// боксе (center-half, center+half). Служит брод-фазой коллизий: резолвер
// запрашивает только окрестность кандидатной позиции вместо полного
// перебора мира. Порядок результата детерминирован (x, затем y, затем z).
func (w *VoxelWorld) VoxelsIn(center, half mgl64.Vec3) []vec.Vec3 {
	minX := int(math.Ceil(center.X() - half.X()))
	maxX := int(math.Floor(center.X() + half.X()))
	minY := int(math.Ceil(center.Y() - half.Y()))
	maxY := int(math.Floor(center.Y() + half.Y()))
	minZ := int(math.Ceil(center.Z() - half.Z()))
	maxZ := int(math.Floor(center.Z() + half.Z()))

	var result []vec.Vec3
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				if w.Occupied(pos) {
					result = append(result, pos)
				}
			}
		}
	}
	return result
}
