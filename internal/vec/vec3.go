package vec

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 представляет трехмерный вектор с целочисленными координатами решётки
type Vec3 struct {
	X int
	Y int
	Z int
}

// Column возвращает координаты колонны, игнорируя высоту Y
func (v Vec3) Column() Vec2 {
	return Vec2{X: v.X, Z: v.Z}
}

// Center возвращает центр единичного куба данной ячейки решётки
func (v Vec3) Center() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// FromFloat возвращает ячейку решётки, содержащую непрерывную точку.
// Куб ячейки (x,y,z) занимает диапазон [x-0.5, x+0.5) по каждой оси.
func FromFloat(p mgl64.Vec3) Vec3 {
	return Vec3{
		X: int(math.Floor(p.X() + 0.5)),
		Y: int(math.Floor(p.Y() + 0.5)),
		Z: int(math.Floor(p.Z() + 0.5)),
	}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// DistanceTo возвращает евклидово расстояние до другого вектора
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
