package vec

import "math"

// Vec2 представляет координаты колонны (X, Z) в горизонтальной плоскости мира
type Vec2 struct {
	X, Z int
}

// DistanceTo вычисляет расстояние до другой колонны
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Z: v.Z + other.Z}
}

// Equals проверяет равенство векторов
func (v Vec2) Equals(other Vec2) bool {
	return v.X == other.X && v.Z == other.Z
}
