package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/voxel-game/internal/vec"
)

// Gravity ускорение свободного падения, юнитов/с²
const Gravity = 20.0

// Габариты AABB игрока: ширина 0.5, высота 2.0, глубина 0.5
var PlayerSize = mgl64.Vec3{0.5, 2.0, 0.5}

// HalfExtent половина суммы габаритов игрока и единичного блока:
// пересечение по оси есть, когда |разница центров| меньше этой величины
var HalfExtent = mgl64.Vec3{
	(PlayerSize[0] + 1.0) / 2.0,
	(PlayerSize[1] + 1.0) / 2.0,
	(PlayerSize[2] + 1.0) / 2.0,
}

// Запас брод-фазы вокруг кандидатной позиции: коррекция по одной оси
// может сдвинуть кандидата, поэтому окрестность берётся с припуском
var broadphasePad = mgl64.Vec3{1.0, 1.0, 1.0}

// CollisionWorld брод-фаза коллизий: окрестность занятых ячеек вокруг точки
type CollisionWorld interface {
	VoxelsIn(center, half mgl64.Vec3) []vec.Vec3
}

// Step выполняет один тик физики игрока: гравитация (вне полёта),
// интегрирование скорости и разрешение столкновений с вокселями.
// Возвращает скорректированные позицию и скорость.
//
// Разрешение одно-осевое: для каждого пересечения правится ровно одна
// ось — та, у которой |разница центров| наибольшая (вертикаль при
// строгом максимуме по Y, иначе большая из горизонтальных). Скорость
// по исправленной оси обнуляется. Пересечения обрабатываются за один
// проход последовательно против эволюционирующего кандидата, без
// итераций до сходимости. Для угловых случаев это неточнее
// минимального проникновения, но для блочного мира достаточно.
func Step(w CollisionWorld, pos, vel mgl64.Vec3, flying bool, dt float64) (mgl64.Vec3, mgl64.Vec3) {
	if !flying {
		vel[1] -= Gravity * dt
	}

	candidate := pos.Add(vel.Mul(dt))

	searchHalf := HalfExtent.Add(broadphasePad)
	for _, voxel := range w.VoxelsIn(candidate, searchHalf) {
		diff := candidate.Sub(voxel.Center())

		if math.Abs(diff.X()) >= HalfExtent.X() ||
			math.Abs(diff.Y()) >= HalfExtent.Y() ||
			math.Abs(diff.Z()) >= HalfExtent.Z() {
			continue
		}

		center := voxel.Center()
		switch {
		case math.Abs(diff.Y()) > math.Abs(diff.X()) && math.Abs(diff.Y()) > math.Abs(diff.Z()):
			// Вертикаль в приоритете: игрок встаёт на блок или упирается в него снизу
			if diff.Y() > 0 {
				candidate[1] = center.Y() + HalfExtent.Y()
			} else {
				candidate[1] = center.Y() - HalfExtent.Y()
			}
			vel[1] = 0
		case math.Abs(diff.X()) > math.Abs(diff.Z()):
			candidate[0] = center.X() + HalfExtent.X()*sign(diff.X())
			vel[0] = 0
		default:
			candidate[2] = center.Z() + HalfExtent.Z()*sign(diff.Z())
			vel[2] = 0
		}
	}

	return candidate, vel
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
