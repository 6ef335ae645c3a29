package world

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Параметры генератора шума Перлина
const (
	noiseAlpha   = 2.0 // Сглаживание шума
	noiseBeta    = 2.0 // Частота шума
	noiseOctaves = 3   // Количество октав

	noiseScale  = 0.1 // Масштаб выборки по горизонтали
	heightScale = 5.0 // Масштаб высоты рельефа
)

// HeightField детерминированная функция высоты рельефа от сида.
// Чистая и без состояния снаружи: одинаковые (x, z) всегда дают
// одинаковую высоту для фиксированного сида.
type HeightField struct {
	seed  int64
	noise *perlin.Perlin
}

// NewHeightField создаёт поле высот с указанным сидом
func NewHeightField(seed int64) *HeightField {
	return &HeightField{
		seed:  seed,
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Seed возвращает сид поля высот
func (hf *HeightField) Seed() int64 {
	return hf.seed
}

// Height возвращает высоту рельефа в колонне (x, z).
// Шум масштабируется в heightScale раз и обрезается снизу нулём,
// поэтому высота всегда неотрицательна.
func (hf *HeightField) Height(x, z int) int {
	n := hf.noise.Noise2D(float64(x)*noiseScale, float64(z)*noiseScale)
	return int(math.Floor(math.Max(0, n*heightScale)))
}
