package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GameMetrics инкапсулирует Prometheus-метрики симуляции.
// Все методы безопасны для nil-получателя: игровая сессия может
// работать без метрик (например, в тестах).
type GameMetrics struct {
	tickDuration    prometheus.Histogram
	blocksGenerated prometheus.Counter
	regenerations   prometheus.Counter
	voxelCount      prometheus.Gauge
	mode            prometheus.Gauge
}

// NewGameMetrics создаёт метрики и регистрирует их в дефолтном регистре.
func NewGameMetrics() *GameMetrics {
	gm := &GameMetrics{
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "game",
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика симуляции.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
		blocksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "game",
			Name:      "terrain_columns_generated_total",
			Help:      "Общее число сгенерированных колонн рельефа.",
		}),
		regenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "game",
			Name:      "world_regenerations_total",
			Help:      "Число полных перегенераций мира.",
		}),
		voxelCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "game",
			Name:      "world_voxels",
			Help:      "Текущее число вокселей в мире.",
		}),
		mode: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "game",
			Name:      "mode",
			Help:      "Текущий игровой режим (0=MainMenu, 1=Loading, 2=Playing, 3=Paused).",
		}),
	}

	prometheus.MustRegister(gm.tickDuration, gm.blocksGenerated, gm.regenerations, gm.voxelCount, gm.mode)
	return gm
}

// ObserveTick фиксирует длительность тика
func (gm *GameMetrics) ObserveTick(d time.Duration) {
	if gm == nil {
		return
	}
	gm.tickDuration.Observe(d.Seconds())
}

// AddColumns увеличивает счётчик сгенерированных колонн
func (gm *GameMetrics) AddColumns(n int) {
	if gm == nil || n <= 0 {
		return
	}
	gm.blocksGenerated.Add(float64(n))
}

// IncRegenerations фиксирует перегенерацию мира
func (gm *GameMetrics) IncRegenerations() {
	if gm == nil {
		return
	}
	gm.regenerations.Inc()
}

// SetVoxelCount выставляет текущее число вокселей
func (gm *GameMetrics) SetVoxelCount(n int) {
	if gm == nil {
		return
	}
	gm.voxelCount.Set(float64(n))
}

// SetMode выставляет текущий игровой режим
func (gm *GameMetrics) SetMode(mode int) {
	if gm == nil {
		return
	}
	gm.mode.Set(float64(mode))
}
