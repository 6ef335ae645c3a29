package game

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/voxel-game/internal/eventbus"
	"github.com/annel0/voxel-game/internal/logging"
	"github.com/annel0/voxel-game/internal/metrics"
	"github.com/annel0/voxel-game/internal/physics"
	"github.com/annel0/voxel-game/internal/player"
	"github.com/annel0/voxel-game/internal/settings"
	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world"
)

// Точка появления игрока над центром мира
var spawnPosition = mgl64.Vec3{0, 15, 0}

// Session владеет всем состоянием симуляции и продвигает его строго
// по одному тику за кадр. Внутри тика нет горутин: мир, игрок и
// счётчики загрузки мутируются последовательно, перегенерация и
// переходы режимов атомарны в пределах тика.
type Session struct {
	fe       Frontend
	set      *settings.GameSettings
	gm       *metrics.GameMetrics
	mode     Mode
	gen      *world.Generator
	player   *player.State
	rng      *rand.Rand
	size     int
	budget   int
}

// NewSession создаёт сессию в режиме главного меню.
// Мир стороной size генерируется позже, при входе в загрузку;
// gm может быть nil — тогда метрики не собираются.
func NewSession(fe Frontend, set *settings.GameSettings, size int, seed int64, budget int, gm *metrics.GameMetrics) *Session {
	s := &Session{
		fe:     fe,
		set:    set,
		gm:     gm,
		mode:   ModeMainMenu,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		size:   size,
		budget: budget,
	}
	s.gen = world.NewGenerator(size, seed, &frontendSink{fe: fe})
	return s
}

// frontendSink передаёт сгенерированные воксели фронтенду
type frontendSink struct {
	fe Frontend
}

func (fs *frontendSink) PlaceBlock(pos vec.Vec3, surface bool) {
	fs.fe.SpawnBlock(pos, surface)
}

// Mode возвращает текущий игровой режим
func (s *Session) Mode() Mode {
	return s.mode
}

// World возвращает текущий воксельный мир
func (s *Session) World() *world.VoxelWorld {
	return s.gen.World()
}

// Settings возвращает текущие настройки для меню и системы ввода
func (s *Session) Settings() *settings.GameSettings {
	return s.set
}

// LoadingPercent возвращает процент готовности загрузки мира
func (s *Session) LoadingPercent() int {
	return s.gen.Progress().Percent()
}

// PlayerTransform возвращает трансформацию игрока для камеры.
// ok == false, пока игрок не создан (до входа в мир).
func (s *Session) PlayerTransform() (pos mgl64.Vec3, yaw, pitch float64, ok bool) {
	if s.player == nil {
		return mgl64.Vec3{}, 0, 0, false
	}
	return s.player.Position, s.player.Yaw, s.player.Pitch, true
}

// Player возвращает состояние игрока (nil до входа в мир)
func (s *Session) Player() *player.State {
	return s.player
}

// Tick выполняет один шаг симуляции: обработка глобальных триггеров,
// продвижение активного режима, физика игрока.
func (s *Session) Tick(in player.Input, dt float64) {
	start := time.Now()
	defer func() {
		s.gm.ObserveTick(time.Since(start))
	}()

	// Перегенерация доступна из любого режима
	if in.JustPressed(settings.ActionRegenerate) {
		s.regenerateWorld()
	}

	// Переключение паузы по фронту нажатия
	if in.JustPressed(settings.ActionPause) {
		switch s.mode {
		case ModePlaying:
			s.setMode(ModePaused)
		case ModePaused:
			s.setMode(ModePlaying)
		}
	}

	switch s.mode {
	case ModeMainMenu:
		if in.JustPressed(settings.ActionStart) {
			s.setMode(ModeLoading)
		}

	case ModeLoading:
		before := s.gen.Progress().BlocksCompleted
		done := s.gen.Step(s.budget)

		s.gm.AddColumns(s.gen.Progress().BlocksCompleted - before)
		s.gm.SetVoxelCount(s.gen.World().Count())

		if done {
			logging.Info("🌍 Генерация мира завершена: %d вокселей", s.gen.World().Count())
			s.publish(eventbus.EventLoadingComplete, map[string]string{
				"voxels": strconv.Itoa(s.gen.World().Count()),
			})
			s.setMode(ModePlaying)
		}

	case ModePlaying:
		player.Control(s.player, in, dt)

		pos, vel := physics.Step(s.gen.World(), s.player.Position, s.player.Velocity, s.player.Flying, dt)
		s.player.Position = pos
		s.player.Velocity = vel

	case ModePaused:
		// Симуляция стоит: состояние игрока и мира не меняется
	}
}

// setMode переводит машину режимов и исполняет эффекты перехода
func (s *Session) setMode(next Mode) {
	if next == s.mode {
		return
	}

	prev := s.mode
	s.mode = next
	s.gm.SetMode(int(next))

	// Игрок существует только внутри мира
	if next == ModePlaying && s.player == nil {
		s.player = player.NewState(spawnPosition)
	}
	if next == ModeMainMenu {
		s.player = nil
	}

	effects := enterEffects(next)
	for _, effect := range effects {
		s.applyEffect(effect)
	}

	logging.Info("🎛️ Режим %s → %s, эффекты: %v", prev, next, effects)
	s.publish(eventbus.EventModeChanged, map[string]string{
		"from": prev.String(),
		"to":   next.String(),
	})
}

// applyEffect транслирует эффект перехода в вызов фронтенда
func (s *Session) applyEffect(effect Effect) {
	switch effect {
	case EffectDespawnMainMenu:
		s.fe.DespawnTag(TagMainMenuUI)
	case EffectDespawnLoading:
		s.fe.DespawnTag(TagLoadingUI)
	case EffectDespawnPause:
		s.fe.DespawnTag(TagPauseUI)
	case EffectSpawnCrosshair:
		s.fe.ShowUI(TagCrosshair)
	case EffectShowPauseMenu:
		s.fe.ShowUI(TagPauseUI)
	case EffectCapturePointer:
		s.fe.SetPointerCaptured(true)
	case EffectReleasePointer:
		s.fe.SetPointerCaptured(false)
	}
}

// regenerateWorld атомарно перестраивает весь мир со свежим сидом.
// Старый рельеф убирается целиком, новый генерируется синхронно в
// пределах текущего тика: физика не видит частично построенный мир.
func (s *Session) regenerateWorld() {
	oldSeed := s.gen.World().Seed()

	newSeed := s.rng.Int63()
	for newSeed == oldSeed {
		newSeed = s.rng.Int63()
	}

	s.fe.DespawnTag(TagTerrain)

	s.gen = world.NewGenerator(s.size, newSeed, &frontendSink{fe: s.fe})
	s.gen.GenerateFull()

	s.gm.IncRegenerations()
	s.gm.SetVoxelCount(s.gen.World().Count())

	logging.Info("🔄 Мир перегенерирован: сид %d → %d, %d вокселей", oldSeed, newSeed, s.gen.World().Count())
	s.publish(eventbus.EventWorldRegenerate, map[string]string{
		"seed":   strconv.FormatInt(newSeed, 10),
		"voxels": strconv.Itoa(s.gen.World().Count()),
	})

	// Работа загрузки выполнена целиком — переходим в игру сразу
	if s.mode == ModeLoading {
		s.setMode(ModePlaying)
	}
}

// publish отправляет событие сессии в глобальную шину
func (s *Session) publish(eventType string, metadata map[string]string) {
	_ = eventbus.Publish(context.Background(), eventbus.NewEnvelope("session", eventType, 1, metadata))
}
