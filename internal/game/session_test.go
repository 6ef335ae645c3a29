package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-game/internal/settings"
	"github.com/annel0/voxel-game/internal/vec"
)

const testDt = 1.0 / 60.0

// recordingFrontend фиксирует все вызовы сессии к фронтенду
type recordingFrontend struct {
	blocks          int
	surfaces        int
	despawned       []Tag
	shown           []Tag
	pointerCaptured bool
}

func (rf *recordingFrontend) SpawnBlock(pos vec.Vec3, surface bool) {
	rf.blocks++
	if surface {
		rf.surfaces++
	}
}

func (rf *recordingFrontend) DespawnTag(tag Tag) {
	rf.despawned = append(rf.despawned, tag)
	if tag == TagTerrain {
		rf.blocks = 0
		rf.surfaces = 0
	}
}

func (rf *recordingFrontend) ShowUI(tag Tag) {
	rf.shown = append(rf.shown, tag)
}

func (rf *recordingFrontend) SetPointerCaptured(captured bool) {
	rf.pointerCaptured = captured
}

// sessionInput программируемый снимок ввода на один тик
type sessionInput struct {
	pressed map[settings.Action]bool
	just    map[settings.Action]bool
}

func newSessionInput() *sessionInput {
	return &sessionInput{
		pressed: make(map[settings.Action]bool),
		just:    make(map[settings.Action]bool),
	}
}

func (si *sessionInput) tap(action settings.Action) *sessionInput {
	si.just[action] = true
	si.pressed[action] = true
	return si
}

func (si *sessionInput) reset() {
	clear(si.pressed)
	clear(si.just)
}

func (si *sessionInput) Pressed(action settings.Action) bool     { return si.pressed[action] }
func (si *sessionInput) JustPressed(action settings.Action) bool { return si.just[action] }
func (si *sessionInput) PointerDelta() (float64, float64)        { return 0, 0 }

func newTestSession(fe *recordingFrontend, size, budget int) *Session {
	return NewSession(fe, settings.NewGameSettings(), size, 42, budget, nil)
}

// advanceToPlaying доводит сессию из главного меню до игры
func advanceToPlaying(t *testing.T, s *Session, in *sessionInput) {
	t.Helper()

	in.tap(settings.ActionStart)
	s.Tick(in, testDt)
	in.reset()

	for i := 0; s.Mode() == ModeLoading; i++ {
		require.Less(t, i, 1000, "Загрузка не завершается")
		s.Tick(in, testDt)
	}
	require.Equal(t, ModePlaying, s.Mode())
}

func TestSession_StartsInMainMenu(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)

	assert.Equal(t, ModeMainMenu, s.Mode())
	assert.Nil(t, s.Player(), "Игрок не существует до входа в мир")

	_, _, _, ok := s.PlayerTransform()
	assert.False(t, ok)
}

func TestSession_StartEntersLoading(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput().tap(settings.ActionStart)

	s.Tick(in, testDt)

	assert.Equal(t, ModeLoading, s.Mode())
	assert.Equal(t, []Tag{TagMainMenuUI}, fe.despawned, "Вход в загрузку убирает главное меню")
}

func TestSession_LoadingCompletesWithinBudget(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput().tap(settings.ActionStart)
	s.Tick(in, testDt)
	in.reset()

	// 16 колонок при бюджете 5 за тик: ceil(16/5) = 4 тика
	ticks := 0
	for s.Mode() == ModeLoading {
		s.Tick(in, testDt)
		ticks++
		require.LessOrEqual(t, ticks, 4)
	}

	assert.Equal(t, 4, ticks, "Загрузка занимает ровно ceil(колонки/бюджет) тиков")
	assert.Equal(t, ModePlaying, s.Mode())
	assert.Equal(t, 100, s.LoadingPercent())
}

func TestSession_EnteringPlayingAppliesEffects(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput()

	advanceToPlaying(t, s, in)

	assert.Contains(t, fe.despawned, TagLoadingUI)
	assert.Contains(t, fe.despawned, TagPauseUI)
	assert.Contains(t, fe.shown, TagCrosshair)
	assert.True(t, fe.pointerCaptured, "Вход в игру захватывает указатель")
	assert.NotNil(t, s.Player(), "Игрок создаётся при входе в игру")

	_, _, _, ok := s.PlayerTransform()
	assert.True(t, ok)
}

func TestSession_SpawnedBlocksMatchWorldCount(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput()

	advanceToPlaying(t, s, in)

	// Каждый воксель мира был передан фронтенду ровно один раз
	assert.Equal(t, s.World().Count(), fe.blocks)
	assert.Equal(t, 16, fe.surfaces, "По одному поверхностному блоку на колонку")
}

func TestSession_PauseTogglesAndFreezesSimulation(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput()
	advanceToPlaying(t, s, in)

	in.tap(settings.ActionPause)
	s.Tick(in, testDt)
	in.reset()

	require.Equal(t, ModePaused, s.Mode())
	assert.False(t, fe.pointerCaptured, "Пауза освобождает указатель")
	assert.Contains(t, fe.shown, TagPauseUI)

	// В паузе игрок неподвижен даже при зажатом движении
	posBefore := s.Player().Position
	in.pressed[settings.ActionForward] = true
	for i := 0; i < 10; i++ {
		s.Tick(in, testDt)
	}
	assert.Equal(t, posBefore, s.Player().Position, "Симуляция в паузе стоит")
	in.reset()

	in.tap(settings.ActionPause)
	s.Tick(in, testDt)

	assert.Equal(t, ModePlaying, s.Mode())
	assert.True(t, fe.pointerCaptured, "Возврат в игру снова захватывает указатель")
}

func TestSession_PauseIgnoredInMainMenu(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput().tap(settings.ActionPause)

	s.Tick(in, testDt)

	assert.Equal(t, ModeMainMenu, s.Mode())
}

func TestSession_PlayerFallsUnderGravity(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput()
	advanceToPlaying(t, s, in)

	startY := s.Player().Position.Y()
	for i := 0; i < 30; i++ {
		s.Tick(in, testDt)
	}

	assert.Less(t, s.Player().Position.Y(), startY, "Игрок падает из точки появления")
}

func TestSession_RegenerateReplacesWorldWithFreshSeed(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput()
	advanceToPlaying(t, s, in)

	oldSeed := s.World().Seed()

	in.tap(settings.ActionRegenerate)
	s.Tick(in, testDt)

	assert.NotEqual(t, oldSeed, s.World().Seed(), "Перегенерация берёт свежий сид")
	assert.Equal(t, ModePlaying, s.Mode(), "Режим после перегенерации не меняется")
	assert.Contains(t, fe.despawned, TagTerrain, "Старый рельеф убран целиком")
	assert.Equal(t, s.World().Count(), fe.blocks, "Новый рельеф передан фронтенду полностью")
	assert.True(t, s.World().Count() > 0)
}

func TestSession_RegenerateDuringLoadingJumpsToPlaying(t *testing.T) {
	fe := &recordingFrontend{}
	s := newTestSession(fe, 4, 5)
	in := newSessionInput().tap(settings.ActionStart)
	s.Tick(in, testDt)
	in.reset()

	require.Equal(t, ModeLoading, s.Mode())

	// Перегенерация строит мир синхронно, ждать загрузку больше нечего
	in.tap(settings.ActionRegenerate)
	s.Tick(in, testDt)

	assert.Equal(t, ModePlaying, s.Mode())
	assert.Equal(t, s.World().Count(), fe.blocks)
}
