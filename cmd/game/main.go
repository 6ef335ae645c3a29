package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-game/internal/config"
	"github.com/annel0/voxel-game/internal/eventbus"
	"github.com/annel0/voxel-game/internal/game"
	"github.com/annel0/voxel-game/internal/logging"
	"github.com/annel0/voxel-game/internal/metrics"
	"github.com/annel0/voxel-game/internal/settings"
)

const tickRate = 60 // Тиков симуляции в секунду

func main() {
	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("game"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🎮 Запуск воксельной игры (headless-режим)...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load("")
	if err != nil {
		logging.Error("Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	worldSize := cfg.World.GetSize()
	seed := cfg.World.GetSeed()
	budget := cfg.World.GetGenBudget()
	metricsAddr := fmt.Sprintf(":%d", cfg.Metrics.GetPort())

	logging.Info("📡 Конфигурация: мир %dx%d, сид %d, бюджет %d колонн/тик, метрики %s",
		worldSize, worldSize, seed, budget, metricsAddr)

	// === НАСТРОЙКИ ИГРОКА ===
	gameSettings := settings.NewGameSettings()
	keybindingsPath := cfg.Input.GetKeybindingsPath()
	if err := gameSettings.Load(keybindingsPath); err != nil {
		// Неудачная загрузка деградирует до значений по умолчанию
		logging.Warn("Ошибка загрузки привязок клавиш: %v, используются значения по умолчанию", err)
	}

	// === ШИНА СОБЫТИЙ И МЕТРИКИ ===
	bus := eventbus.NewMemoryBus(1024)
	eventbus.Init(bus)
	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Error("Ошибка подписки лог-слушателя: %v", err)
	}

	gameMetrics := metrics.NewGameMetrics()
	exporter := eventbus.NewMetricsExporter(bus)
	exporter.StartHTTP(metricsAddr)
	defer exporter.Stop()

	// Периодический отчёт о потреблении ресурсов процесса
	stopStats := startProcessStats(30 * time.Second)
	defer stopStats()

	// === СЕССИЯ ===
	frontend := newHeadlessFrontend()
	session := game.NewSession(frontend, gameSettings, worldSize, seed, budget, gameMetrics)

	logging.Info("🕹️ Сессия создана, режим: %s", session.Mode())

	// Демонстрационный сценарий ввода: старт из меню, затем бег вперёд
	// с периодическими прыжками
	script := newScriptedInput()

	// === ГЛАВНЫЙ ЦИКЛ ===
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	statusEvery := time.NewTicker(time.Second)
	defer statusEvery.Stop()

	dt := 1.0 / float64(tickRate)

	for {
		select {
		case <-sigCh:
			logging.Info("🛑 Получен сигнал завершения, остановка симуляции")
			return

		case <-statusEvery.C:
			logStatus(session)

		case <-ticker.C:
			script.Advance(session)
			session.Tick(script, dt)
		}
	}
}

// logStatus пишет сводку состояния сессии в лог
func logStatus(session *game.Session) {
	switch session.Mode() {
	case game.ModeLoading:
		logging.Info("⏳ Загрузка мира: %d%%", session.LoadingPercent())
	case game.ModePlaying:
		if pos, yaw, pitch, ok := session.PlayerTransform(); ok {
			logging.Info("🚶 Игрок: позиция (%.2f, %.2f, %.2f), yaw %.2f, pitch %.2f, состояние %s",
				pos.X(), pos.Y(), pos.Z(), yaw, pitch, session.Player().MoveState())
		}
	}
}
