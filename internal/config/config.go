package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации игры.
// Содержит параметры мира и служебные настройки процесса.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Metrics MetricsConfig `yaml:"metrics"`
	Input   InputConfig   `yaml:"input"`
}

type WorldConfig struct {
	Size      int   `yaml:"size"`       // Сторона мира в колоннах
	Seed      int64 `yaml:"seed"`       // Сид стартовой генерации (0 — значение по умолчанию)
	GenBudget int   `yaml:"gen_budget"` // Колонн за тик при инкрементальной генерации
}

type MetricsConfig struct {
	Port int `yaml:"port"` // Порт Prometheus /metrics
}

type InputConfig struct {
	KeybindingsPath string `yaml:"keybindings_path"` // Путь к файлу привязок клавиш
}

// GetSize возвращает размер мира с поддержкой fallback значений
func (w *WorldConfig) GetSize() int {
	return getIntWithEnvFallback(w.Size, "GAME_WORLD_SIZE", 20)
}

// GetSeed возвращает сид стартовой генерации.
// Стартовый мир детерминирован (сид 42), чтобы запуск был воспроизводимым;
// свежий случайный сид выбирается только при явной перегенерации.
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("GAME_WORLD_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil && seed != 0 {
			return seed
		}
	}
	return 42
}

// GetGenBudget возвращает бюджет генерации на тик с поддержкой fallback значений
func (w *WorldConfig) GetGenBudget() int {
	return getIntWithEnvFallback(w.GenBudget, "GAME_GEN_BUDGET", 100)
}

// GetPort возвращает порт метрик с поддержкой fallback значений
func (m *MetricsConfig) GetPort() int {
	return getIntWithEnvFallback(m.Port, "GAME_METRICS_PORT", 2112)
}

// GetKeybindingsPath возвращает путь к файлу привязок клавиш
func (i *InputConfig) GetKeybindingsPath() string {
	if i.KeybindingsPath != "" {
		return i.KeybindingsPath
	}
	if envVal := os.Getenv("GAME_KEYBINDINGS"); envVal != "" {
		return envVal
	}
	return "settings/keybindings.cfg"
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configVal int, envVar string, defaultVal int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configVal > 0 {
		return configVal
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultVal
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV GAME_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
