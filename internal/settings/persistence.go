package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/annel0/voxel-game/internal/logging"
)

// Формат файла привязок: по одной строке "действие=клавиша" на привязку.
// Загрузка терпима к мусору: неизвестный токен клавиши или действия
// пропускается (привязка остаётся по умолчанию), а строка без «=»
// прекращает разбор остатка файла. Каждый пропуск пишется в лог.

// Save записывает привязки клавиш в файл по указанному пути
func (gs *GameSettings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("ошибка создания директории настроек: %w", err)
	}

	var sb strings.Builder
	for _, action := range boundActions {
		fmt.Fprintf(&sb, "%s=%s\n", action, gs.Bindings[action])
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("ошибка записи файла привязок: %w", err)
	}

	return nil
}

// Load читает привязки клавиш из файла, накладывая их на значения по умолчанию.
// Отсутствие файла не является ошибкой: остаются привязки по умолчанию.
func (gs *GameSettings) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("Файл привязок %s отсутствует, используются значения по умолчанию", path)
			return nil
		}
		return fmt.Errorf("ошибка чтения файла привязок: %w", err)
	}

	bound := make(map[Action]struct{}, len(boundActions))
	for _, action := range boundActions {
		bound[action] = struct{}{}
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Строка без разделителя обрывает разбор: уже прочитанные привязки
		// сохраняются, остальные остаются по умолчанию
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			logging.Warn("Файл привязок %s: строка %d без «=», разбор остатка прерван", path, i+1)
			break
		}

		action := Action(strings.TrimSpace(line[:eq]))
		key := Key(strings.TrimSpace(line[eq+1:]))

		if _, ok := bound[action]; !ok {
			logging.Warn("Файл привязок %s: неизвестное действие %q пропущено", path, action)
			continue
		}

		if _, ok := knownKeys[key]; !ok {
			logging.Warn("Файл привязок %s: неизвестная клавиша %q для действия %q, оставлено значение по умолчанию", path, key, action)
			continue
		}

		gs.Bindings[action] = key
	}

	return nil
}
