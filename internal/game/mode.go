package game

// Mode игровой режим — закрытый перечислимый тип.
// Допустимые переходы: MainMenu → Loading → Playing ⇄ Paused.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeLoading
	ModePlaying
	ModePaused
)

// String возвращает строковое представление режима
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModeLoading:
		return "Loading"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Effect побочный эффект перехода режимов, исполняемый фронтендом.
// Переход возвращает явный список эффектов вместо разрозненных
// императивных вызовов внутри игровой логики.
type Effect int

const (
	EffectDespawnMainMenu Effect = iota
	EffectDespawnLoading
	EffectDespawnPause
	EffectSpawnCrosshair
	EffectShowPauseMenu
	EffectCapturePointer
	EffectReleasePointer
)

// String возвращает строковое представление эффекта
func (e Effect) String() string {
	switch e {
	case EffectDespawnMainMenu:
		return "DespawnMainMenu"
	case EffectDespawnLoading:
		return "DespawnLoading"
	case EffectDespawnPause:
		return "DespawnPause"
	case EffectSpawnCrosshair:
		return "SpawnCrosshair"
	case EffectShowPauseMenu:
		return "ShowPauseMenu"
	case EffectCapturePointer:
		return "CapturePointer"
	case EffectReleasePointer:
		return "ReleasePointer"
	default:
		return "Unknown"
	}
}

// enterEffects возвращает список эффектов входа в режим next.
// Вход в Playing всегда убирает экраны загрузки и паузы и ставит
// прицел: список одинаков и для завершения загрузки, и для снятия
// паузы.
func enterEffects(next Mode) []Effect {
	switch next {
	case ModeLoading:
		return []Effect{EffectDespawnMainMenu}
	case ModePlaying:
		return []Effect{
			EffectDespawnLoading,
			EffectDespawnPause,
			EffectSpawnCrosshair,
			EffectCapturePointer,
		}
	case ModePaused:
		return []Effect{
			EffectReleasePointer,
			EffectShowPauseMenu,
		}
	default:
		return nil
	}
}
