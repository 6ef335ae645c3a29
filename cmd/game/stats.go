package main

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/annel0/voxel-game/internal/logging"
)

// startProcessStats запускает периодический отчёт о CPU и памяти
// процесса. Возвращает функцию остановки.
func startProcessStats(interval time.Duration) func() {
	quit := make(chan struct{})

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		logging.Warn("Не удалось получить информацию о процессе: %v", err)
		return func() {}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cpuPercent, err := proc.CPUPercent()
				if err != nil {
					continue
				}

				memInfo, err := proc.MemoryInfo()
				if err != nil {
					continue
				}

				logging.Debug("📊 Процесс: CPU %.1f%%, RSS %d МиБ", cpuPercent, memInfo.RSS/1024/1024)
			case <-quit:
				return
			}
		}
	}()

	return func() { close(quit) }
}
