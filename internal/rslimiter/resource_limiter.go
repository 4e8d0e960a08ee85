package rslimiter

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/pathewatch/pathewatch/internal/config"
)

const defaultCheckInterval = 30 * time.Second

// ResourceLimiter watches memory, CPU, and goroutine usage of the
// long-running watch process. It logs warnings when usage approaches the
// configured limits and can trigger a graceful shutdown when they are
// exceeded, so a leak degrades into a restart instead of an OOM kill.
type ResourceLimiter struct {
	config           config.ResourceLimiterConfig
	logger           zerolog.Logger
	ctx              context.Context
	cancel           context.CancelFunc
	wg               sync.WaitGroup
	checkInterval    time.Duration
	memoryThreshold  int64
	goroutineWarning int
	isRunning        bool
	mu               sync.RWMutex
	shutdownCallback func() // triggers graceful shutdown of the watch loop
}

// NewResourceLimiter creates a new resource limiter.
func NewResourceLimiter(cfg config.ResourceLimiterConfig, logger zerolog.Logger) *ResourceLimiter {
	ctx, cancel := context.WithCancel(context.Background())

	checkInterval := cfg.CheckInterval()
	if checkInterval <= 0 {
		checkInterval = defaultCheckInterval
	}

	return &ResourceLimiter{
		config:           cfg,
		logger:           logger.With().Str("component", "ResourceLimiter").Logger(),
		ctx:              ctx,
		cancel:           cancel,
		checkInterval:    checkInterval,
		memoryThreshold:  int64(float64(cfg.MaxMemoryMB) * cfg.MemoryThreshold),
		goroutineWarning: int(float64(cfg.MaxGoroutines) * cfg.GoroutineWarning),
	}
}

// SetShutdownCallback sets the callback used to request a graceful shutdown.
func (rl *ResourceLimiter) SetShutdownCallback(callback func()) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.shutdownCallback = callback
}

// Start begins monitoring resource usage.
func (rl *ResourceLimiter) Start() {
	rl.mu.Lock()
	if rl.isRunning {
		rl.mu.Unlock()
		return
	}
	rl.isRunning = true
	rl.mu.Unlock()

	rl.wg.Add(1)
	go rl.monitorResources()

	rl.logger.Info().
		Int64("max_memory_mb", rl.config.MaxMemoryMB).
		Int("max_goroutines", rl.config.MaxGoroutines).
		Dur("check_interval", rl.checkInterval).
		Float64("system_mem_threshold", rl.config.SystemMemThreshold).
		Float64("cpu_threshold", rl.config.CPUThreshold).
		Bool("auto_shutdown_enabled", rl.config.EnableAutoShutdown).
		Msg("Resource limiter started")
}

// Stop stops the resource monitor.
func (rl *ResourceLimiter) Stop() {
	rl.mu.Lock()
	if !rl.isRunning {
		rl.mu.Unlock()
		return
	}
	rl.isRunning = false
	rl.mu.Unlock()

	rl.cancel()
	rl.wg.Wait()
	rl.logger.Info().Msg("Resource limiter stopped")
}

// CheckMemoryLimit checks if current heap usage exceeds the configured limit.
func (rl *ResourceLimiter) CheckMemoryLimit() error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	currentMB := int64(m.Alloc / 1024 / 1024)
	if currentMB > rl.config.MaxMemoryMB {
		return fmt.Errorf("memory limit exceeded: current %dMB > limit %dMB", currentMB, rl.config.MaxMemoryMB)
	}
	return nil
}

// CheckSystemMemoryLimit checks if system memory usage exceeds the threshold.
func (rl *ResourceLimiter) CheckSystemMemoryLimit() (bool, error) {
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return false, fmt.Errorf("failed to get system memory stats: %w", err)
	}

	usedPercent := vmStat.UsedPercent / 100.0
	if usedPercent > rl.config.SystemMemThreshold {
		rl.logger.Warn().
			Float64("used_percent", usedPercent*100).
			Float64("threshold_percent", rl.config.SystemMemThreshold*100).
			Uint64("used_mb", vmStat.Used/1024/1024).
			Uint64("total_mb", vmStat.Total/1024/1024).
			Msg("System memory usage exceeded threshold")
		return true, nil
	}
	return false, nil
}

// CheckCPULimit checks if CPU usage exceeds the threshold.
func (rl *ResourceLimiter) CheckCPULimit() (bool, error) {
	cpuPercents, err := cpu.Percent(time.Second, false)
	if err != nil {
		return false, fmt.Errorf("failed to get CPU usage: %w", err)
	}
	if len(cpuPercents) == 0 {
		return false, fmt.Errorf("no CPU usage data available")
	}

	cpuUsage := cpuPercents[0] / 100.0
	if cpuUsage > rl.config.CPUThreshold {
		rl.logger.Warn().
			Float64("cpu_usage_percent", cpuUsage*100).
			Float64("threshold_percent", rl.config.CPUThreshold*100).
			Msg("CPU usage exceeded threshold")
		return true, nil
	}
	return false, nil
}

// CheckGoroutineLimit checks if the goroutine count exceeds the limit.
func (rl *ResourceLimiter) CheckGoroutineLimit() error {
	current := runtime.NumGoroutine()
	if current > rl.config.MaxGoroutines {
		return fmt.Errorf("goroutine limit exceeded: current %d > limit %d", current, rl.config.MaxGoroutines)
	}
	return nil
}

// monitorResources runs the sampling loop.
func (rl *ResourceLimiter) monitorResources() {
	defer rl.wg.Done()

	ticker := time.NewTicker(rl.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.ctx.Done():
			return
		case <-ticker.C:
			rl.checkAndLogResourceUsage()
		}
	}
}

// checkAndLogResourceUsage samples usage, logs warnings, and triggers the
// shutdown callback when auto-shutdown is enabled and a limit is exceeded.
func (rl *ResourceLimiter) checkAndLogResourceUsage() {
	usage := GetResourceUsage()

	rl.logWarnings(usage)

	if rl.config.EnableAutoShutdown {
		if exceeded, reason := rl.checkShutdownConditions(); exceeded {
			rl.logger.Error().
				Str("reason", reason).
				Int64("alloc_mb", usage.AllocMB).
				Int("goroutines", usage.Goroutines).
				Float64("system_mem_percent", usage.SystemMemUsedPercent).
				Float64("cpu_percent", usage.CPUUsagePercent).
				Msg("Resource limits exceeded, triggering graceful shutdown")

			rl.triggerGracefulShutdown()
			return
		}
	}

	rl.logger.Debug().
		Int64("alloc_mb", usage.AllocMB).
		Int64("sys_mb", usage.SysMB).
		Int("goroutines", usage.Goroutines).
		Int64("gc_count", usage.GCCount).
		Float64("system_mem_percent", usage.SystemMemUsedPercent).
		Float64("cpu_percent", usage.CPUUsagePercent).
		Msg("Current resource usage")
}

func (rl *ResourceLimiter) logWarnings(usage ResourceUsage) {
	if usage.AllocMB > rl.memoryThreshold {
		rl.logger.Warn().
			Int64("current_mb", usage.AllocMB).
			Int64("threshold_mb", rl.memoryThreshold).
			Int64("limit_mb", rl.config.MaxMemoryMB).
			Msg("Memory usage approaching limit")
	}

	if usage.Goroutines > rl.goroutineWarning {
		rl.logger.Warn().
			Int("current", usage.Goroutines).
			Int("warning_threshold", rl.goroutineWarning).
			Int("limit", rl.config.MaxGoroutines).
			Msg("Goroutine count approaching limit")
	}
}

// checkShutdownConditions evaluates every shutdown condition in order.
func (rl *ResourceLimiter) checkShutdownConditions() (bool, string) {
	type checkFunc func() (bool, string)

	checks := []checkFunc{
		rl.systemMemoryChecker,
		rl.cpuChecker,
		rl.appMemoryChecker,
		rl.goroutineChecker,
	}

	for _, check := range checks {
		if exceeded, reason := check(); exceeded {
			return true, reason
		}
	}
	return false, ""
}

func (rl *ResourceLimiter) systemMemoryChecker() (bool, string) {
	exceeded, err := rl.CheckSystemMemoryLimit()
	if err != nil {
		rl.logger.Error().Err(err).Msg("Failed to check system memory limit")
		return false, ""
	}
	if exceeded {
		return true, "system memory threshold exceeded"
	}
	return false, ""
}

func (rl *ResourceLimiter) cpuChecker() (bool, string) {
	exceeded, err := rl.CheckCPULimit()
	if err != nil {
		rl.logger.Error().Err(err).Msg("Failed to check CPU limit")
		return false, ""
	}
	if exceeded {
		return true, "CPU usage threshold exceeded"
	}
	return false, ""
}

func (rl *ResourceLimiter) appMemoryChecker() (bool, string) {
	if err := rl.CheckMemoryLimit(); err != nil {
		return true, fmt.Sprintf("application memory limit exceeded: %v", err)
	}
	return false, ""
}

func (rl *ResourceLimiter) goroutineChecker() (bool, string) {
	if err := rl.CheckGoroutineLimit(); err != nil {
		return true, fmt.Sprintf("goroutine limit exceeded: %v", err)
	}
	return false, ""
}

// triggerGracefulShutdown calls the shutdown callback if one is set.
func (rl *ResourceLimiter) triggerGracefulShutdown() {
	rl.mu.RLock()
	callback := rl.shutdownCallback
	rl.mu.RUnlock()

	if callback != nil {
		rl.logger.Info().Msg("Calling shutdown callback due to resource limits")
		callback()
	} else {
		rl.logger.Warn().Msg("No shutdown callback set, cannot trigger graceful shutdown")
	}
}
