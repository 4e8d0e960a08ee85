package rslimiter

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathewatch/pathewatch/internal/config"
)

func TestResourceLimiter_New(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	require.NotNil(t, rl)
	assert.Equal(t, cfg.MaxMemoryMB, rl.config.MaxMemoryMB)
	assert.Equal(t, cfg.MaxGoroutines, rl.config.MaxGoroutines)
	assert.Equal(t, cfg.CheckInterval(), rl.checkInterval)
	assert.Equal(t, int64(float64(cfg.MaxMemoryMB)*cfg.MemoryThreshold), rl.memoryThreshold)
	assert.False(t, rl.config.EnableAutoShutdown)
}

func TestResourceLimiter_ZeroIntervalFallsBackToDefault(t *testing.T) {
	rl := NewResourceLimiter(config.ResourceLimiterConfig{}, zerolog.Nop())

	require.NotNil(t, rl)
	assert.Equal(t, 30*time.Second, rl.checkInterval)
}

func TestResourceLimiter_StartAndStop(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	rl.Start()
	assert.True(t, rl.isRunning, "ResourceLimiter should be running after Start()")

	rl.Stop()
	// Allow some time for the monitoring goroutine to stop
	time.Sleep(10 * time.Millisecond)
	assert.False(t, rl.isRunning, "ResourceLimiter should be stopped after Stop()")
}

func TestResourceLimiter_ShutdownCallback(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	cfg.EnableAutoShutdown = true
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	var shutdownCalled bool
	var mu sync.Mutex

	rl.SetShutdownCallback(func() {
		mu.Lock()
		shutdownCalled = true
		mu.Unlock()
	})

	// Manually trigger the shutdown to test the callback mechanism
	rl.triggerGracefulShutdown()

	mu.Lock()
	assert.True(t, shutdownCalled, "Shutdown callback should have been called")
	mu.Unlock()
}

func TestResourceLimiter_ShutdownNoCallback(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	// Should not panic
	assert.NotPanics(t, func() {
		rl.triggerGracefulShutdown()
	}, "triggerGracefulShutdown should not panic without a callback")
}

func TestResourceLimiter_CheckGoroutineLimit(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	// Set a very high limit that should not be reached
	cfg.MaxGoroutines = 100000
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	err := rl.CheckGoroutineLimit()
	assert.NoError(t, err)
}

func TestResourceLimiter_GoroutineLimitExceeded(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	cfg.MaxGoroutines = 1 // Set a very low limit
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	exceeded, reason := rl.goroutineChecker()
	assert.True(t, exceeded)
	assert.Contains(t, reason, "goroutine limit exceeded")
}

func TestResourceLimiter_GetResourceUsage(t *testing.T) {
	usage := GetResourceUsage()

	assert.NotZero(t, usage.SysMB, "System memory should be reported")
	assert.NotZero(t, usage.Goroutines, "Goroutine count should be reported")
}

func TestResourceLimiter_Idempotency(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	// Start multiple times
	rl.Start()
	initialRunningState := rl.isRunning
	rl.Start()
	assert.Equal(t, initialRunningState, rl.isRunning, "Start() should be idempotent")

	// Stop multiple times
	rl.Stop()
	initialStoppedState := rl.isRunning
	rl.Stop()
	assert.Equal(t, initialStoppedState, rl.isRunning, "Stop() should be idempotent")
}
