// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/app/service"
)

// ModelChecker checks the language model server.
type ModelChecker interface {
	Check(ctx context.Context) service.ModelStatus
}

// ProbeConfig holds model probe configuration.
type ProbeConfig struct {
	Interval time.Duration
	Timeout  time.Duration
}

// ModelProbe periodically checks the language model server and records
// whether it was reachable on the last run. Readiness is false until the
// first check succeeds.
type ModelProbe struct {
	checker  ModelChecker
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	ready atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewModelProbe creates a new ModelProbe.
func NewModelProbe(checker ModelChecker, cfg ProbeConfig, logger *zap.Logger) *ModelProbe {
	return &ModelProbe{
		checker:  checker,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		logger:   logger,
	}
}

// Start begins the background probe.
func (p *ModelProbe) Start(runOnStartup bool) {
	p.ctx, p.cancel = context.WithCancel(context.Background())

	p.logger.Info("starting model probe",
		zap.Duration("interval", p.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	p.wg.Add(1)
	go p.run(runOnStartup)
}

// Stop gracefully stops the probe. It is safe to call on a nil or unstarted probe.
func (p *ModelProbe) Stop() {
	if p == nil || p.cancel == nil {
		return
	}

	p.logger.Info("stopping model probe")
	p.cancel()
	p.wg.Wait()
	p.logger.Info("model probe stopped")
}

// Ready reports whether the last check reached the server.
func (p *ModelProbe) Ready() bool {
	return p.ready.Load()
}

func (p *ModelProbe) run(runOnStartup bool) {
	defer p.wg.Done()

	if runOnStartup {
		p.probe()
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.probe()
		}
	}
}

// probe runs one check and logs availability transitions.
func (p *ModelProbe) probe() {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()

	status := p.checker.Check(ctx)

	was := p.ready.Swap(status.OK)
	switch {
	case status.OK && !was:
		p.logger.Info("language model server available", zap.Int("models", len(status.Models)))
	case !status.OK && was:
		p.logger.Warn("language model server unavailable", zap.String("reason", status.Message))
	case !status.OK:
		p.logger.Debug("language model server still unavailable", zap.String("reason", status.Message))
	}
}
