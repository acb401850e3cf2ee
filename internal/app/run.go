package app

import (
	"context"
	"fmt"

	"github.com/vk/framegraphgo/internal/ctxlog"
	"github.com/vk/framegraphgo/internal/executor"
	"github.com/vk/framegraphgo/internal/graph"
	"github.com/vk/framegraphgo/internal/schedule"
	"github.com/vk/framegraphgo/internal/toposort"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Building pass schedule from config model...")
	// Pass the pre-loaded, format-agnostic config model to the schedule builder.
	sched, err := schedule.Build(ctx, a.config, graph.WithStrategy(strategyFor(appConfig.Strategy)))
	if err != nil {
		return fmt.Errorf("failed to build pass schedule: %w", err)
	}
	a.logger.Debug("Pass schedule built.", "pass_count", sched.Len())

	kinds := a.registry.Kinds()
	a.logger.Info("Runner handlers registered:", "count", len(kinds), "kinds", kinds)

	if sched.Len() == 0 {
		a.logger.Warn("No passes found in frame, execution not required.")
		return nil
	}

	fmt.Fprintf(a.outW, "Execution order: %s\n", sched)

	if appConfig.DryRun {
		a.logger.Info("Dry run requested, skipping execution.")
		return nil
	}

	a.logger.Debug("Executor starting run.")
	a.logger.Info("🚀 Starting frame execution...")
	exec := executor.New(a.registry)
	result, err := exec.Run(ctx, sched)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Execution finished.", "run_id", result.RunID)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// strategyFor maps a configured strategy name onto its sorter. The CLI
// validates the name, so anything unknown falls back to Kahn.
func strategyFor(name string) toposort.Strategy {
	if name == "dfs" {
		return toposort.DFS{}
	}
	return toposort.Kahn{}
}
