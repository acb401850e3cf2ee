// Package executor dispatches the passes of a computed schedule.
//
// Execution is serial and runs on the calling goroutine: the schedule is
// already a valid linearization of the frame's dependencies, so running
// it in order is correct by construction. Each run is traced and metered
// through OpenTelemetry and tagged with a unique run id.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/vk/framegraphgo/internal/config"
	"github.com/vk/framegraphgo/internal/ctxlog"
	"github.com/vk/framegraphgo/internal/registry"
	"github.com/vk/framegraphgo/internal/schedule"
)

var (
	tracer = otel.Tracer("framegraphgo.executor")
	meter  = otel.Meter("framegraphgo.executor")
)

// Executor runs schedules, resolving runner kinds through a registry.
type Executor struct {
	registry *registry.Registry

	// Metrics (initialized lazily; failures degrade observability, never
	// execution).
	metricsOnce   sync.Once
	passLatency   metric.Float64Histogram
	passSuccesses metric.Int64Counter
	passFailures  metric.Int64Counter
	frameLatency  metric.Float64Histogram
}

// New creates an executor backed by the given registry.
func New(reg *registry.Registry) *Executor {
	return &Executor{registry: reg}
}

// PassResult records the outcome of a single pass.
type PassResult struct {
	Name     string
	Err      error
	Skipped  bool
	Duration time.Duration
}

// Result summarizes one frame run. Passes holds an entry for every
// scheduled pass, in execution order, including the ones skipped after a
// failure.
type Result struct {
	RunID    string
	Passes   []PassResult
	Duration time.Duration
}

// Run executes every pass of the schedule in order. The first failure
// stops the frame: later passes are recorded as skipped and the failure
// is returned alongside the full Result. Cancelling ctx between passes
// skips the remainder the same way.
func (e *Executor) Run(ctx context.Context, sched *schedule.Schedule) (*Result, error) {
	runID := uuid.NewString()
	logger := ctxlog.FromContext(ctx).With("run_id", runID)
	ctx = ctxlog.WithLogger(ctx, logger)

	e.initMetrics(logger)

	ctx, span := tracer.Start(ctx, "frame.execute",
		trace.WithAttributes(
			attribute.String("frame.run_id", runID),
			attribute.Int("frame.pass_count", sched.Len()),
		),
	)
	defer span.End()

	start := time.Now()
	logger.Info("Frame execution started.", "passes", sched.Len())

	result := &Result{RunID: runID, Passes: make([]PassResult, 0, sched.Len())}
	var failed error

	for _, pass := range sched.Passes() {
		if failed != nil || ctx.Err() != nil {
			logger.Debug("Skipping pass.", "pass", pass.Name)
			result.Passes = append(result.Passes, PassResult{Name: pass.Name, Skipped: true})
			continue
		}

		passStart := time.Now()
		err := e.runPass(ctx, pass)
		elapsed := time.Since(passStart)

		if e.passLatency != nil {
			e.passLatency.Record(ctx, elapsed.Seconds(),
				metric.WithAttributes(attribute.String("pass.runner", pass.Runner)),
			)
		}

		if err != nil {
			if e.passFailures != nil {
				e.passFailures.Add(ctx, 1)
			}
			logger.Error("Pass execution failed.", "pass", pass.Name, "error", err)
			failed = fmt.Errorf("pass '%s' failed: %w", pass.Name, err)
			result.Passes = append(result.Passes, PassResult{Name: pass.Name, Err: err, Duration: elapsed})
			continue
		}

		if e.passSuccesses != nil {
			e.passSuccesses.Add(ctx, 1)
		}
		result.Passes = append(result.Passes, PassResult{Name: pass.Name, Duration: elapsed})
	}

	result.Duration = time.Since(start)
	if e.frameLatency != nil {
		e.frameLatency.Record(ctx, result.Duration.Seconds())
	}

	if failed == nil && ctx.Err() != nil {
		failed = ctx.Err()
	}

	if failed != nil {
		span.RecordError(failed)
		span.SetStatus(codes.Error, failed.Error())
		logger.Error("Frame execution failed.", "error", failed, "duration", result.Duration)
		return result, failed
	}

	span.SetStatus(codes.Ok, "")
	logger.Info("Frame execution finished.", "duration", result.Duration)
	return result, nil
}

// runPass resolves and invokes the handler for a single pass inside its
// own span.
func (e *Executor) runPass(ctx context.Context, pass *config.Pass) error {
	ctx, span := tracer.Start(ctx, "frame.pass",
		trace.WithAttributes(
			attribute.String("pass.name", pass.Name),
			attribute.String("pass.runner", pass.Runner),
		),
	)
	defer span.End()

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Pass started.", "pass", pass.Name, "runner", pass.Runner)

	handler, ok := e.registry.Runner(pass.Runner)
	if !ok {
		// Startup validation rejects frames with unregistered runners,
		// so this only fires for schedules built outside the app path.
		return fmt.Errorf("no handler registered for runner kind '%s'", pass.Runner)
	}

	input, err := decodeInput(handler, pass)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := handler.Fn(ctx, input); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	logger.Debug("Pass finished.", "pass", pass.Name)
	return nil
}

// initMetrics lazily creates the executor's instruments.
func (e *Executor) initMetrics(logger *slog.Logger) {
	e.metricsOnce.Do(func() {
		var initErrors []string

		var err error
		e.passLatency, err = meter.Float64Histogram("frame_pass_duration_seconds",
			metric.WithDescription("Time spent executing each pass"),
			metric.WithUnit("s"),
		)
		if err != nil {
			initErrors = append(initErrors, "pass_latency: "+err.Error())
		}

		e.passSuccesses, err = meter.Int64Counter("frame_pass_success_total",
			metric.WithDescription("Number of passes that completed"),
		)
		if err != nil {
			initErrors = append(initErrors, "pass_successes: "+err.Error())
		}

		e.passFailures, err = meter.Int64Counter("frame_pass_failure_total",
			metric.WithDescription("Number of passes that failed"),
		)
		if err != nil {
			initErrors = append(initErrors, "pass_failures: "+err.Error())
		}

		e.frameLatency, err = meter.Float64Histogram("frame_duration_seconds",
			metric.WithDescription("Total frame execution time"),
			metric.WithUnit("s"),
		)
		if err != nil {
			initErrors = append(initErrors, "frame_latency: "+err.Error())
		}

		if len(initErrors) > 0 {
			logger.Error("Failed to initialize some executor metrics (observability degraded).",
				"failed_count", len(initErrors),
				"errors", initErrors,
			)
		}
	})
}
