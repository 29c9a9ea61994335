package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
	attrs     []any
}

// Time executes the given function and logs its execution time.
//
// Example:
//
//	logging.Time("render figure", func() {
//	    err = fig.Render(w, figure.FormatPNG)
//	})
func Time(name string, fn func()) {
	Get().Time(name, fn)
}

// TimeWithResult executes the given function and logs its execution time,
// returning the function's result.
func TimeWithResult[T any](name string, fn func() T) T {
	if !IsEnabled() {
		return fn()
	}

	start := time.Now()
	result := fn()
	logDuration(Get(), name, time.Since(start))
	return result
}

// Start begins a timing measurement for manual control.
// Must be paired with End() to log the duration. Extra key-value pairs are
// attached to the final record.
//
// Example:
//
//	ctx := logging.Start("export palettes", "format", "xlsx")
//	// ... do work ...
//	logging.End(ctx)
func Start(name string, attrs ...any) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
		attrs:     attrs,
	}
}

// End completes a timing measurement started with Start() and logs the duration.
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}
	logDuration(Get(), ctx.name, time.Since(ctx.startTime), ctx.attrs...)
}

// EndWithCount completes a timing measurement and logs the duration with an item count.
//
// Example:
//
//	ctx := logging.Start("render swatches")
//	cells := drawCells()
//	logging.EndWithCount(ctx, len(cells))
func EndWithCount(ctx TimingContext, count int) {
	if !IsEnabled() {
		return
	}
	attrs := append(append([]any(nil), ctx.attrs...), "count", count)
	logDuration(Get(), ctx.name, time.Since(ctx.startTime), attrs...)
}

// Time is the method form of the package-level Time helper.
//
// Example:
//
//	logger := logging.Get().Component("preview")
//	logger.Time("draw grid", func() {
//	    // ... drawing ...
//	})
func (l *Logger) Time(name string, fn func()) {
	if !l.IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	logDuration(l, name, time.Since(start))
}

func logDuration(l *Logger, name string, d time.Duration, attrs ...any) {
	args := append([]any{
		"duration", d.String(),
		"ms", d.Milliseconds(),
	}, attrs...)
	l.Debug(name, args...)
}
