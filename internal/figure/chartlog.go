package figure

import (
	"fmt"

	"github.com/renato0307/brookplot/internal/logging"
)

// chartLogger sends go-chart's render diagnostics to our logger
type chartLogger struct {
	l *logging.Logger
}

func (c chartLogger) Info(args ...any) { c.l.Info(fmt.Sprint(args...)) }

func (c chartLogger) Infof(format string, args ...any) { c.l.Info(fmt.Sprintf(format, args...)) }

func (c chartLogger) Debug(args ...any) { c.l.Debug(fmt.Sprint(args...)) }

func (c chartLogger) Debugf(format string, args ...any) { c.l.Debug(fmt.Sprintf(format, args...)) }

func (c chartLogger) Err(err error) {
	if err != nil {
		c.l.Error("chart error", "error", err)
	}
}

func (c chartLogger) FatalErr(err error) { c.Err(err) }

func (c chartLogger) Error(args ...any) { c.l.Error(fmt.Sprint(args...)) }

func (c chartLogger) Errorf(format string, args ...any) { c.l.Error(fmt.Sprintf(format, args...)) }
