package menu

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-leo/patterns/decorator"
)

// LogRun logs when a demo starts and how long it took.
func LogRun(logger *slog.Logger, title string) decorator.Decorator[Runner] {
	return decorator.Func[Runner](func(next Runner) Runner {
		return func(w io.Writer) {
			start := time.Now()
			logger.Debug("demo started", slog.String("demo", title))
			next(w)
			logger.Debug("demo finished", slog.String("demo", title), slog.Duration("took", time.Since(start)))
		}
	})
}

// Recover turns a panicking demo into an error line so the menu keeps going.
func Recover() decorator.Decorator[Runner] {
	return decorator.Func[Runner](func(next Runner) Runner {
		return func(w io.Writer) {
			defer func() {
				if p := recover(); p != nil {
					fmt.Fprintf(w, "demo failed: %v\n", p)
				}
			}()
			next(w)
		}
	})
}
