package console

import (
	"errors"
	"time"

	"github.com/Leopold1975/feedback_control/pkg/logger"
)

type command func(args string) error

// loggingMiddleware logs every command with its outcome and latency. Arguments
// are never logged since they may carry passwords.
func loggingMiddleware(logg logger.Logger, name string, who func() string) func(next command) command {
	return func(next command) command {
		return func(args string) error {
			start := time.Now()

			err := next(args)

			status := "OK"
			if err != nil && !errors.Is(err, errQuit) {
				status = err.Error()
			}

			logg.Infof("COMMAND %s USER %q STATUS %s Latency %s",
				name,
				who(),
				status,
				time.Since(start).String(),
			)

			return err
		}
	}
}
