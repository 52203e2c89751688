// SPDX-License-Identifier: MPL-2.0

package journal

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewCharmSink adapts a charmbracelet/log logger into a Sink. Passing nil
// uses a logger writing to stderr. The journal performs level filtering, so
// the wrapped logger is opened all the way down to debug.
//
// Level mapping: notice and success have no charm equivalent and are emitted
// at info with a level keyval preserved for styling.
func NewCharmSink(logger *log.Logger) Sink {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
		})
	}
	logger.SetLevel(log.DebugLevel)

	return func(e Entry) {
		switch e.Level {
		case LevelDebug:
			logger.Debug(e.Message)
		case LevelWarning:
			logger.Warn(e.Message)
		case LevelError:
			if e.Err != nil {
				logger.Error(e.Message, "err", e.Err)
			} else {
				logger.Error(e.Message)
			}
		case LevelNotice, LevelSuccess:
			logger.Info(e.Message, "level", e.Level.String())
		default:
			logger.Info(e.Message)
		}
	}
}
