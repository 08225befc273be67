package sheetfeed

import (
	"fmt"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// ConnectLogger attaches loggers to the feed.
func (f *Feed) ConnectLogger(l ...types.Logger) {
	f.loggersLock.Lock()
	defer f.loggersLock.Unlock()
	f.loggers = append(f.loggers, l...)
}

// NotifyLoggers sends a formatted message to all attached loggers.
func (f *Feed) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	loggers := f.snapshotLoggers()
	if len(loggers) == 0 {
		return
	}

	msg := fmt.Sprintf(format, args...)
	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg)
		case types.InfoLevel:
			logger.Info(msg)
		case types.WarnLevel:
			logger.Warn(msg)
		case types.ErrorLevel:
			logger.Error(msg)
		case types.DPanicLevel:
			logger.DPanic(msg)
		case types.PanicLevel:
			logger.Panic(msg)
		case types.FatalLevel:
			logger.Fatal(msg)
		}
	}
}

func (f *Feed) snapshotLoggers() []types.Logger {
	f.loggersLock.Lock()
	defer f.loggersLock.Unlock()
	if len(f.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(f.loggers))
	copy(out, f.loggers)
	return out
}

// GetComponentMetadata returns the feed metadata.
func (f *Feed) GetComponentMetadata() types.ComponentMetadata {
	return f.componentMetadata
}

// SetComponentMetadata updates the feed name and id, keeping the type.
func (f *Feed) SetComponentMetadata(name string, id string) {
	f.componentMetadata.Name = name
	if id != "" {
		f.componentMetadata.ID = id
	}
}
