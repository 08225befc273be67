package docarchive

import (
	"fmt"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// ConnectLogger attaches loggers to the archiver.
func (a *Archiver) ConnectLogger(l ...types.Logger) {
	a.loggersLock.Lock()
	defer a.loggersLock.Unlock()
	a.loggers = append(a.loggers, l...)
}

// NotifyLoggers sends a formatted message to all attached loggers.
func (a *Archiver) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	loggers := a.snapshotLoggers()
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

func (a *Archiver) snapshotLoggers() []types.Logger {
	a.loggersLock.Lock()
	defer a.loggersLock.Unlock()
	if len(a.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(a.loggers))
	copy(out, a.loggers)
	return out
}

// GetComponentMetadata returns the archiver metadata.
func (a *Archiver) GetComponentMetadata() types.ComponentMetadata {
	return a.componentMetadata
}

// SetComponentMetadata updates the archiver name and id, keeping the type.
func (a *Archiver) SetComponentMetadata(name string, id string) {
	a.componentMetadata.Name = name
	if id != "" {
		a.componentMetadata.ID = id
	}
}
