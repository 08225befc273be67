package balancestore

import (
	"fmt"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// ConnectLogger attaches loggers to the store.
func (s *Store) ConnectLogger(l ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	s.loggers = append(s.loggers, l...)
}

// NotifyLoggers sends a formatted message to all attached loggers.
func (s *Store) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	loggers := s.snapshotLoggers()
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

func (s *Store) snapshotLoggers() []types.Logger {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	if len(s.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(s.loggers))
	copy(out, s.loggers)
	return out
}

// GetComponentMetadata returns the store metadata.
func (s *Store) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// SetComponentMetadata updates the store name and id, keeping the type.
func (s *Store) SetComponentMetadata(name string, id string) {
	s.componentMetadata.Name = name
	if id != "" {
		s.componentMetadata.ID = id
	}
}
