package eventstream

import (
	"fmt"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// ConnectLogger attaches loggers to the publisher.
func (p *Publisher) ConnectLogger(l ...types.Logger) {
	p.loggersLock.Lock()
	defer p.loggersLock.Unlock()
	p.loggers = append(p.loggers, l...)
}

// NotifyLoggers sends a formatted message to all attached loggers.
func (p *Publisher) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	loggers := p.snapshotLoggers()
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

func (p *Publisher) snapshotLoggers() []types.Logger {
	p.loggersLock.Lock()
	defer p.loggersLock.Unlock()
	if len(p.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(p.loggers))
	copy(out, p.loggers)
	return out
}

// GetComponentMetadata returns the publisher metadata.
func (p *Publisher) GetComponentMetadata() types.ComponentMetadata {
	return p.componentMetadata
}

// SetComponentMetadata updates the publisher name and id, keeping the type.
func (p *Publisher) SetComponentMetadata(name string, id string) {
	p.componentMetadata.Name = name
	if id != "" {
		p.componentMetadata.ID = id
	}
}
