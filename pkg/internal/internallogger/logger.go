package internallogger

import (
	"os"
	"sync"

	"github.com/mtlab/wfirma-go/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption configures a ZapLoggerAdapter at construction time.
type LoggerOption func(*loggerConfig)

type loggerConfig struct {
	levelStr    string
	development bool
	fields      map[string]interface{}
	schema      string
	callerSkip  int
}

type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	callerOn    bool
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	cfg := loggerConfig{
		levelStr: "info",
		schema:   logschema.SchemaID,
	}
	for _, option := range options {
		option(&cfg)
	}

	atomicLevel := zap.NewAtomicLevelAt(ConvertLevel(parseLogLevel(cfg.levelStr)))
	encConfig := standardEncoderConfig()

	var encoder zapcore.Encoder
	if cfg.development {
		devConfig := encConfig
		devConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(devConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encConfig)
	}

	baseCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atomicLevel)

	baseFields := fieldsFromMap(cfg.fields)
	if cfg.schema != "" {
		baseFields = append(baseFields, zap.String(logschema.FieldSchema, cfg.schema))
	}

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerDepth: 3 + cfg.callerSkip,
		callerOn:    true,
		encConfig:   encConfig,
		baseCore:    baseCore,
		baseFields:  baseFields,
		sinks:       make(map[string]sinkEntry),
	}

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}
