package internallogger

// LoggerWithLevel configures the logger to use the specified log level.
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.levelStr = levelStr
	}
}

// LoggerWithDevelopment enables or disables development mode in the logger configuration.
// Development mode switches to a console encoder for readable local output.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.development = dev
	}
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(cfg *loggerConfig) {
		if cfg.fields == nil {
			cfg.fields = map[string]interface{}{}
		}
		for key, value := range fields {
			if key == "" {
				continue
			}
			cfg.fields[key] = value
		}
	}
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.schema = schema
	}
}

// ZapAdapterWithCallerSkip sets the number of additional caller frames to skip.
func ZapAdapterWithCallerSkip(skip int) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.callerSkip += skip
	}
}
