package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured field keys shared across packages
const (
	FieldAnalysisID = "analysis_id"
	FieldProvider   = "ai_provider"
	FieldModel      = "ai_model"
	FieldResume     = "resume"
)

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
// Fields with an empty string value are dropped.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	kept := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Key) == "" {
			continue
		}
		if f.Type == zapcore.StringType && strings.TrimSpace(f.String) == "" {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return logger
	}
	return logger.With(kept...)
}

// ModelFields describes the provider and model of an enhancement call.
func ModelFields(provider, model string) []zap.Field {
	return []zap.Field{
		zap.String(FieldProvider, strings.TrimSpace(provider)),
		zap.String(FieldModel, strings.TrimSpace(model)),
	}
}
