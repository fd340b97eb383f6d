package logging

import (
	"encoding/json"
	"github.com/ATenderholt/rainbow-gcs/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
)

// RecordEncoderConfig writes records as single-line JSON in the shape Cloud
// Logging parses as structured entries.
var RecordEncoderConfig = zapcore.EncoderConfig{
	LevelKey:       "severity",
	MessageKey:     "message",
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	LineEnding:     zapcore.DefaultLineEnding,
}

// RecordSink emits structured records through zap.
type RecordSink struct {
	logger *zap.Logger
}

func NewRecordSinkFromCore(core zapcore.Core) *RecordSink {
	return &RecordSink{
		logger: zap.New(core),
	}
}

func NewRecordSink(out zapcore.WriteSyncer) *RecordSink {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(RecordEncoderConfig), out, zapcore.DebugLevel)
	return NewRecordSinkFromCore(core)
}

func NewStdoutSink() *RecordSink {
	return NewRecordSink(zapcore.Lock(os.Stdout))
}

func (s *RecordSink) Emit(record domain.Record) {
	ce := s.logger.Check(zapLevel(record.Severity), record.Message)
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, len(record.Fields))
	for _, f := range record.Fields {
		fields = append(fields, field(f))
	}

	ce.Write(fields...)
}

// json.Number is a fmt.Stringer, which zap.Any would quote.
func field(f domain.Field) zap.Field {
	if n, ok := f.Value.(json.Number); ok {
		return zap.Reflect(f.Key, n)
	}

	return zap.Any(f.Key, f.Value)
}

func zapLevel(severity domain.Severity) zapcore.Level {
	switch severity {
	case domain.SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
