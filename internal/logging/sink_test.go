package logging_test

import (
	"bytes"
	"encoding/json"
	"github.com/ATenderholt/rainbow-gcs/internal/domain"
	"github.com/ATenderholt/rainbow-gcs/internal/logging"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

func TestRecordSinkWritesObjectFinalizedLine(t *testing.T) {
	var buf bytes.Buffer
	sink := logging.NewRecordSink(zapcore.AddSync(&buf))

	sink.Emit(domain.ObjectFinalizedRecord(domain.ObjectMetadata{
		Bucket:      "test-bucket",
		Name:        "archivo.txt",
		Size:        1234,
		ContentType: "text/plain",
	}))

	expected := `{"severity":"INFO","message":"gcs_object_finalized","bucket":"test-bucket","name":"archivo.txt","size":1234,"content_type":"text/plain"}` + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestRecordSinkWritesNulls(t *testing.T) {
	var buf bytes.Buffer
	sink := logging.NewRecordSink(zapcore.AddSync(&buf))

	sink.Emit(domain.ObjectFinalizedRecord(domain.ObjectMetadata{
		Bucket:      "test-bucket",
		ContentType: domain.UnknownContentType,
	}))

	expected := `{"severity":"INFO","message":"gcs_object_finalized","bucket":"test-bucket","name":null,"size":0,"content_type":"unknown"}` + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestRecordSinkWritesRawValues(t *testing.T) {
	var buf bytes.Buffer
	sink := logging.NewRecordSink(zapcore.AddSync(&buf))

	sink.Emit(domain.ObjectFinalizedRecord(domain.ObjectMetadata{
		Bucket: true,
		Name:   json.Number("12"),
		Size:   5,
	}))

	expected := `{"severity":"INFO","message":"gcs_object_finalized","bucket":true,"name":12,"size":5,"content_type":null}` + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestRecordSinkWritesErrorLine(t *testing.T) {
	var buf bytes.Buffer
	sink := logging.NewRecordSink(zapcore.AddSync(&buf))

	sink.Emit(domain.ProcessingErrorRecord("Evento sin bucket o name"))

	expected := `{"severity":"ERROR","message":"error_processing_gcs_event","error":"Evento sin bucket o name"}` + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestRecordSinkLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := logging.NewRecordSinkFromCore(core)

	sink.Emit(domain.Record{Severity: domain.SeverityInfo, Message: "first"})
	sink.Emit(domain.ProcessingErrorRecord("boom"))

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, but got %d", len(entries))
	}

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, map[string]interface{}{"error": "boom"}, entries[1].ContextMap())
}
