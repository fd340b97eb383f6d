package domain

type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityError Severity = "ERROR"

	ObjectFinalizedMessage = "gcs_object_finalized"
	ProcessingErrorMessage = "error_processing_gcs_event"
)

// Field is a single key of a Record. A nil Value is written as JSON null.
type Field struct {
	Key   string
	Value interface{}
}

// Record is one structured log line. Fields keep their order when written.
type Record struct {
	Severity Severity
	Message  string
	Fields   []Field
}

// Value returns the value stored under key and whether it was present.
func (r Record) Value(key string) (interface{}, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return nil, false
}

func ObjectFinalizedRecord(m ObjectMetadata) Record {
	return Record{
		Severity: SeverityInfo,
		Message:  ObjectFinalizedMessage,
		Fields: []Field{
			{Key: "bucket", Value: m.Bucket},
			{Key: "name", Value: m.Name},
			{Key: "size", Value: m.Size},
			{Key: "content_type", Value: m.ContentType},
		},
	}
}

func ProcessingErrorRecord(message string) Record {
	return Record{
		Severity: SeverityError,
		Message:  ProcessingErrorMessage,
		Fields: []Field{
			{Key: "error", Value: message},
		},
	}
}
