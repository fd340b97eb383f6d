package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	ObjectFinalizedEvent = "google.cloud.storage.object.v1.finalized"

	BucketField      = "bucket"
	NameField        = "name"
	SizeField        = "size"
	ContentTypeField = "contentType"

	UnknownContentType = "unknown"
)

// Notification is the decoded payload of a storage event, keyed by field name.
type Notification map[string]interface{}

// ObjectMetadata is the normalized summary of a Notification. Bucket, Name
// and ContentType keep the raw decoded values; Bucket and Name are nil when
// the notification did not carry them.
type ObjectMetadata struct {
	Bucket      interface{}
	Name        interface{}
	Size        int64
	ContentType interface{}
}

// ProcessingResult is returned for a notification that passed validation.
type ProcessingResult struct {
	OK   bool   `json:"ok"`
	File string `json:"file"`
}

// DecodePayload turns the data of an inbound event into a Notification.
// A nil payload is treated as an empty notification.
func DecodePayload(payload interface{}) (Notification, error) {
	switch data := payload.(type) {
	case nil:
		return Notification{}, nil
	case Notification:
		if data == nil {
			return Notification{}, nil
		}
		return data, nil
	case map[string]interface{}:
		if data == nil {
			return Notification{}, nil
		}
		return Notification(data), nil
	case []byte:
		if data == nil {
			return Notification{}, nil
		}
		return decodeBytes(data)
	case string:
		return decodeBytes([]byte(data))
	default:
		return nil, DecodeError{base: fmt.Errorf("unsupported payload type %T", payload)}
	}
}

func decodeBytes(data []byte) (Notification, error) {
	if !utf8.Valid(data) {
		return nil, DecodeError{base: fmt.Errorf("payload is not valid UTF-8")}
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value interface{}
	err := decoder.Decode(&value)
	if err != nil {
		return nil, DecodeError{base: err}
	}

	offset := decoder.InputOffset()
	var extra interface{}
	err = decoder.Decode(&extra)
	if err != io.EOF {
		return nil, DecodeError{base: fmt.Errorf("extra data after JSON value at offset %d", offset)}
	}

	notification, ok := value.(map[string]interface{})
	if !ok {
		return nil, DecodeError{base: fmt.Errorf("payload must be a JSON object but was %s", jsonKind(value))}
	}

	return notification, nil
}

// Metadata extracts the fields of interest, applying defaults for size and
// content type.
func (n Notification) Metadata() (ObjectMetadata, error) {
	metadata := ObjectMetadata{
		Bucket:      n[BucketField],
		Name:        n[NameField],
		ContentType: UnknownContentType,
	}

	if raw, ok := n[ContentTypeField]; ok {
		metadata.ContentType = raw
	}

	if raw, ok := n[SizeField]; ok {
		size, err := ToInt(raw)
		if err != nil {
			return metadata, ConversionError{field: SizeField, value: raw, base: err}
		}
		metadata.Size = size
	}

	return metadata, nil
}

// Validate checks that neither bucket nor name is empty. Empty means null,
// false, zero, the empty string or an empty array or object.
func (m ObjectMetadata) Validate() error {
	if isEmpty(m.Bucket) || isEmpty(m.Name) {
		return ValidationError{}
	}

	return nil
}

// File is the object name as text.
func (m ObjectMetadata) File() string {
	if s, ok := m.Name.(string); ok {
		return s
	}

	return fmt.Sprint(m.Name)
}

func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	case Notification:
		return len(v) == 0
	default:
		return false
	}
}

func jsonKind(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}, Notification:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
