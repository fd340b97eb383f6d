package service

import (
	"fmt"
	"github.com/ATenderholt/rainbow-gcs/internal/domain"
)

type RecordSink interface {
	Emit(record domain.Record)
}

// EventProcessor validates storage notifications and reports them to a RecordSink.
type EventProcessor struct {
	sink RecordSink
}

func NewEventProcessor(sink RecordSink) *EventProcessor {
	return &EventProcessor{
		sink: sink,
	}
}

// Process decodes payload, emits the object_finalized record and validates
// the notification. The record is emitted before validation, so an invalid
// notification is still reported. Every error is emitted as an error record
// and returned unchanged; a panic is emitted and then re-raised.
func (p EventProcessor) Process(payload interface{}) (result domain.ProcessingResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.sink.Emit(domain.ProcessingErrorRecord(fmt.Sprint(r)))
			panic(r)
		}

		if err != nil {
			p.sink.Emit(domain.ProcessingErrorRecord(err.Error()))
		}
	}()

	notification, err := domain.DecodePayload(payload)
	if err != nil {
		return result, err
	}

	metadata, err := notification.Metadata()
	if err != nil {
		return result, err
	}

	p.sink.Emit(domain.ObjectFinalizedRecord(metadata))

	err = metadata.Validate()
	if err != nil {
		return result, err
	}

	return domain.ProcessingResult{OK: true, File: metadata.File()}, nil
}
