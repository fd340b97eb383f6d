package http

import (
	"context"
	"github.com/ATenderholt/rainbow-gcs/internal/domain"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"
	"net/http"
)

type Processor interface {
	Process(payload interface{}) (domain.ProcessingResult, error)
}

// EventHandler receives CloudEvents over HTTP, in binary or structured mode,
// and hands their data to a Processor.
type EventHandler struct {
	processor Processor
	receiver  http.Handler
}

func NewEventHandler(processor Processor) (EventHandler, error) {
	h := EventHandler{processor: processor}

	protocol, err := cloudevents.NewHTTP()
	if err != nil {
		return h, err
	}

	receiver, err := cloudevents.NewHTTPReceiveHandler(context.Background(), protocol, h.receive)
	if err != nil {
		return h, err
	}

	h.receiver = receiver
	return h, nil
}

func (h EventHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.receiver.ServeHTTP(w, r)
}

func (h EventHandler) receive(_ context.Context, event cloudevents.Event) cloudevents.Result {
	logger.Debugf("Received event %s of type %s from %s", event.ID(), event.Type(), event.Source())

	var payload interface{}
	if data := event.Data(); len(data) > 0 {
		payload = data
	}

	result, err := h.processor.Process(payload)
	if err != nil {
		logger.Errorf("Unable to process event %s: %v", event.ID(), err)
		return cehttp.NewResult(http.StatusInternalServerError, "%v", err)
	}

	logger.Infof("Processed %s from event %s", result.File, event.ID())
	return cloudevents.ResultACK
}
