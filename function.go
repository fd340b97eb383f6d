// Package gcs exposes the storage event handler to the Functions Framework.
package gcs

import (
	"context"
	"github.com/ATenderholt/rainbow-gcs/internal/logging"
	"github.com/ATenderholt/rainbow-gcs/internal/service"
	"github.com/ATenderholt/rainbow-gcs/internal/settings"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"
)

var processor = service.NewEventProcessor(logging.NewStdoutSink())

func init() {
	functions.CloudEvent(settings.DefaultFunctionName, ProcessGCS)
}

// ProcessGCS handles a google.cloud.storage.object.v1.finalized event. A
// returned error marks the invocation as failed.
func ProcessGCS(_ context.Context, e event.Event) error {
	var payload interface{}
	if data := e.Data(); len(data) > 0 {
		payload = data
	}

	_, err := processor.Process(payload)
	return err
}
