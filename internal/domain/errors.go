package domain

import "fmt"

const validationMessage = "Evento sin bucket o name"

type ValidationError struct{}

func (e ValidationError) Error() string {
	return validationMessage
}

// DecodeError reports a payload that could not be turned into a Notification.
// Its message is the one reported by the underlying parser.
type DecodeError struct {
	base error
}

func (e DecodeError) Error() string {
	return e.base.Error()
}

func (e DecodeError) Unwrap() error {
	return e.base
}

type ConversionError struct {
	field string
	value interface{}
	base  error
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("Unable to convert %s value %v to integer: %v", e.field, e.value, e.base)
}

func (e ConversionError) Unwrap() error {
	return e.base
}
