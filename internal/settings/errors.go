package settings

import "fmt"

type LoadError struct {
	path string
	base error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("Unable to load configuration from %s: %v", e.path, e.base)
}

func (e LoadError) Unwrap() error {
	return e.base
}
