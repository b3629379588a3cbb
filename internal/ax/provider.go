package ax

import (
	"fmt"
	"runtime"
)

// Provider bundles all binding backends for the current OS.
type Provider struct {
	Driver        Driver
	Input         Input
	Screenshotter Screenshotter
}

// ErrUnsupported is returned on platforms with no registered binding.
var ErrUnsupported = fmt.Errorf("no accessibility binding registered for %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by binding packages via init().
var NewProviderFunc func() (*Provider, error)

// RequestPermissionsFunc is set by binding packages via init().
// It triggers OS permission prompts (e.g. accessibility access) at startup.
var RequestPermissionsFunc func()

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
