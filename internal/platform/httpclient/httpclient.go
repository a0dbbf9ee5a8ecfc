package httpclient

import (
	"net/http"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
)

// New crea un *http.Client con timeout razonable.
// Se inyecta en el cliente del asistente para que las llamadas salientes
// no queden colgadas indefinidamente.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}
