// Package network provides the retrying HTTP transport shared by every source.
package network

import (
	"net/http"
	"time"
)

// newClient returns an HTTP client with a tuned connection pool whose Timeout bounds one attempt.
func newClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	return t
}
