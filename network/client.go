// Package network provides a pre-configured HTTP client shared by the LAN and API collaborators.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// Requests target either LAN renderers (device descriptions, SOAP control)
// or the SponsorBlock API, so the pool is small and timeouts are tight.
var Client = &http.Client{
	Timeout:   15 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport for short-lived control requests.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}
