package middleware

import "github.com/prometheus/client_golang/prometheus"

// HTTPRequestsCounter exposes the request counter to the external test package.
func HTTPRequestsCounter(code, path string) prometheus.Counter {
	return httpRequestsTotal.WithLabelValues(code, "GET", path)
}
