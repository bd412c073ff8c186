package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited lists method+path pairs that bypass limiting. The event stream
// is a single long-lived request per page.
var unlimited = map[string]bool{
	http.MethodGet + " /health":     true,
	http.MethodGet + " /api/events": true,
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Path matching supports prefix matching (e.g., "/api/export/" matches "/api/export/pdf").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
