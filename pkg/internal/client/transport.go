package client

import "net/http"

// Transport executes one HTTP request. *http.Client satisfies it; tests and
// callers with special transport needs can substitute their own.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}
