package geoloc

import (
	"context"
	"net/url"
)

//go:generate mockgen -typed -package=geoloc -destination=./mocks.go -source=./interface.go

type httpclient interface {
	// Query issues a GET and returns the status code and the full body.
	Query(context.Context, *url.URL) (int, []byte, error)
}
