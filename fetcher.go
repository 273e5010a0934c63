package httpstatus

import "context"

// Fetcher retrieves raw bytes from URLs.
type Fetcher interface {
	// Fetch downloads the resource at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
