// Package search resolves free-text queries to candidate result URLs.
package search

import "context"

type Provider interface {
	// Search returns result URLs in ranked order. An empty slice
	// with a nil error means the query produced no results.
	Search(ctx context.Context, query string) ([]string, error)
}
