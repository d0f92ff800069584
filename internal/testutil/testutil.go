// Package testutil defines support code for unit tests.
package testutil

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Split splits s into chunks of at most n runes each. If n <= 0, the result
// is a single chunk containing all of s.
func Split(s string, n int) []string {
	if n <= 0 {
		return []string{s}
	}
	var out []string
	rs := []rune(s)
	for len(rs) > n {
		out = append(out, string(rs[:n]))
		rs = rs[n:]
	}
	return append(out, string(rs))
}

// Feed starts a goroutine in g that sends each of chunks in order to the
// returned channel, and closes the channel when done. The goroutine gives up
// and reports an error if ctx ends first.
func Feed(ctx context.Context, g *errgroup.Group, chunks ...string) <-chan string {
	ch := make(chan string)
	g.Go(func() error {
		defer close(ch)
		for _, c := range chunks {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ch <- c:
			}
		}
		return nil
	})
	return ch
}
