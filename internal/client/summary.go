package client

import (
	"context"
	"fmt"
	"io"
)

// Summary drives one fetch-and-render cycle of the task list: a loading
// line while the request is in flight, then either the task count or an
// error line. Render never fails the caller; a failed fetch is a rendered
// error state, and Retry re-issues the request after clearing it.
type Summary struct {
	client *Client
	out    io.Writer

	lastErr error
}

func NewSummary(c *Client, out io.Writer) *Summary {
	return &Summary{client: c, out: out}
}

// Render issues one list-tasks call and writes the resulting state.
func (s *Summary) Render(ctx context.Context) {
	fmt.Fprintln(s.out, "loading tasks...")

	count, err := s.client.TaskCount(ctx)
	if err != nil {
		s.lastErr = err
		fmt.Fprintf(s.out, "error: failed to load tasks: %v\n", err)
		return
	}

	s.lastErr = nil
	fmt.Fprintf(s.out, "you have %d tasks\n", count)
}

// Retry clears the error state and re-issues the request.
func (s *Summary) Retry(ctx context.Context) {
	s.lastErr = nil
	s.Render(ctx)
}

// Failed reports whether the last render ended in the error state.
func (s *Summary) Failed() bool {
	return s.lastErr != nil
}

// Err returns the error from the last render, if any.
func (s *Summary) Err() error {
	return s.lastErr
}
