// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avolette/jobtrack/internal/models"
	"github.com/avolette/jobtrack/internal/store"
)

// MockStore is a configurable test double for [store.Store].
//
// The zero value serves an empty dataset and accepts every commit, handing
// out revisions r1, r2, ... in order.
type MockStore struct {
	Rows     []models.Application
	Revision store.Revision

	FetchErr  error
	CommitErr error

	FetchCalls  int
	CommitCalls int
	Committed   [][]models.Application
	Messages    []string
	SeenRevs    []store.Revision
}

var _ store.Store = (*MockStore)(nil)

func (m *MockStore) Fetch(ctx context.Context) (*store.Snapshot, error) {
	m.FetchCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}

	rows := make([]models.Application, len(m.Rows))
	copy(rows, m.Rows)
	return &store.Snapshot{Applications: rows, Revision: m.Revision}, nil
}

func (m *MockStore) Commit(ctx context.Context, rows []models.Application, rev store.Revision, message string) (store.Revision, error) {
	m.CommitCalls++
	m.Messages = append(m.Messages, message)
	m.SeenRevs = append(m.SeenRevs, rev)

	if m.CommitErr != nil {
		return "", m.CommitErr
	}

	committed := make([]models.Application, len(rows))
	copy(committed, rows)
	m.Committed = append(m.Committed, committed)

	m.Rows = committed
	m.Revision = store.Revision(fmt.Sprintf("r%d", m.CommitCalls))
	return m.Revision, nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
