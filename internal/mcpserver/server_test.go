package mcpserver

import (
	"context"
	"errors"
	"testing"

	"monreview/internal/server"
)

// MockSubmissionStore implements SubmissionStore for testing
type MockSubmissionStore struct {
	Submissions []server.SubmissionSummary
	Rows        []server.StoredRow
	QueryErr    error
	RowsErr     error

	LastSite  string
	LastLimit int
	LastID    int64
}

func (m *MockSubmissionStore) QuerySubmissions(ctx context.Context, site string, limit int) ([]server.SubmissionSummary, error) {
	m.LastSite = site
	m.LastLimit = limit
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.Submissions, nil
}

func (m *MockSubmissionStore) QueryRows(ctx context.Context, submissionID int64) ([]server.StoredRow, error) {
	m.LastID = submissionID
	if m.RowsErr != nil {
		return nil, m.RowsErr
	}
	return m.Rows, nil
}

func TestNewServer_RequiresStore(t *testing.T) {
	_, err := NewServer(Config{ServerName: "test"}, nil)
	if err == nil {
		t.Error("Expected error when store is nil")
	}
}

func TestHandleListSites(t *testing.T) {
	s := &Server{store: &MockSubmissionStore{}}

	_, result, err := s.handleListSites(context.Background(), nil, ListSitesArgs{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.Sites) != 3 {
		t.Fatalf("Expected 3 sites, got %d", len(result.Sites))
	}

	seen := map[string]bool{}
	for _, info := range result.Sites {
		seen[info.Site] = true
		if info.Name == "" {
			t.Errorf("Site %s has no display name", info.Site)
		}
		if len(info.Statuses) == 0 {
			t.Errorf("Site %s has no status labels", info.Site)
		}
	}
	for _, want := range []string{"veeam", "site24", "sophos"} {
		if !seen[want] {
			t.Errorf("Expected site %s in result", want)
		}
	}
}

func TestHandleGetSubmissions_Success(t *testing.T) {
	mock := &MockSubmissionStore{
		Submissions: []server.SubmissionSummary{
			{ID: 1, Site: "veeam", OKCount: 5, ProblemCount: 2},
		},
	}
	s := &Server{store: mock}

	_, result, err := s.handleGetSubmissions(context.Background(), nil, SubmissionsArgs{Site: "veeam", Limit: 5})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.Submissions) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(result.Submissions))
	}
	if mock.LastSite != "veeam" || mock.LastLimit != 5 {
		t.Errorf("Expected store called with (veeam, 5), got (%s, %d)", mock.LastSite, mock.LastLimit)
	}
}

func TestHandleGetSubmissions_UnknownSite(t *testing.T) {
	s := &Server{store: &MockSubmissionStore{}}

	_, _, err := s.handleGetSubmissions(context.Background(), nil, SubmissionsArgs{Site: "nagios"})
	if err == nil {
		t.Error("Expected error for unknown site")
	}
}

func TestHandleGetSubmissions_StoreError(t *testing.T) {
	mock := &MockSubmissionStore{QueryErr: errors.New("db closed")}
	s := &Server{store: mock}

	_, _, err := s.handleGetSubmissions(context.Background(), nil, SubmissionsArgs{})
	if err == nil {
		t.Error("Expected error when store fails")
	}
}

func TestHandleGetSubmissionRows_Success(t *testing.T) {
	mock := &MockSubmissionStore{
		Rows: []server.StoredRow{
			{ClientID: 1, Estatus: "1"},
			{ClientID: 2, Estatus: "3", Observacion: "falló backup"},
		},
	}
	s := &Server{store: mock}

	_, result, err := s.handleGetSubmissionRows(context.Background(), nil, SubmissionRowsArgs{SubmissionID: 7})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(result.Rows))
	}
	if mock.LastID != 7 {
		t.Errorf("Expected store queried for submission 7, got %d", mock.LastID)
	}
}

func TestHandleGetSubmissionRows_InvalidID(t *testing.T) {
	s := &Server{store: &MockSubmissionStore{}}

	_, _, err := s.handleGetSubmissionRows(context.Background(), nil, SubmissionRowsArgs{SubmissionID: 0})
	if err == nil {
		t.Error("Expected error for non-positive submission_id")
	}
}
