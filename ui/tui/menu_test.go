package tui

import (
	"context"
	"testing"
	"time"

	"monreview/internal/monitor"
	"monreview/internal/review"
	"monreview/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
)

// MockSubmitter for testing
type MockSubmitter struct {
	Calls   int
	Outcome review.Outcome
}

func (m *MockSubmitter) Submit(ctx context.Context, p review.Payload) review.Outcome {
	m.Calls++
	return m.Outcome
}

func testProvider() monitor.StaticProvider {
	return monitor.StaticProvider{
		monitor.SiteVeeam: {
			{ID: 1, Label: "SRV-APP-01"},
			{ID: 2, Label: "SRV-DB-01"},
			{ID: 3, Label: "SRV-WEB-01"},
		},
	}
}

func TestMenuNavigation(t *testing.T) {
	model := InitialModel(testProvider(), &MockSubmitter{}, "")

	// Initial state
	if model.menuCursor != 0 {
		t.Errorf("Expected initial menu cursor 0, got %d", model.menuCursor)
	}
	if model.state.CurrentPage != state.PageSiteMenu {
		t.Errorf("Expected initial page PageSiteMenu, got %v", model.state.CurrentPage)
	}

	// Test Down Navigation
	cmd := tea.KeyMsg{Type: tea.KeyDown, Runes: []rune{}, Alt: false}
	updatedModel, _ := model.Update(cmd)
	m := updatedModel.(*MainModel)

	if m.menuCursor != 1 {
		t.Errorf("Expected menu cursor 1 after Down key, got %d", m.menuCursor)
	}

	// Test Up Navigation
	cmd = tea.KeyMsg{Type: tea.KeyUp, Runes: []rune{}, Alt: false}
	updatedModel, _ = m.Update(cmd)
	m = updatedModel.(*MainModel)

	if m.menuCursor != 0 {
		t.Errorf("Expected menu cursor 0 after Up key, got %d", m.menuCursor)
	}
}

func TestMenuDefaultSite(t *testing.T) {
	model := InitialModel(testProvider(), &MockSubmitter{}, monitor.SiteSophos)

	if model.menuCursor != 2 {
		t.Errorf("Expected cursor on sophos (2), got %d", model.menuCursor)
	}
}

func TestMenuAnimationLogic(t *testing.T) {
	model := InitialModel(testProvider(), &MockSubmitter{}, "")

	// Move cursor to 1
	model.menuCursor = 1

	// Initial animation cursor should be 0
	if model.animCursor != 0 {
		t.Errorf("Expected initial animCursor 0, got %f", model.animCursor)
	}

	// Simulate a few animation frames
	// The spring physics should move animCursor towards menuCursor (1.0)

	// Frame 1
	animateMsg := AnimateMsg(time.Now())
	updatedModel, _ := model.Update(animateMsg)
	m := updatedModel.(*MainModel)

	if m.animCursor <= 0 {
		t.Errorf("Expected animCursor to increase after animation frame, got %f", m.animCursor)
	}
	if m.animCursor >= 1.0 {
		t.Errorf("Expected animCursor to not reach target immediately, got %f", m.animCursor)
	}

	// Frame 2
	updatedModel, _ = m.Update(animateMsg)
	m = updatedModel.(*MainModel)
	prevCursor := m.animCursor

	// Frame 3
	updatedModel, _ = m.Update(animateMsg)
	m = updatedModel.(*MainModel)

	if m.animCursor <= prevCursor {
		t.Errorf("Expected animCursor to continue increasing, got %f (prev %f)", m.animCursor, prevCursor)
	}
}

func TestItemsLoadedOpensReview(t *testing.T) {
	model := InitialModel(testProvider(), &MockSubmitter{}, "")
	model.state.Loading = true

	items, _ := testProvider().LoadItems(context.Background(), monitor.SiteVeeam)
	updatedModel, _ := model.Update(ItemsLoadedMsg{Site: monitor.SiteVeeam, Items: items})
	m := updatedModel.(*MainModel)

	if m.state.Loading {
		t.Error("Expected loading to end")
	}
	if m.state.CurrentPage != state.PageOKReview {
		t.Errorf("Expected PageOKReview after load, got %v", m.state.CurrentPage)
	}
	if m.orch == nil {
		t.Fatal("Expected orchestrator to be created")
	}
	if len(m.state.Items) != 3 {
		t.Errorf("Expected 3 items in state, got %d", len(m.state.Items))
	}
}

func TestItemsLoadedError(t *testing.T) {
	model := InitialModel(testProvider(), &MockSubmitter{}, "")
	model.state.Loading = true

	_, err := testProvider().LoadItems(context.Background(), monitor.SiteSite24)
	updatedModel, _ := model.Update(ItemsLoadedMsg{Site: monitor.SiteSite24, Err: err})
	m := updatedModel.(*MainModel)

	if m.state.Err == nil {
		t.Error("Expected load error surfaced in state")
	}
	if m.state.CurrentPage != state.PageSiteMenu {
		t.Errorf("Expected to stay on menu after failed load, got %v", m.state.CurrentPage)
	}
}
