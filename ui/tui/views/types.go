package views

import (
	"monreview/internal/monitor"
	"monreview/internal/output"
	"monreview/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height  int
	MouseX, MouseY int

	// Component States
	MenuCursor  int
	AnimCursor  float64
	ListCursor  int
	SpinnerView string
	ChartView   string
	SearchView  string

	// Review data prepared by the Controller
	Report   output.Report
	Visible  []monitor.Item
	Selected map[int64]struct{}
	Open     *state.Disclosure

	// Problem-card form state, inputs rendered by the Controller
	StatusCursor int
	ObsView      string
	DateView     string
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
