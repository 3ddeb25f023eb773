package main

import (
	"fmt"
	"os"

	"monreview/internal/config"
	"monreview/internal/monitor"
	"monreview/internal/transport"
	"monreview/ui/tui"
)

func main() {
	cfg := config.Load()

	provider := monitor.NewHTTPProvider(cfg.APIBaseURL, cfg.APITimeout())
	submitter := transport.NewClient(cfg.APIBaseURL, cfg.APITimeout())

	// Start the TUI application directly
	if err := tui.Start(provider, submitter, monitor.Site(cfg.DefaultSite)); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
