// monitor-server is the reference submission backend. It stores received
// monitoreos in DuckDB and serves the per-site client lists. With --mcp it
// exposes the stored history over the Model Context Protocol on stdio
// instead of listening for HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"monreview/internal/config"
	"monreview/internal/mcpserver"
	"monreview/internal/monitor"
	"monreview/internal/server"
)

func main() {
	mcpMode := flag.Bool("mcp", false, "serve the submission history over MCP on stdio")
	flag.Parse()

	cfg := config.Load()

	store, err := server.OpenStore(cfg.DBPath,
		server.WithThreads(cfg.DBThreads),
		server.WithMemoryLimit(cfg.DBMemoryGB),
	)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if *mcpMode {
		srv, err := mcpserver.NewServer(mcpserver.Config{
			ServerName:    "monreview",
			ServerVersion: "1.0.0",
		}, store)
		if err != nil {
			log.Fatalf("mcp server: %v", err)
		}
		if err := srv.Start(ctx); err != nil {
			log.Fatalf("mcp server stopped: %v", err)
		}
		return
	}

	handler := server.NewHandler(store, demoClients())
	log.Printf("monitor-server listening on %s (db: %s)", cfg.ListenAddr, cfg.DBPath)
	if err := http.ListenAndServe(cfg.ListenAddr, handler.Routes()); err != nil {
		log.Fatalf("http server stopped: %v", err)
	}
}

// demoClients is the built-in client roster served until a real site
// integration replaces it.
func demoClients() monitor.StaticProvider {
	return monitor.StaticProvider{
		monitor.SiteVeeam: {
			{ID: 101, Label: "SRV-APP-01", Code: "CV-101", Fields: []monitor.Field{{Label: "Jobs", Value: "4"}}},
			{ID: 102, Label: "SRV-DB-01", Code: "CV-102", Fields: []monitor.Field{{Label: "Jobs", Value: "2"}}},
			{ID: 103, Label: "SRV-FILE-01", Code: "CV-103"},
		},
		monitor.SiteSite24: {
			{ID: 201, Label: "portal-web", Code: "CV-201", Fields: []monitor.Field{{Label: "Monitores", Value: "6"}}},
			{ID: 202, Label: "api-pagos", Code: "CV-202"},
		},
		monitor.SiteSophos: {
			{ID: 301, Label: "LAPTOP-VENTAS-07", Code: "CV-301", Fields: []monitor.Field{{Label: "Agente", Value: "2024.1"}}},
			{ID: 302, Label: "PC-CONTA-02", Code: "CV-302"},
		},
	}
}
