package monitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPProviderLoadItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/operaciones/monitoreos/veeam/clientes" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"label":"SRV-APP-01","name":"app01","code":"CV-1","meta":[{"label":"Jobs","value":"4"}]},
			{"id":2,"nameCV":"srv-db-01","numCV":"CV-2"}
		]`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second)
	items, err := p.LoadItems(context.Background(), SiteVeeam)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].Label != "SRV-APP-01" || len(items[0].Fields) != 1 {
		t.Errorf("unexpected first item: %+v", items[0])
	}

	// Legacy nameCV/numCV spellings fill the canonical fields.
	if items[1].Name != "srv-db-01" || items[1].Code != "CV-2" {
		t.Errorf("expected legacy aliases mapped, got %+v", items[1])
	}
}

func TestHTTPProviderRejectsUnknownSite(t *testing.T) {
	p := NewHTTPProvider("http://unused.example.test", time.Second)
	if _, err := p.LoadItems(context.Background(), Site("nagios")); err == nil {
		t.Error("expected error for unknown site")
	}
}

func TestHTTPProviderUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second)
	if _, err := p.LoadItems(context.Background(), SiteSite24); err == nil {
		t.Error("expected error for non-200 response")
	}
}
