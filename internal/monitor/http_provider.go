package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultLoadTimeout = 30 * time.Second

// HTTPProvider loads items from the monitoring API:
// GET {base}/operaciones/monitoreos/{site}/clientes
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider against the given API base URL.
// A zero timeout falls back to the default.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// itemPayload mirrors the API's item shape. Older site backends expose the
// display identifiers as nameCV/numCV; both spellings are accepted.
type itemPayload struct {
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Name   string `json:"name"`
	NameCV string `json:"nameCV"`
	Code   string `json:"code"`
	NumCV  string `json:"numCV"`
	Meta   []struct {
		Label string `json:"label"`
		Value string `json:"value"`
	} `json:"meta"`
}

func (p *HTTPProvider) LoadItems(ctx context.Context, site Site) ([]Item, error) {
	if !site.Valid() {
		return nil, fmt.Errorf("unknown site %q", site)
	}

	url := fmt.Sprintf("%s/operaciones/monitoreos/%s/clientes", p.baseURL, site)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build items request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load items for %s: %w", site, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load items for %s: unexpected status %d", site, resp.StatusCode)
	}

	var payload []itemPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode items for %s: %w", site, err)
	}

	items := make([]Item, 0, len(payload))
	for _, ip := range payload {
		it := Item{
			ID:    ip.ID,
			Label: ip.Label,
			Name:  ip.Name,
			Code:  ip.Code,
		}
		if it.Name == "" {
			it.Name = ip.NameCV
		}
		if it.Code == "" {
			it.Code = ip.NumCV
		}
		for _, m := range ip.Meta {
			it.Fields = append(it.Fields, Field{Label: m.Label, Value: m.Value})
		}
		items = append(items, it)
	}
	return items, nil
}
