package server

import (
	"encoding/json"
	"log"
	"net/http"

	"monreview/internal/monitor"
	"monreview/internal/review"
)

// Handler serves the submission endpoint backed by a Store, plus the client
// list the review TUI loads per site.
type Handler struct {
	store    *Store
	provider monitor.ItemProvider
}

// NewHandler creates the backend handler. provider may be nil when the
// deployment only receives submissions.
func NewHandler(store *Store, provider monitor.ItemProvider) *Handler {
	return &Handler{store: store, provider: provider}
}

// Routes returns the backend's mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/operaciones/monitoreos/store", h.handleStore)
	mux.HandleFunc("GET /operaciones/monitoreos/{site}/clientes", h.handleClients)
	return mux
}

// itemPayload is the wire shape of one client, matching what the TUI's
// HTTP provider expects.
type itemPayload struct {
	ID    int64         `json:"id"`
	Label string        `json:"label,omitempty"`
	Name  string        `json:"name,omitempty"`
	Code  string        `json:"code,omitempty"`
	Meta  []metaPayload `json:"meta,omitempty"`
}

type metaPayload struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (h *Handler) handleClients(w http.ResponseWriter, r *http.Request) {
	site := monitor.Site(r.PathValue("site"))
	if !site.Valid() {
		writeError(w, http.StatusNotFound, "sitio desconocido: "+string(site))
		return
	}
	if h.provider == nil {
		writeError(w, http.StatusNotFound, "este servidor no expone clientes")
		return
	}

	items, err := h.provider.LoadItems(r.Context(), site)
	if err != nil {
		log.Printf("load clients for %s failed: %v", site, err)
		writeError(w, http.StatusInternalServerError, "no se pudieron cargar los clientes")
		return
	}

	payload := make([]itemPayload, 0, len(items))
	for _, it := range items {
		ip := itemPayload{
			ID:    it.ID,
			Label: it.Label,
			Name:  it.Name,
			Code:  it.Code,
		}
		for _, f := range it.Fields {
			ip.Meta = append(ip.Meta, metaPayload{Label: f.Label, Value: f.Value})
		}
		payload = append(payload, ip)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) handleStore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "método no permitido")
		return
	}

	var payload review.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	if !monitor.Site(payload.Site).Valid() {
		writeError(w, http.StatusUnprocessableEntity, "sitio desconocido: "+payload.Site)
		return
	}
	if len(payload.Rows) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "el monitoreo no contiene filas")
		return
	}
	for _, row := range payload.Rows {
		if row.Estatus == "" {
			writeError(w, http.StatusUnprocessableEntity, "hay filas sin estatus")
			return
		}
	}

	id, err := h.store.InsertSubmission(r.Context(), payload.Site, payload.Rows)
	if err != nil {
		log.Printf("store submission failed: %v", err)
		writeError(w, http.StatusInternalServerError, "no se pudo guardar el monitoreo")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]int64{"submission_id": id})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
