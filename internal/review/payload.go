package review

import (
	"strings"

	"monreview/internal/monitor"
)

// EstatusOK is the wire status code for a healthy row.
const EstatusOK = "1"

// Row is one serialized record in the submission payload. The originating
// site never appears here; the server resolves it from the client's own
// association and the envelope.
type Row struct {
	ClientID    int64   `json:"client_id"`
	Estatus     string  `json:"estatus"`
	Observacion *string `json:"observacion"`
	DateRest    string  `json:"dateRest,omitempty"`
}

// Payload is the submission envelope for POST /operaciones/monitoreos/store.
type Payload struct {
	Site string `json:"site"`
	Rows []Row  `json:"rows"`
}

// BuildRows serializes the classified items into the two row groups. OK rows
// carry estatus "1" and a null observacion; problem rows carry the trimmed
// form fields, with dateRest present only when a reference date was supplied.
// None of the inputs are mutated.
func BuildRows(items []monitor.Item, sel *SelectionSet, forms *FormStore) (okRows, probRows []Row) {
	c := Classify(items, sel)

	okRows = make([]Row, 0, len(c.OKItems))
	for _, it := range c.OKItems {
		okRows = append(okRows, Row{
			ClientID:    it.ID,
			Estatus:     EstatusOK,
			Observacion: nil,
		})
	}

	probRows = make([]Row, 0, len(c.ProblemItems))
	for _, it := range c.ProblemItems {
		form := forms.Get(it.ID)
		row := Row{
			ClientID: it.ID,
			Estatus:  strings.TrimSpace(form.Estatus),
			DateRest: strings.TrimSpace(form.LastRestoreDate),
		}
		if obs := strings.TrimSpace(form.Observacion); obs != "" {
			row.Observacion = &obs
		}
		probRows = append(probRows, row)
	}
	return okRows, probRows
}
