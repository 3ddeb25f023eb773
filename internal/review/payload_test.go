package review

import (
	"encoding/json"
	"strings"
	"testing"

	"monreview/internal/monitor"
)

func TestBuildRowsRoundTrip(t *testing.T) {
	items := []monitor.Item{{ID: 10, Label: "A"}, {ID: 20, Label: "B"}}
	sel := NewSelectionSet()
	sel.Toggle(10)

	forms := NewFormStore()
	forms.Update(20, FormPatch{
		Estatus:         strPtr("3"),
		Observacion:     strPtr("falló backup"),
		LastRestoreDate: strPtr("2024-01-10"),
	})

	okRows, probRows := BuildRows(items, sel, forms)

	if len(okRows) != 1 || len(probRows) != 1 {
		t.Fatalf("expected 1 ok / 1 problem row, got %d / %d", len(okRows), len(probRows))
	}

	ok := okRows[0]
	if ok.ClientID != 10 || ok.Estatus != EstatusOK || ok.Observacion != nil {
		t.Errorf("unexpected ok row: %+v", ok)
	}

	prob := probRows[0]
	if prob.ClientID != 20 || prob.Estatus != "3" {
		t.Errorf("unexpected problem row: %+v", prob)
	}
	if prob.Observacion == nil || *prob.Observacion != "falló backup" {
		t.Errorf("expected observacion carried through, got %v", prob.Observacion)
	}
	if prob.DateRest != "2024-01-10" {
		t.Errorf("expected dateRest 2024-01-10, got %q", prob.DateRest)
	}
}

func TestBuildRowsTrimsFields(t *testing.T) {
	items := []monitor.Item{{ID: 1}, {ID: 2}}
	sel := NewSelectionSet()
	sel.Toggle(1)

	forms := NewFormStore()
	forms.Update(2, FormPatch{
		Estatus:     strPtr("  4  "),
		Observacion: strPtr("  cliente inaccesible  "),
	})

	_, probRows := BuildRows(items, sel, forms)
	if probRows[0].Estatus != "4" {
		t.Errorf("expected trimmed estatus, got %q", probRows[0].Estatus)
	}
	if probRows[0].Observacion == nil || *probRows[0].Observacion != "cliente inaccesible" {
		t.Errorf("expected trimmed observacion, got %v", probRows[0].Observacion)
	}
}

func TestEmptyObservationSerializesNull(t *testing.T) {
	items := []monitor.Item{{ID: 1}, {ID: 2}}
	sel := NewSelectionSet()
	sel.Toggle(1)

	okRows, probRows := BuildRows(items, sel, NewFormStore())

	b, err := json.Marshal(okRows[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"observacion":null`) {
		t.Errorf("ok row should carry null observacion, got %s", b)
	}

	b, err = json.Marshal(probRows[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"observacion":null`) {
		t.Errorf("blank problem observacion should serialize null, got %s", b)
	}
}

func TestEmptyDateOmitsKey(t *testing.T) {
	items := []monitor.Item{{ID: 1}, {ID: 2}}
	sel := NewSelectionSet()
	sel.Toggle(1)

	forms := NewFormStore()
	forms.Update(2, FormPatch{Estatus: strPtr("3"), Observacion: strPtr("sin respaldo"), LastRestoreDate: strPtr("   ")})

	_, probRows := BuildRows(items, sel, forms)

	b, err := json.Marshal(probRows[0])
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "dateRest") {
		t.Errorf("empty date must omit the dateRest key entirely, got %s", b)
	}
}

func TestBuildRowsEmptySelectionSubmitsAllOK(t *testing.T) {
	items := []monitor.Item{{ID: 1}, {ID: 2}, {ID: 3}}

	okRows, probRows := BuildRows(items, NewSelectionSet(), NewFormStore())
	if len(okRows) != 3 {
		t.Errorf("expected every item as OK row, got %d", len(okRows))
	}
	if len(probRows) != 0 {
		t.Errorf("expected no problem rows, got %d", len(probRows))
	}
}
