package output

import (
	"testing"

	"monreview/internal/monitor"
	"monreview/internal/review"
)

func buildItems() []monitor.Item {
	return []monitor.Item{
		{ID: 1, Label: "SRV-APP-01"},
		{ID: 2, Label: "SRV-DB-01"},
		{ID: 3, Label: "SRV-WEB-01"},
	}
}

func TestBuildReportSplitsSections(t *testing.T) {
	sel := review.NewSelectionSet()
	sel.Toggle(1)
	forms := review.NewFormStore()
	estatus := "3"
	obs := "job fallido desde ayer"
	forms.Update(2, review.FormPatch{Estatus: &estatus, Observacion: &obs})

	report := BuildReport(monitor.SiteVeeam, buildItems(), sel, forms)

	if report.Site != "veeam" || report.SiteName != "Veeam Backup" {
		t.Errorf("unexpected site fields: %+v", report)
	}
	if report.OKCount != 1 || report.ProblemCount != 2 {
		t.Fatalf("expected 1 OK / 2 problems, got %d / %d", report.OKCount, report.ProblemCount)
	}

	ok := report.SectionByID(SectionOK)
	if ok == nil || len(ok.Items) != 1 || ok.Items[0].ID != 1 {
		t.Fatalf("unexpected OK section: %+v", ok)
	}
	if ok.Items[0].Status != "OK" {
		t.Errorf("OK item should carry OK status, got %q", ok.Items[0].Status)
	}

	probs := report.SectionByID(SectionProblems)
	if probs == nil || len(probs.Items) != 2 {
		t.Fatalf("unexpected problems section: %+v", probs)
	}

	db := probs.ItemByID(2)
	if db == nil {
		t.Fatal("expected SRV-DB-01 in problems")
	}
	if db.Status != "Job fallido" {
		t.Errorf("expected resolved status label, got %q", db.Status)
	}
	if db.Note != obs {
		t.Errorf("expected observación carried over, got %q", db.Note)
	}
	if len(db.Missing) != 0 {
		t.Errorf("complete form should have no missing fields: %v", db.Missing)
	}

	web := probs.ItemByID(3)
	if web == nil {
		t.Fatal("expected SRV-WEB-01 in problems")
	}
	if len(web.Missing) != 2 {
		t.Errorf("untouched form should miss estatus and observación, got %v", web.Missing)
	}
}

func TestBuildReportEmptySelectionAllOK(t *testing.T) {
	report := BuildReport(monitor.SiteSophos, buildItems(), review.NewSelectionSet(), review.NewFormStore())

	if report.OKCount != 3 || report.ProblemCount != 0 {
		t.Errorf("empty selection should confirm everything, got %d / %d", report.OKCount, report.ProblemCount)
	}
}

func TestSectionByIDUnknown(t *testing.T) {
	report := BuildReport(monitor.SiteSite24, nil, nil, nil)
	if report.SectionByID("disk") != nil {
		t.Error("expected nil for unknown section id")
	}
}
