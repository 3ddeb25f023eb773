package output

import (
	"monreview/internal/monitor"
	"monreview/internal/review"
)

// Section constants to avoid hardcoded strings
const (
	SectionOK       = "ok"
	SectionProblems = "problems"
)

// UI/view-model types (no printing here)
type Item struct {
	ID       int64
	Title    string
	Status   string // resolved status label, empty for unreviewed
	Note     string // observación text
	DateRest string
	Missing  []string // form fields still pending
}

type Section struct {
	ID    string // ok/problems
	Title string
	Items []Item
}

type Report struct {
	Site         string
	SiteName     string
	Sections     []Section
	OKCount      int
	ProblemCount int
}

// BuildReport converts the current review state into UI-ready sections.
func BuildReport(site monitor.Site, items []monitor.Item, sel *review.SelectionSet, forms *review.FormStore) Report {
	if forms == nil {
		forms = review.NewFormStore()
	}
	cls := review.Classify(items, sel)

	okSec := Section{ID: SectionOK, Title: "Confirmados OK"}
	for _, it := range cls.OKItems {
		okSec.Items = append(okSec.Items, Item{
			ID:     it.ID,
			Title:  it.Title(),
			Status: "OK",
		})
	}

	probSec := Section{ID: SectionProblems, Title: "Con problemas"}
	for _, it := range cls.ProblemItems {
		form := forms.Get(it.ID)

		item := Item{
			ID:       it.ID,
			Title:    it.Title(),
			Status:   site.StatusLabel(form.Estatus),
			Note:     form.Observacion,
			DateRest: form.LastRestoreDate,
		}
		for _, issue := range review.CollectIssues([]monitor.Item{it}, forms) {
			if issue.NeedsStatus {
				item.Missing = append(item.Missing, "estatus")
			}
			if issue.NeedsObservation {
				item.Missing = append(item.Missing, "observación")
			} else if issue.ObservationShort {
				item.Missing = append(item.Missing, "observación corta")
			}
		}
		probSec.Items = append(probSec.Items, item)
	}

	return Report{
		Site:         string(site),
		SiteName:     site.DisplayName(),
		Sections:     []Section{okSec, probSec},
		OKCount:      len(okSec.Items),
		ProblemCount: len(probSec.Items),
	}
}

func (r Report) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByID(id int64) *Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}
