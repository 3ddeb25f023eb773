package review

import (
	"fmt"
	"strings"

	"monreview/internal/monitor"
)

const (
	// Above this many invalid items the diagnostic switches from one line
	// per item to a statistical roll-up.
	summaryThreshold = 11

	minObservationLen = 5

	validationHeader = "Completa los siguientes campos:"
)

// Issue is the per-item validation result for one problem item. Derived
// fresh on every pass, never stored.
type Issue struct {
	Title            string
	NeedsStatus      bool
	NeedsObservation bool
	ObservationShort bool
}

// Invalid reports whether the item blocks submission.
func (i Issue) Invalid() bool {
	return i.NeedsStatus || i.NeedsObservation || i.ObservationShort
}

// CollectIssues evaluates the completeness rule for every problem item
// independently. Forms are read trimmed; absent entries read as empty.
func CollectIssues(problems []monitor.Item, forms *FormStore) []Issue {
	issues := make([]Issue, 0, len(problems))
	for _, it := range problems {
		form := forms.Get(it.ID)
		status := strings.TrimSpace(form.Estatus)
		obs := strings.TrimSpace(form.Observacion)

		issue := Issue{
			Title:            it.Title(),
			NeedsStatus:      status == "",
			NeedsObservation: obs == "",
			ObservationShort: obs != "" && len([]rune(obs)) < minObservationLen,
		}
		issues = append(issues, issue)
	}
	return issues
}

// Validate checks every problem item's form and returns a composed
// human-readable diagnostic, or the empty string when all forms are
// complete. Under summaryThreshold invalid items the message itemizes each
// one; at or above it, it rolls the failures up into counts. Validate has
// no side effects; the caller displays the message and aborts submission.
func Validate(problems []monitor.Item, forms *FormStore) string {
	var invalid []Issue
	for _, issue := range CollectIssues(problems, forms) {
		if issue.Invalid() {
			invalid = append(invalid, issue)
		}
	}
	if len(invalid) == 0 {
		return ""
	}
	if len(invalid) < summaryThreshold {
		return formatItemized(invalid)
	}
	return formatSummary(invalid)
}

func formatItemized(invalid []Issue) string {
	lines := make([]string, 0, len(invalid)+1)
	lines = append(lines, validationHeader)
	for _, issue := range invalid {
		var missing []string
		if issue.NeedsStatus {
			missing = append(missing, "Estatus")
		}
		if issue.NeedsObservation {
			missing = append(missing, "Observación")
		}
		if issue.ObservationShort {
			missing = append(missing, "Observación (mín. 5 caracteres)")
		}
		lines = append(lines, fmt.Sprintf("• %s: falta %s", issue.Title, strings.Join(missing, " y ")))
	}
	return strings.Join(lines, "\n")
}

func formatSummary(invalid []Issue) string {
	var both, onlyStatus, onlyObs, short int
	for _, issue := range invalid {
		obsBad := issue.NeedsObservation || issue.ObservationShort
		switch {
		case issue.NeedsStatus && obsBad:
			both++
		case issue.NeedsStatus:
			onlyStatus++
		case obsBad:
			onlyObs++
		}
		if issue.ObservationShort {
			short++
		}
	}

	sentences := []string{
		fmt.Sprintf("Hay %d clientes con campos incompletos.", len(invalid)),
	}
	if both > 0 {
		sentences = append(sentences, fmt.Sprintf("%d sin estatus ni observación.", both))
	}
	if onlyStatus > 0 {
		sentences = append(sentences, fmt.Sprintf("%d solo sin estatus.", onlyStatus))
	}
	if onlyObs > 0 {
		sentences = append(sentences, fmt.Sprintf("%d solo sin observación válida.", onlyObs))
	}
	if short > 0 {
		sentences = append(sentences, fmt.Sprintf("%d con observación de menos de %d caracteres.", short, minObservationLen))
	}
	return strings.Join(sentences, " ")
}
