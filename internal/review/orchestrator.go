package review

import (
	"context"
	"errors"

	"monreview/internal/monitor"
)

// Phase is the workflow state. The review moves from OK-review to
// problem-review only when problems exist, and terminates on a successful
// submission. Transport failures never change the phase.
type Phase int

const (
	PhaseOKReview Phase = iota
	PhaseProblemReview
	PhaseSubmitted
)

// Fallback notifications when the transport reports no message.
const (
	errSaveOK       = "Error al guardar monitoreo (OK)."
	errSaveProblems = "Error al guardar monitoreo (Problemas)."
	msgSaved        = "Monitoreo guardado correctamente."
)

// Outcome is the disjoint result of a submission attempt. Expected failures
// travel as values, never as errors thrown across the boundary.
type Outcome struct {
	OK      bool
	Message string // optional server-supplied text; empty means "use fallback"
}

// Submitter delivers a payload to the submission boundary.
type Submitter interface {
	Submit(ctx context.Context, p Payload) Outcome
}

// Notifier receives user-facing notifications. The orchestrator never
// renders anything itself.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Orchestrator owns one review workflow for one site load: the selection
// set, the form store and the phase. It is not safe for concurrent use;
// the caller serializes submission attempts (e.g. by disabling the primary
// action while one is outstanding).
type Orchestrator struct {
	site   monitor.Site
	items  []monitor.Item
	sel    *SelectionSet
	forms  *FormStore
	submit Submitter
	notify Notifier
	onDone func()
	phase  Phase
}

// NewOrchestrator starts a fresh workflow. Creating a new orchestrator per
// site load is what discards stale selections from a previous site. onDone
// runs after a successful submission (the caller's redirect) and may be nil.
func NewOrchestrator(site monitor.Site, items []monitor.Item, submit Submitter, notify Notifier, onDone func()) (*Orchestrator, error) {
	if submit == nil || notify == nil {
		return nil, errors.New("submitter and notifier are required")
	}
	return &Orchestrator{
		site:   site,
		items:  items,
		sel:    NewSelectionSet(),
		forms:  NewFormStore(),
		submit: submit,
		notify: notify,
		onDone: onDone,
		phase:  PhaseOKReview,
	}, nil
}

func (o *Orchestrator) Site() monitor.Site       { return o.site }
func (o *Orchestrator) Items() []monitor.Item    { return o.items }
func (o *Orchestrator) Selection() *SelectionSet { return o.sel }
func (o *Orchestrator) Forms() *FormStore        { return o.forms }
func (o *Orchestrator) Phase() Phase             { return o.phase }

// Classify recomputes the partition from the current selection.
func (o *Orchestrator) Classify() Classification {
	return Classify(o.items, o.sel)
}

// PrimaryAction is the phase-1 button. With problems pending it only
// advances to problem-review; with none it submits the OK rows immediately.
func (o *Orchestrator) PrimaryAction(ctx context.Context) {
	if o.phase != PhaseOKReview {
		return
	}
	if o.Classify().HasProblems {
		o.phase = PhaseProblemReview
		return
	}
	okRows, _ := BuildRows(o.items, o.sel, o.forms)
	o.deliver(ctx, okRows, errSaveOK)
}

// Back returns from problem-review to OK-review. Selection and forms are
// kept intact.
func (o *Orchestrator) Back() {
	if o.phase == PhaseProblemReview {
		o.phase = PhaseOKReview
	}
}

// SubmitProblems is the phase-2 button: validate every problem form, then
// submit OK and problem rows together. A validation failure surfaces as an
// error notification and no transport call is made.
func (o *Orchestrator) SubmitProblems(ctx context.Context) {
	if o.phase != PhaseProblemReview {
		return
	}
	c := o.Classify()
	if msg := Validate(c.ProblemItems, o.forms); msg != "" {
		o.notify.Error(msg)
		return
	}
	okRows, probRows := BuildRows(o.items, o.sel, o.forms)
	o.deliver(ctx, append(okRows, probRows...), errSaveProblems)
}

func (o *Orchestrator) deliver(ctx context.Context, rows []Row, fallback string) {
	outcome := o.submit.Submit(ctx, Payload{Site: string(o.site), Rows: rows})
	if !outcome.OK {
		msg := outcome.Message
		if msg == "" {
			msg = fallback
		}
		o.notify.Error(msg)
		return
	}
	o.phase = PhaseSubmitted
	o.notify.Success(msgSaved)
	if o.onDone != nil {
		o.onDone()
	}
}
