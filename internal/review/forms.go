package review

// ProblemForm holds the remediation data the user enters for one problem
// item. Fields stay untrimmed until validation/payload time so the user can
// leave blanks while navigating.
type ProblemForm struct {
	Estatus         string
	Observacion     string
	LastRestoreDate string // canonical date-only text, YYYY-MM-DD, or ""
}

// FormPatch is a partial update: nil fields are left untouched.
type FormPatch struct {
	Estatus         *string
	Observacion     *string
	LastRestoreDate *string
}

// FormStore maps item ids to their problem forms. Entries exist only for
// items the user has started editing; absent entries read as the zero form.
// Entries for items that move back into the selection become inert but are
// never deleted.
type FormStore struct {
	forms map[int64]ProblemForm
}

func NewFormStore() *FormStore {
	return &FormStore{forms: make(map[int64]ProblemForm)}
}

// Get returns the form for id, or the zero-value form if absent.
func (f *FormStore) Get(id int64) ProblemForm {
	return f.forms[id]
}

// Update merges patch into the entry for id, creating it if absent, and
// returns the resulting form. No validation happens at write time.
func (f *FormStore) Update(id int64, patch FormPatch) ProblemForm {
	form := f.forms[id]
	if patch.Estatus != nil {
		form.Estatus = *patch.Estatus
	}
	if patch.Observacion != nil {
		form.Observacion = *patch.Observacion
	}
	if patch.LastRestoreDate != nil {
		form.LastRestoreDate = *patch.LastRestoreDate
	}
	f.forms[id] = form
	return form
}
