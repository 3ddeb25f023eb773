package monitor

// Site identifies the monitoring source whose clients are being reviewed.
type Site string

const (
	SiteVeeam  Site = "veeam"
	SiteSite24 Site = "site24"
	SiteSophos Site = "sophos"
)

// Sites returns the known sites in menu order.
func Sites() []Site {
	return []Site{SiteVeeam, SiteSite24, SiteSophos}
}

// Valid reports whether s is a known site.
func (s Site) Valid() bool {
	switch s {
	case SiteVeeam, SiteSite24, SiteSophos:
		return true
	}
	return false
}

// DisplayName returns the human title shown in the site menu.
func (s Site) DisplayName() string {
	switch s {
	case SiteVeeam:
		return "Veeam Backup"
	case SiteSite24:
		return "Site24x7"
	case SiteSophos:
		return "Sophos Central"
	}
	return string(s)
}

// StatusOption is one selectable problem status code for a site.
type StatusOption struct {
	Value string
	Label string
}

// StatusOptions returns the problem status codes for the site. The OK status
// "1" is implicit and never offered here.
func (s Site) StatusOptions() []StatusOption {
	switch s {
	case SiteVeeam:
		return []StatusOption{
			{Value: "2", Label: "Job con advertencias"},
			{Value: "3", Label: "Job fallido"},
			{Value: "4", Label: "Sin respaldo reciente"},
			{Value: "5", Label: "Cliente inaccesible"},
		}
	case SiteSite24:
		return []StatusOption{
			{Value: "2", Label: "Monitor caído"},
			{Value: "3", Label: "Latencia degradada"},
			{Value: "4", Label: "Sin datos del agente"},
		}
	case SiteSophos:
		return []StatusOption{
			{Value: "2", Label: "Amenaza detectada"},
			{Value: "3", Label: "Agente desactualizado"},
			{Value: "4", Label: "Equipo sin reportar"},
		}
	}
	return nil
}

// StatusLabel resolves a status code to its label, or returns the code
// itself when unknown.
func (s Site) StatusLabel(value string) string {
	for _, opt := range s.StatusOptions() {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// RowMeta returns the display fields for an item row in the review lists.
// The item's opaque fields come straight from the provider; the site only
// prepends its identifying column.
func (s Site) RowMeta(it Item) []Field {
	meta := make([]Field, 0, len(it.Fields)+1)
	if it.Code != "" {
		meta = append(meta, Field{Label: "Código", Value: it.Code})
	}
	meta = append(meta, it.Fields...)
	return meta
}

// ChipMeta returns the short chips shown on a collapsed problem card:
// the chosen status (by label) and the reference date when supplied.
func (s Site) ChipMeta(it Item, estatus, lastRestoreDate string) []Field {
	var chips []Field
	if estatus != "" {
		chips = append(chips, Field{Label: "Estatus", Value: s.StatusLabel(estatus)})
	}
	if lastRestoreDate != "" {
		chips = append(chips, Field{Label: "Última restauración", Value: lastRestoreDate})
	}
	return chips
}
