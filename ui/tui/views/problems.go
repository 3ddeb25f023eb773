package views

import (
	"fmt"
	"strings"

	"monreview/internal/monitor"
	"monreview/ui/tui/state"
	"monreview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type ProblemsView struct{}

// Render draws the phase-2 page: one accordion card per problem client with
// its status picker, observación and fecha de restauración inputs.
func (v ProblemsView) Render(s state.AppState, props ViewProps) string {
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		styles.TitleStyle.Render("Clientes con problemas · "+s.Site.DisplayName()),
		fmt.Sprintf(" %d pendientes", props.Report.ProblemCount),
	)

	problems := props.Report.SectionByID("problems")

	var cards []string
	if problems != nil {
		for i, item := range problems.Items {
			open := props.Open != nil && props.Open.IsOpen(item.ID)

			title := item.Title
			if i == props.ListCursor {
				title = "› " + title
			} else {
				title = "  " + title
			}
			if len(item.Missing) > 0 {
				title += " " + lipgloss.NewStyle().Foreground(styles.WarnColor).Render("!")
			}

			var body string
			if open {
				body = v.renderForm(s, props)
			} else {
				var fields []monitor.Field
				if item.Status != "" {
					fields = append(fields, monitor.Field{Label: "Estatus", Value: item.Status})
				}
				if item.DateRest != "" {
					fields = append(fields, monitor.Field{Label: "Última restauración", Value: item.DateRest})
				}
				body = Chips(fields)
			}

			borderColor := lipgloss.Color("#444")
			if i == props.ListCursor {
				borderColor = BrandColor
			}
			card := styles.CardStyle.BorderForeground(borderColor).Width(56).Render(
				lipgloss.JoinVertical(lipgloss.Left,
					lipgloss.NewStyle().Bold(true).Render(title),
					body,
				),
			)

			zoneID := fmt.Sprintf("card_%d", item.ID)
			cards = append(cards, zone.Mark(zoneID, card))
		}
	}
	if len(cards) == 0 {
		cards = append(cards, CopyStyle.Render("No hay clientes con problemas."))
	}

	anyOpen := props.Open != nil && props.Open.OpenCount() > 0
	var controls string
	if anyOpen {
		controls = "[Tab] Campo siguiente • [↑/↓] Estatus • [Esc] Cerrar ficha"
	} else {
		controls = "[↑/↓] Navegar • [Enter] Abrir ficha • [g] Guardar monitoreo • [b] Volver"
	}
	if s.Submitting {
		controls = props.SpinnerView + " Guardando..."
	}
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("#666")).PaddingLeft(2).Render(controls)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinVertical(lipgloss.Left, cards...),
		NoticeLine(s),
		footer,
	))
}

// renderForm draws the editable fields of the open card.
func (v ProblemsView) renderForm(s state.AppState, props ViewProps) string {
	var statusLines []string
	for i, opt := range s.Site.StatusOptions() {
		marker := "( )"
		style := lipgloss.NewStyle()
		if i == props.StatusCursor {
			marker = "(•)"
			style = style.Bold(true).Foreground(BrandColor)
		}
		statusLines = append(statusLines, style.Render(fmt.Sprintf("%s %s", marker, opt.Label)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Estatus"),
		strings.Join(statusLines, "\n"),
		"",
		lipgloss.NewStyle().Bold(true).Render("Observación"),
		props.ObsView,
		"",
		lipgloss.NewStyle().Bold(true).Render("Última restauración (YYYY-MM-DD)"),
		props.DateView,
	)
}
