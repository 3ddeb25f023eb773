package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"monreview/internal/monitor"
	"monreview/internal/output"
	"monreview/internal/review"
	"monreview/ui/tui/state"
	"monreview/ui/tui/styles"
	"monreview/ui/tui/views"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Form field focus slots within an open problem card.
const (
	fieldStatus = iota
	fieldObs
	fieldDate
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	provider  monitor.ItemProvider
	submitter review.Submitter
	state     state.AppState
	orch      *review.Orchestrator
	notices   *noticeRecorder
	open      *state.Disclosure

	spinner    spinner.Model
	search     textinput.Model
	obsInput   textinput.Model
	dateInput  textinput.Model
	countChart barchart.Model

	menuCursor   int
	listCursor   int
	statusCursor int
	focusField   int
	animCursor   float64
	velocity     float64 // Physics velocity
	spring       harmonica.Spring
	mouseX       int
	mouseY       int
	quitting     bool
	width        int
	height       int
}

// Messages
type AnimateMsg time.Time
type ItemsLoadedMsg struct {
	Site  monitor.Site
	Items []monitor.Item
	Err   error
}
type SubmitDoneMsg struct{}

// noticeRecorder implements review.Notifier. Submission commands run in
// their own goroutine, so notifications are buffered under a lock and
// drained back on the Update loop.
type noticeRecorder struct {
	mu    sync.Mutex
	msg   string
	isErr bool
}

func (n *noticeRecorder) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msg, n.isErr = msg, false
}

func (n *noticeRecorder) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msg, n.isErr = msg, true
}

func (n *noticeRecorder) take() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	msg, isErr := n.msg, n.isErr
	n.msg, n.isErr = "", false
	return msg, isErr
}

func InitialModel(provider monitor.ItemProvider, submitter review.Submitter, defaultSite monitor.Site) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	search := textinput.New()
	search.Placeholder = "nombre o código"
	search.CharLimit = 64
	search.Width = 28

	obs := textinput.New()
	obs.Placeholder = "qué se encontró y qué se hizo"
	obs.CharLimit = 280
	obs.Width = 48

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12

	// Initialize physics spring for smooth cursor animation
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	menuCursor := 0
	for i, site := range monitor.Sites() {
		if site == defaultSite {
			menuCursor = i
		}
	}

	return MainModel{
		provider:   provider,
		submitter:  submitter,
		notices:    &noticeRecorder{},
		spinner:    s,
		search:     search,
		obsInput:   obs,
		dateInput:  date,
		countChart: barchart.New(24, 6),
		spring:     spring,
		menuCursor: menuCursor,
		state: state.AppState{
			CurrentPage: state.PageSiteMenu,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		animateCmd(),
	)
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func loadItemsCmd(p monitor.ItemProvider, site monitor.Site) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		items, err := p.LoadItems(ctx, site)
		return ItemsLoadedMsg{Site: site, Items: items, Err: err}
	}
}

func submitCmd(action func()) tea.Cmd {
	return func() tea.Msg {
		action()
		return SubmitDoneMsg{}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ItemsLoadedMsg:
		return m.handleItemsLoadedMsg(msg)

	case SubmitDoneMsg:
		return m.handleSubmitDoneMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "q" && !m.typing() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state.CurrentPage {
	case state.PageSiteMenu:
		return m.handleMenuKeys(msg)
	case state.PageOKReview:
		return m.handleOKReviewKeys(msg)
	case state.PageProblems:
		return m.handleProblemsKeys(msg)
	case state.PageDone:
		if msg.String() == "enter" || msg.String() == "b" {
			m.resetToMenu()
		}
		return m, nil
	}

	return m, nil
}

// typing reports whether keystrokes currently belong to a text input.
func (m *MainModel) typing() bool {
	return m.search.Focused() || m.obsInput.Focused() || m.dateInput.Focused()
}

func (m *MainModel) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sites := monitor.Sites()
	switch msg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(sites)-1 {
			m.menuCursor++
		}
	case "enter":
		if m.state.Loading {
			return m, nil
		}
		return m, m.loadSite(sites[m.menuCursor])
	}
	return m, nil
}

func (m *MainModel) loadSite(site monitor.Site) tea.Cmd {
	m.state.Loading = true
	m.state.Err = nil
	return tea.Batch(m.spinner.Tick, loadItemsCmd(m.provider, site))
}

func (m *MainModel) handleOKReviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Submitting {
		return m, nil
	}

	if m.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.state.Query = m.search.Value()
		m.clampListCursor(len(m.visibleItems()))
		return m, cmd
	}

	visible := m.visibleItems()
	switch msg.String() {
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		}
	case "down", "j":
		if m.listCursor < len(visible)-1 {
			m.listCursor++
		}
	case " ":
		if m.listCursor < len(visible) {
			m.orch.Selection().Toggle(visible[m.listCursor].ID)
			m.refreshChart()
		}
	case "a":
		m.orch.Selection().SelectAllVisible(monitor.IDs(visible))
		m.refreshChart()
	case "n":
		m.orch.Selection().ClearAll()
		m.refreshChart()
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "enter":
		return m.primaryAction()
	case "b", "esc":
		m.resetToMenu()
	}
	return m, nil
}

// primaryAction runs the phase-1 button: advance to the problem page when
// problems exist, otherwise submit the all-OK payload in the background.
func (m *MainModel) primaryAction() (tea.Model, tea.Cmd) {
	m.state.Notice = ""
	if m.orch.Classify().HasProblems {
		m.orch.PrimaryAction(context.Background())
		m.state.CurrentPage = state.PageProblems
		m.listCursor = 0
		m.open.CloseAll()
		return m, nil
	}
	m.state.Submitting = true
	return m, tea.Batch(m.spinner.Tick, submitCmd(func() {
		m.orch.PrimaryAction(context.Background())
	}))
}

func (m *MainModel) handleProblemsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Submitting {
		return m, nil
	}

	problems := m.orch.Classify().ProblemItems

	if m.open.OpenCount() > 0 {
		return m.handleFormKeys(msg, problems)
	}

	switch msg.String() {
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		}
	case "down", "j":
		if m.listCursor < len(problems)-1 {
			m.listCursor++
		}
	case "enter", " ":
		if m.listCursor < len(problems) {
			m.openCard(problems[m.listCursor])
		}
	case "g":
		m.state.Notice = ""
		m.state.Submitting = true
		return m, tea.Batch(m.spinner.Tick, submitCmd(func() {
			m.orch.SubmitProblems(context.Background())
		}))
	case "b", "esc":
		m.orch.Back()
		m.state.CurrentPage = state.PageOKReview
		m.listCursor = 0
	}
	return m, nil
}

// handleFormKeys routes keystrokes into the open card's fields.
func (m *MainModel) handleFormKeys(msg tea.KeyMsg, problems []monitor.Item) (tea.Model, tea.Cmd) {
	item, ok := m.openItem(problems)
	if !ok {
		m.open.CloseAll()
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeCard()
		return m, nil
	case "tab":
		m.setFocusField((m.focusField + 1) % 3)
		return m, textinput.Blink
	case "shift+tab":
		m.setFocusField((m.focusField + 2) % 3)
		return m, textinput.Blink
	}

	if m.focusField == fieldStatus {
		options := m.state.Site.StatusOptions()
		switch msg.String() {
		case "up", "k":
			if m.statusCursor > 0 {
				m.statusCursor--
				m.pickStatus(item, options)
			}
		case "down", "j":
			if m.statusCursor < len(options)-1 {
				m.statusCursor++
				m.pickStatus(item, options)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusField == fieldObs {
		m.obsInput, cmd = m.obsInput.Update(msg)
		val := m.obsInput.Value()
		m.orch.Forms().Update(item.ID, review.FormPatch{Observacion: &val})
	} else {
		m.dateInput, cmd = m.dateInput.Update(msg)
		val := m.dateInput.Value()
		m.orch.Forms().Update(item.ID, review.FormPatch{LastRestoreDate: &val})
	}
	return m, cmd
}

func (m *MainModel) pickStatus(item monitor.Item, options []monitor.StatusOption) {
	if m.statusCursor < 0 || m.statusCursor >= len(options) {
		return
	}
	val := options[m.statusCursor].Value
	m.orch.Forms().Update(item.ID, review.FormPatch{Estatus: &val})
}

// openItem finds the problem item whose card is currently expanded.
func (m *MainModel) openItem(problems []monitor.Item) (monitor.Item, bool) {
	for _, it := range problems {
		if m.open.IsOpen(it.ID) {
			return it, true
		}
	}
	return monitor.Item{}, false
}

// openCard expands one card and seeds the inputs from the stored form.
func (m *MainModel) openCard(item monitor.Item) {
	m.open.Open(item.ID)

	form := m.orch.Forms().Get(item.ID)
	m.obsInput.SetValue(form.Observacion)
	m.dateInput.SetValue(form.LastRestoreDate)

	m.statusCursor = -1
	for i, opt := range m.state.Site.StatusOptions() {
		if opt.Value == form.Estatus {
			m.statusCursor = i
		}
	}

	m.setFocusField(fieldStatus)
}

func (m *MainModel) closeCard() {
	m.open.CloseAll()
	m.obsInput.Blur()
	m.dateInput.Blur()
	m.focusField = fieldStatus
}

func (m *MainModel) setFocusField(field int) {
	m.focusField = field
	m.obsInput.Blur()
	m.dateInput.Blur()
	switch field {
	case fieldObs:
		m.obsInput.Focus()
	case fieldDate:
		m.dateInput.Focus()
	}
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.menuCursor), v)
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleItemsLoadedMsg(msg ItemsLoadedMsg) (tea.Model, tea.Cmd) {
	m.state.Loading = false
	if msg.Err != nil {
		m.state.Err = msg.Err
		return m, nil
	}

	orch, err := review.NewOrchestrator(msg.Site, msg.Items, m.submitter, m.notices, nil)
	if err != nil {
		m.state.Err = err
		return m, nil
	}

	m.orch = orch
	m.open = state.NewDisclosure(state.ModeSingle)
	m.state.Site = msg.Site
	m.state.Items = msg.Items
	m.state.Query = ""
	m.state.Notice = ""
	m.state.LastLoaded = time.Now()
	m.state.CurrentPage = state.PageOKReview
	m.search.SetValue("")
	m.search.Blur()
	m.listCursor = 0
	m.refreshChart()
	return m, nil
}

func (m *MainModel) handleSubmitDoneMsg(msg SubmitDoneMsg) (tea.Model, tea.Cmd) {
	m.state.Submitting = false
	notice, isErr := m.notices.take()
	m.state.Notice = notice
	m.state.NoticeIsErr = isErr
	if m.orch != nil && m.orch.Phase() == review.PhaseSubmitted {
		m.state.CurrentPage = state.PageDone
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch m.state.CurrentPage {
	case state.PageSiteMenu:
		for i := range monitor.Sites() {
			if zone.Get(fmt.Sprintf("site_%d", i)).InBounds(msg) {
				m.menuCursor = i
				return m, m.loadSite(monitor.Sites()[i])
			}
		}
	case state.PageOKReview:
		if m.state.Submitting {
			return m, nil
		}
		for i, it := range m.visibleItems() {
			if zone.Get(fmt.Sprintf("okrow_%d", it.ID)).InBounds(msg) {
				m.listCursor = i
				m.orch.Selection().Toggle(it.ID)
				m.refreshChart()
				return m, nil
			}
		}
	case state.PageProblems:
		if m.state.Submitting {
			return m, nil
		}
		for i, it := range m.orch.Classify().ProblemItems {
			if zone.Get(fmt.Sprintf("card_%d", it.ID)).InBounds(msg) {
				m.listCursor = i
				if m.open.IsOpen(it.ID) {
					m.closeCard()
				} else {
					m.openCard(it)
				}
				return m, nil
			}
		}
	}
	return m, nil
}

func (m *MainModel) visibleItems() []monitor.Item {
	return monitor.FilterItems(m.state.Items, m.state.Query)
}

func (m *MainModel) clampListCursor(n int) {
	if m.listCursor >= n {
		m.listCursor = n - 1
	}
	if m.listCursor < 0 {
		m.listCursor = 0
	}
}

// refreshChart redraws the OK/problem counters bar chart.
func (m *MainModel) refreshChart() {
	if m.orch == nil {
		return
	}
	c := m.orch.Classify()

	okStyle := lipgloss.NewStyle().Foreground(styles.OKColor)
	probStyle := lipgloss.NewStyle().Foreground(styles.ErrColor)

	m.countChart = barchart.New(24, 6)
	m.countChart.PushAll([]barchart.BarData{
		{Label: "OK", Values: []barchart.BarValue{
			{Name: "OK", Value: float64(len(c.OKItems)), Style: okStyle},
		}},
		{Label: "Prob", Values: []barchart.BarValue{
			{Name: "Problemas", Value: float64(len(c.ProblemItems)), Style: probStyle},
		}},
	})
	m.countChart.Draw()
}

func (m *MainModel) resetToMenu() {
	m.orch = nil
	m.open = nil
	m.state = state.AppState{CurrentPage: state.PageSiteMenu}
	m.search.SetValue("")
	m.search.Blur()
	m.obsInput.Blur()
	m.dateInput.Blur()
	m.listCursor = 0
	m.focusField = fieldStatus
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Hasta luego.\n"
	}

	props := views.ViewProps{
		Width:        m.width,
		Height:       m.height,
		MouseX:       m.mouseX,
		MouseY:       m.mouseY,
		MenuCursor:   m.menuCursor,
		AnimCursor:   m.animCursor,
		ListCursor:   m.listCursor,
		SpinnerView:  m.spinner.View(),
		SearchView:   m.search.View(),
		ObsView:      m.obsInput.View(),
		DateView:     m.dateInput.View(),
		StatusCursor: m.statusCursor,
		Open:         m.open,
	}

	if m.orch != nil {
		props.Report = output.BuildReport(m.state.Site, m.state.Items, m.orch.Selection(), m.orch.Forms())
		props.Visible = m.visibleItems()
		props.Selected = m.orch.Selection().Snapshot()
		props.ChartView = m.countChart.View()
	}

	switch m.state.CurrentPage {
	case state.PageSiteMenu:
		return views.MenuView{}.Render(m.state, props)
	case state.PageOKReview:
		return views.OKReviewView{}.Render(m.state, props)
	case state.PageProblems:
		return views.ProblemsView{}.Render(m.state, props)
	case state.PageDone:
		return views.DoneView{}.Render(m.state, props)
	default:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Página desconocida\n\nPresiona 'b' para volver"),
		)
	}
}

func Start(provider monitor.ItemProvider, submitter review.Submitter, defaultSite monitor.Site) error {
	m := InitialModel(provider, submitter, defaultSite)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
