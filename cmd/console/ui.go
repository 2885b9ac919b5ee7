package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/chronicle-engine/internal/handlers"
	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
	"github.com/jwebster45206/chronicle-engine/pkg/textfilter"
)

type screen int

const (
	screenLoading screen = iota
	screenForm
	screenChronicle
)

// linesPerField is how many rows one requirement takes in the form.
const linesPerField = 4

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	api          *apiClient
	sessionID    uuid.UUID
	screen       screen
	requirements []chronicle.Requirement
	inputs       []textinput.Model
	focused      int
	result       *handlers.ChronicleResponse
	mainViewport viewport.Model
	metaViewport viewport.Model
	ready        bool
	width        int
	height       int
	err          error
	status       string
	loading      bool

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type requirementsMsg struct {
	resp *handlers.RequirementsResponse
	err  error
}

type chronicleMsg struct {
	resp *handlers.ChronicleResponse
	err  error
}

type statusMsg struct {
	text string
	err  error
}

type progressTickMsg struct{}

var (
	mainPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")). // teal
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, api *apiClient, sessionID uuid.UUID) ConsoleUI {
	mainVp := viewport.New(50, 20)
	mainVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		api:          api,
		sessionID:    sessionID,
		screen:       screenLoading,
		mainViewport: mainVp,
		metaViewport: metaVp,
		loading:      true,
	}
}

// newInputs builds one text input per requirement, prefilled with any answer
// already stored for the session.
func newInputs(reqs []chronicle.Requirement, overrides chronicle.Overrides) []textinput.Model {
	inputs := make([]textinput.Model, len(reqs))
	for i, req := range reqs {
		ti := textinput.New()
		ti.Placeholder = req.Hint
		ti.Prompt = promptStyle.Render(":: ")
		ti.CharLimit = textfilter.MaxNameRunes
		ti.Width = 40
		if v, ok := overrides.Lookup(req.Key); ok {
			ti.SetValue(v)
		}
		inputs[i] = ti
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return inputs
}

// answers collects the form values keyed by requirement key. Blank values are
// sent too so cleared fields are removed from the session.
func (m ConsoleUI) answers() map[string]string {
	out := make(map[string]string, len(m.inputs))
	for i, req := range m.requirements {
		out[req.Key] = strings.TrimSpace(m.inputs[i].Value())
	}
	return out
}

// formatForm lays out the requirement form, linesPerField rows per entry.
func formatForm(reqs []chronicle.Requirement, inputs []textinput.Model, focused int) string {
	var content strings.Builder
	for i, req := range reqs {
		label := labelStyle
		if i == focused {
			label = focusedLabelStyle
		}
		marker := ""
		if req.Required {
			marker = " *"
		}
		content.WriteString(label.Render(req.PlaceholderLabel+marker) + "\n")
		content.WriteString(promptStyle.Render(fmt.Sprintf("%s · %s", req.EventDate, req.EventDescription)) + "\n")
		content.WriteString(inputs[i].View() + "\n\n")
	}
	return content.String()
}

// formatChronicle wraps each dated line to width, indenting continuation
// rows under the text.
func formatChronicle(lines []chronicle.Line, width int) string {
	if len(lines) == 0 {
		return promptStyle.Render("No events to show.")
	}
	var content strings.Builder
	for _, line := range lines {
		prefix := line.Date + " - "
		wrapped := wordwrap.String(line.Text, max(width-lipgloss.Width(prefix), 10))
		rows := strings.Split(wrapped, "\n")
		content.WriteString(dateStyle.Render(prefix) + rows[0] + "\n")
		indent := strings.Repeat(" ", lipgloss.Width(prefix))
		for _, row := range rows[1:] {
			content.WriteString(indent + row + "\n")
		}
	}
	return content.String()
}

func (m ConsoleUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("CHRONICLE") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(m.sessionID.String()[:8] + "...\n\n")

	switch m.screen {
	case screenForm:
		done := 0
		for i, req := range m.requirements {
			if req.Required && strings.TrimSpace(m.inputs[i].Value()) != "" {
				done++
			}
		}
		required := len(chronicle.Missing(m.requirements, nil))
		content.WriteString("Answered:\n")
		content.WriteString(fmt.Sprintf("%d / %d required\n\n", done, required))
		content.WriteString("Commands:\n")
		content.WriteString("• ↑/↓, Tab: Move\n")
		content.WriteString("• Enter: Next / Render\n")
		content.WriteString("• Ctrl+R: Render now\n")
		content.WriteString("• Ctrl+C: Quit\n")
	case screenChronicle:
		if m.result != nil {
			content.WriteString("Mode:\n" + string(m.result.Mode) + "\n\n")
			content.WriteString(m.result.Report.String() + "\n")
			if len(m.result.Missing) > 0 {
				content.WriteString(fmt.Sprintf("Unanswered: %d\n\n", len(m.result.Missing)))
			}
		}
		content.WriteString("Commands:\n")
		content.WriteString("• c: Copy\n")
		content.WriteString("• s: Save file\n")
		content.WriteString("• r: Render again\n")
		if !m.config.Random {
			content.WriteString("• e: Edit names\n")
		}
		content.WriteString("• Ctrl+C: Quit\n")
	}
	return content.String()
}

// writeMainContent rebuilds the main panel for the current screen and width.
func (m *ConsoleUI) writeMainContent() {
	width := m.mainViewport.Width - 6 // Account for left(3) + right(3) padding

	var content strings.Builder
	content.WriteString(titleStyle.Render(chronicle.Title) + "\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(width, 10))) + "\n\n")

	switch m.screen {
	case screenLoading:
		content.WriteString(loadingStyle.Render("Working...") + "\n\n")
		content.WriteString(m.renderProgressBar())
	case screenForm:
		content.WriteString("Name the colonies, leviathans and empires of your chronicle.\n")
		content.WriteString(promptStyle.Render("Fields marked * are required; blank ones fall back to defaults.") + "\n\n")
		content.WriteString(formatForm(m.requirements, m.inputs, m.focused))
	case screenChronicle:
		if m.result != nil {
			content.WriteString(formatChronicle(m.result.Lines, width))
		}
	}

	if m.status != "" {
		content.WriteString("\n" + loadingStyle.Render(m.status) + "\n")
	}
	if m.err != nil {
		content.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	m.mainViewport.SetContent(content.String())
	if m.screen == screenForm {
		// header rows plus the rows of the fields above the focused one
		m.mainViewport.SetYOffset(max(0, 6+m.focused*linesPerField-m.mainViewport.Height/2))
	}
	m.metaViewport.SetContent(m.writeMetadata())
}

func (m ConsoleUI) Init() tea.Cmd {
	if m.config.Random {
		return tea.Batch(m.render(chronicle.ModeRandom), progressTick())
	}
	return tea.Batch(m.loadRequirements(), progressTick())
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		mainWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - mainWidth - 6

		m.mainViewport.Width = mainWidth - 2
		m.mainViewport.Height = m.height - 4
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.ready = true
		m.writeMainContent()
		return m, nil

	case requirementsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.writeMainContent()
			return m, nil
		}
		m.requirements = msg.resp.Requirements
		m.inputs = newInputs(msg.resp.Requirements, msg.resp.Overrides)
		m.focused = 0
		m.screen = screenForm
		m.writeMainContent()
		return m, textinput.Blink

	case chronicleMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			if m.inputs != nil {
				m.screen = screenForm
			}
			m.writeMainContent()
			return m, nil
		}
		m.err = nil
		m.result = msg.resp
		m.screen = screenChronicle
		m.status = fmt.Sprintf("%d events rendered", len(msg.resp.Lines))
		m.writeMainContent()
		m.mainViewport.GotoTop()
		return m, nil

	case statusMsg:
		m.status, m.err = msg.text, msg.err
		m.writeMainContent()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeMainContent()
			return m, progressTick()
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.mainViewport, cmd = m.mainViewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.showQuitModal = true
			return m, nil
		}
		if m.loading {
			return m, nil
		}
		switch m.screen {
		case screenForm:
			return m.updateForm(msg)
		case screenChronicle:
			return m.updateChronicle(msg)
		}
	}

	return m, nil
}

func (m ConsoleUI) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp, tea.KeyShiftTab:
		return m.focus(m.focused - 1)
	case tea.KeyDown, tea.KeyTab:
		return m.focus(m.focused + 1)
	case tea.KeyCtrlR:
		return m.submit()
	case tea.KeyEnter:
		if m.focused == len(m.inputs)-1 {
			return m.submit()
		}
		return m.focus(m.focused + 1)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	m.writeMainContent()
	return m, cmd
}

func (m ConsoleUI) focus(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.inputs) {
		return m, nil
	}
	m.inputs[m.focused].Blur()
	m.focused = i
	cmd := m.inputs[i].Focus()
	m.writeMainContent()
	return m, cmd
}

func (m ConsoleUI) submit() (tea.Model, tea.Cmd) {
	m.loading = true
	m.progressTick = 0
	m.status = ""
	m.err = nil
	m.screen = screenLoading
	m.writeMainContent()
	return m, tea.Batch(m.saveAndRender(m.answers()), progressTick())
}

func (m ConsoleUI) updateChronicle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		return m, m.copyChronicle()
	case "s":
		return m, m.saveChronicle()
	case "r":
		mode := chronicle.ModeManual
		if m.config.Random {
			mode = chronicle.ModeRandom
		}
		m.loading = true
		m.progressTick = 0
		m.screen = screenLoading
		m.writeMainContent()
		return m, tea.Batch(m.render(mode), progressTick())
	case "e":
		if m.inputs == nil {
			return m, nil
		}
		m.screen = screenForm
		m.status = ""
		m.writeMainContent()
		return m, m.inputs[m.focused].Focus()
	}

	var cmd tea.Cmd
	m.mainViewport, cmd = m.mainViewport.Update(msg)
	return m, cmd
}

func (m ConsoleUI) loadRequirements() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.api.getRequirements(m.sessionID)
		return requirementsMsg{resp, err}
	}
}

func (m ConsoleUI) render(mode chronicle.Mode) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.api.renderChronicle(m.sessionID, handlers.ChronicleRequest{
			EmpireName: m.config.EmpireName,
			Mode:       string(mode),
		})
		return chronicleMsg{resp, err}
	}
}

func (m ConsoleUI) saveAndRender(answers map[string]string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.api.putOverrides(m.sessionID, answers); err != nil {
			return chronicleMsg{nil, err}
		}
		resp, err := m.api.renderChronicle(m.sessionID, handlers.ChronicleRequest{
			EmpireName: m.config.EmpireName,
			Mode:       string(chronicle.ModeManual),
		})
		return chronicleMsg{resp, err}
	}
}

func (m ConsoleUI) copyChronicle() tea.Cmd {
	text := m.result.Text
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{err: fmt.Errorf("copy failed: %w", err)}
		}
		return statusMsg{text: "Chronicle copied to clipboard"}
	}
}

func (m ConsoleUI) saveChronicle() tea.Cmd {
	path := filepath.Join(m.config.OutDir, m.result.Filename)
	text := m.result.Text
	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return statusMsg{err: fmt.Errorf("save failed: %w", err)}
		}
		return statusMsg{text: "Saved " + path}
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.screen == screenForm && len(m.inputs) > 0 {
					return m, m.inputs[m.focused].Focus()
				}
				return m, nil
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved chronicles are lost when you quit.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	mainWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - mainWidth - 6

	mainPanel := mainPanelStyle.Width(mainWidth).Height(m.height - 2).Render(
		m.mainViewport.View(),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, mainPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.mainViewport.Width - 6
	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓") // Blinking effect at the progress point
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
