package engineconfig

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// option represents a single tunable setting with its possible values.
type option struct {
	label   string
	values  []string
	current int
}

// Model is the engine tuning screen's tea.Model.
type Model struct {
	store   *Store
	options []option
	cursor  int
	width   int
	height  int
	done    bool
	saved   bool
}

var (
	exactThresholds = []string{"10", "15", "20", "25", "30"}
	sampleSizes     = []string{"10000", "50000", "100000", "250000"}
	flagThresholds  = []string{"0.80", "0.85", "0.90", "0.95", "0.99"}
	autoSpeeds      = []string{"slow", "normal", "fast", "off"}
)

// NewModel creates a tuning screen from the current config.
func NewModel(store *Store) Model {
	cfg := store.Config

	opts := []option{
		{
			label:   "Exact Enumeration Threshold",
			values:  exactThresholds,
			current: indexOf(strconv.Itoa(cfg.ExactThreshold), exactThresholds),
		},
		{
			label:   "Sample Size",
			values:  sampleSizes,
			current: indexOf(strconv.Itoa(cfg.SampleSize), sampleSizes),
		},
		{
			label:   "Flag Threshold",
			values:  flagThresholds,
			current: indexOf(strconv.FormatFloat(cfg.FlagThreshold, 'f', 2, 64), flagThresholds),
		},
		{
			label:   "Auto-Solve Speed",
			values:  autoSpeeds,
			current: indexOf(string(cfg.AutoSolveSpeed), autoSpeeds),
		},
	}

	return Model{
		store:   store,
		options: opts,
	}
}

func indexOf(val string, list []string) int {
	for i, v := range list {
		if v == val {
			return i
		}
	}
	return 0
}

// Init returns nil; no initial command needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles input for the tuning screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.options) - 1
			}
		case "down", "j":
			m.cursor++
			if m.cursor >= len(m.options) {
				m.cursor = 0
			}
		case "left", "h":
			opt := &m.options[m.cursor]
			opt.current--
			if opt.current < 0 {
				opt.current = len(opt.values) - 1
			}
			m.applyToStore()
		case "right", "l":
			opt := &m.options[m.cursor]
			opt.current++
			if opt.current >= len(opt.values) {
				opt.current = 0
			}
			m.applyToStore()
		case "enter", "s":
			_ = m.store.Save()
			m.saved = true
			m.done = true
		case "q", "esc":
			m.done = true
		}
	}

	return m, nil
}

// applyToStore writes the current option selections back to the store
// config, ignoring malformed values (the option lists are always
// well-formed, so strconv errors here would indicate a programming bug).
func (m *Model) applyToStore() {
	exact, _ := strconv.Atoi(m.options[0].values[m.options[0].current])
	sample, _ := strconv.Atoi(m.options[1].values[m.options[1].current])
	flag, _ := strconv.ParseFloat(m.options[2].values[m.options[2].current], 64)

	m.store.Config.ExactThreshold = exact
	m.store.Config.SampleSize = sample
	m.store.Config.FlagThreshold = flag
	m.store.Config.AutoSolveSpeed = AutoSolveSpeed(m.options[3].values[m.options[3].current])
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#DCFFDC"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Width(28)

	activeLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFD700")).
				Width(28)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	selectedValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFD700"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// View renders the tuning screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Engine Tuning"))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		indicator := "  "
		label := labelStyle
		if i == m.cursor {
			indicator = "> "
			label = activeLabelStyle
		}

		b.WriteString(cursorStyle.Render(indicator))
		b.WriteString(label.Render(opt.label))
		b.WriteString("  ")

		var vals []string
		for j, v := range opt.values {
			if j == opt.current {
				vals = append(vals, selectedValueStyle.Render(fmt.Sprintf("[%s]", v)))
			} else {
				vals = append(vals, valueStyle.Render(v))
			}
		}
		b.WriteString(strings.Join(vals, "  "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("  ↑↓ Navigate | ←→ Change | S Save | Q Back"))

	content := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Done returns true when the user exits the tuning screen.
func (m Model) Done() bool {
	return m.done
}

// Saved returns true if the config was saved before exiting.
func (m Model) Saved() bool {
	return m.saved
}
