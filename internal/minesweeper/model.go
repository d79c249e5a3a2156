package minesweeper

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jfallows/minesweeper-ai/internal/engineconfig"
	"github.com/jfallows/minesweeper-ai/internal/scores"
	"github.com/jfallows/minesweeper-ai/internal/solver"
)

type phase int

const (
	phaseDifficulty phase = iota
	phasePlaying
	phaseGameOver
	phaseConfig
)

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

type autoSolveTickMsg struct{}

func autoSolveTickCmd(ms int) tea.Cmd {
	return tea.Tick(time.Duration(ms)*time.Millisecond, func(time.Time) tea.Msg {
		return autoSolveTickMsg{}
	})
}

func difficultyName(d Difficulty) string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	}
	return "beginner"
}

// Model is the Bubbletea model for the Minesweeper game, including the
// auto-solve engine and its tuning/stats screens.
type Model struct {
	game      *Game
	cursorRow int
	cursorCol int
	width     int
	height    int
	done      bool
	phase     phase
	elapsed   int
	ticking   bool
	diff      Difficulty

	engine    *engineconfig.Store
	stats     *scores.Store
	configUI  engineconfig.Model
	logger    *log.Logger
	rng       *rand.Rand
	autoSolve bool
	readout   string
}

// New creates a fresh Minesweeper model at the difficulty selection screen,
// loading persisted engine tuning parameters and play statistics.
func New() Model {
	engine, _ := engineconfig.Load()
	stats, _ := scores.Load()
	return Model{
		phase:  phaseDifficulty,
		engine: engine,
		stats:  stats,
		logger: log.New(os.Stderr, "solver: ", 0),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Init returns nil; no initial command needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Done returns true once the player has asked to quit.
func (m Model) Done() bool {
	return m.done
}

// Update handles input and advances game state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.phase == phasePlaying && m.ticking && m.game.State == Playing {
			m.elapsed++
			return m, tickCmd()
		}
		return m, nil

	case autoSolveTickMsg:
		if m.phase != phasePlaying || !m.autoSolve || m.game.State != Playing {
			return m, nil
		}
		return m.autoSolveStep()

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		var next tea.Model
		var cmd tea.Cmd
		switch m.phase {
		case phaseDifficulty:
			next, cmd = m.updateDifficulty(key)
		case phasePlaying:
			next, cmd = m.updatePlaying(key)
		case phaseGameOver:
			next, cmd = m.updateGameOver(key)
		case phaseConfig:
			return m.updateConfig(msg)
		default:
			return m, nil
		}
		if next.(Model).done {
			return next, tea.Quit
		}
		return next, cmd
	}

	return m, nil
}

func (m Model) updateDifficulty(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1":
		return m.startGame(Beginner)
	case "2":
		return m.startGame(Intermediate)
	case "3":
		return m.startGame(Expert)
	case "c":
		m.phase = phaseConfig
		m.configUI = engineconfig.NewModel(m.engine)
		return m, nil
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

func (m Model) updateConfig(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configUI, cmd = m.configUI.Update(msg)
	if m.configUI.Done() {
		m.phase = phaseDifficulty
	}
	return m, cmd
}

func (m Model) startGame(diff Difficulty) (tea.Model, tea.Cmd) {
	m.diff = diff
	m.game = NewGame(diff)
	m.phase = phasePlaying
	m.cursorRow = 0
	m.cursorCol = 0
	m.elapsed = 0
	m.ticking = false
	return m, nil
}

func (m Model) updatePlaying(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < m.game.Rows-1 {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < m.game.Cols-1 {
			m.cursorCol++
		}
	case "enter", " ":
		if m.game.State != Playing {
			return m, nil
		}
		wasFirstClick := m.game.FirstClick
		m.game.Reveal(m.cursorRow, m.cursorCol)
		if wasFirstClick && !m.game.FirstClick {
			m.ticking = true
			if m.game.State == Playing {
				return m, tickCmd()
			}
		}
		if m.game.State != Playing {
			m.ticking = false
			m.phase = phaseGameOver
			m.recordGameEnd()
		}
	case "f":
		if m.game.State == Playing {
			m.game.ToggleFlag(m.cursorRow, m.cursorCol)
		}
	case "s":
		if m.game.State == Playing {
			return m.autoSolveStep()
		}
	case "a":
		if m.game.State != Playing {
			return m, nil
		}
		m.autoSolve = !m.autoSolve
		if m.autoSolve {
			return m.autoSolveStep()
		}
		return m, nil
	case "p":
		m.readout = m.probabilityReadout()
	case "n":
		return m.startGame(m.diff)
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

// autoSolveStep asks the engine for one decision, applies it to the live
// board, moves the cursor onto the affected cell, and records the move,
// distinguishing rule/probability-backed decisions from forced random
// seed moves in the stats store's evaluable-move count. It reschedules itself while
// auto-solve is left running.
func (m Model) autoSolveStep() (tea.Model, tea.Cmd) {
	if m.game.State != Playing {
		m.autoSolve = false
		return m, nil
	}

	snap := m.game.Snapshot()
	start := time.Now()
	decision, err := solver.Decide(snap, m.game.TotalMines, m.rng, m.engine.Config.Params(), m.logger)
	elapsed := time.Since(start)
	if err != nil {
		m.readout = fmt.Sprintf("engine error: %v", err)
		m.autoSolve = false
		return m, nil
	}

	m.stats.RecordMove(difficultyName(m.diff), decision.Evaluable, elapsed)
	m.readout = "engine move: " + decision.Action.String()

	if decision.Action.Kind == solver.NoMove {
		m.autoSolve = false
		return m, nil
	}

	m.game.Apply(snap, decision.Action)
	m.cursorRow, m.cursorCol = decision.Action.Cell.Y, decision.Action.Cell.X

	var cmds []tea.Cmd
	if m.game.State == Playing && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tickCmd())
	}

	if m.game.State != Playing {
		m.ticking = false
		m.autoSolve = false
		m.phase = phaseGameOver
		m.recordGameEnd()
		return m, nil
	}

	if !m.autoSolve {
		return m, tea.Batch(cmds...)
	}

	interval := m.engine.Config.TickIntervalMs()
	if interval == 0 {
		m.autoSolve = false
		return m, tea.Batch(cmds...)
	}
	cmds = append(cmds, autoSolveTickCmd(interval))
	return m, tea.Batch(cmds...)
}

// probabilityReadout computes a fresh mine-probability table for the
// current board and formats it for the debug panel.
func (m Model) probabilityReadout() string {
	snap := m.game.Snapshot()
	prob, err := solver.Calculate(snap, m.game.TotalMines, m.rng, m.engine.Config.Params(), m.logger)
	if err != nil {
		return fmt.Sprintf("probability error: %v", err)
	}
	return prob.FormatReadout(10)
}

// recordGameEnd persists the outcome of the just-finished game to the
// stats store, best-effort.
func (m Model) recordGameEnd() {
	m.stats.RecordGameEnd(difficultyName(m.diff), m.game.State == Won)
	_ = m.stats.Save()
	_ = m.engine.Save()
}

func (m Model) updateGameOver(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n":
		return m.startGame(m.diff)
	case "d":
		m.phase = phaseDifficulty
		m.game = nil
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

// View renders the complete game screen.
func (m Model) View() string {
	switch m.phase {
	case phaseDifficulty:
		return m.viewDifficulty()
	case phasePlaying, phaseGameOver:
		return m.viewGame()
	case phaseConfig:
		return m.configUI.View()
	}
	return ""
}

func (m Model) viewDifficulty() string {
	var sections []string

	sections = append(sections,
		titleStyle.Render("M I N E S W E E P E R"),
		"",
		headerStyle.Render("Select Difficulty"),
		"",
		optionStyle.Render("  [1]  Beginner      9 x 9    10 mines"),
		optionStyle.Render("  [2]  Intermediate  16 x 16  40 mines"),
		optionStyle.Render("  [3]  Expert        16 x 30  99 mines"),
		"",
		footerStyle.Render("C Engine Tuning | Q Quit"),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewGame() string {
	if m.game == nil {
		return ""
	}

	var sections []string

	// Title with difficulty
	diffNames := map[Difficulty]string{
		Beginner:     "Beginner",
		Intermediate: "Intermediate",
		Expert:       "Expert",
	}
	title := titleStyle.Render(fmt.Sprintf("Minesweeper - %s", diffNames[m.diff]))
	sections = append(sections, title, "")

	// Status bar
	remaining := m.game.TotalMines - m.game.FlagsUsed
	status := statusStyle.Render(fmt.Sprintf("Mines: %d  Flags: %d  Time: %d", remaining, m.game.FlagsUsed, m.elapsed))
	sections = append(sections, status, "",
		m.renderGrid(), "",
	)

	// Game over message
	if m.phase == phaseGameOver {
		switch m.game.State {
		case Won:
			sections = append(sections, winStyle.Render("YOU WIN!"))
		case Lost:
			sections = append(sections, loseStyle.Render("GAME OVER - Mine hit!"))
		}
		sections = append(sections, "")
	}

	if m.phase == phasePlaying && m.readout != "" {
		sections = append(sections, readoutStyle.Render(m.readout), "")
	}

	// Footer
	var footer string
	switch {
	case m.phase == phaseGameOver:
		footer = "N New Game | D Difficulty | Q Quit"
	case m.autoSolve:
		footer = "Arrows Move | Enter Reveal | F Flag | S Step | A Stop Auto-Solve | P Probabilities | N New | Q Quit"
	default:
		footer = "Arrows Move | Enter Reveal | F Flag | S Step | A Auto-Solve | P Probabilities | N New | Q Quit"
	}
	sections = append(sections, footerStyle.Render(footer))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderGrid() string {
	var rows []string

	for r := 0; r < m.game.Rows; r++ {
		var cells []string
		for c := 0; c < m.game.Cols; c++ {
			cell := m.game.Grid[r][c]
			isCursor := r == m.cursorRow && c == m.cursorCol

			text := m.renderCell(cell)
			style := m.cellStyle(cell, isCursor)
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderCell(cell Cell) string {
	switch cell.State {
	case Hidden:
		return "##"
	case Flagged:
		return "FF"
	case Revealed:
		if cell.Mine {
			return "* "
		}
		if cell.Adjacent == 0 {
			return "  "
		}
		return fmt.Sprintf("%d ", cell.Adjacent)
	}
	return "##"
}

func (m Model) cellStyle(cell Cell, isCursor bool) lipgloss.Style {
	base := lipgloss.NewStyle().Width(2)

	if isCursor && m.phase == phasePlaying {
		return base.
			Background(lipgloss.Color("#444444")).
			Bold(true).
			Foreground(m.cellForeground(cell))
	}

	return base.Foreground(m.cellForeground(cell))
}

func (m Model) cellForeground(cell Cell) lipgloss.Color {
	switch cell.State {
	case Hidden:
		return lipgloss.Color("#808080")
	case Flagged:
		return lipgloss.Color("#FF0000")
	case Revealed:
		if cell.Mine {
			return lipgloss.Color("#FF0000")
		}
		return numberColor(cell.Adjacent)
	}
	return lipgloss.Color("#808080")
}

func numberColor(n int) lipgloss.Color {
	switch n {
	case 1:
		return lipgloss.Color("#0000FF")
	case 2:
		return lipgloss.Color("#008200")
	case 3:
		return lipgloss.Color("#FF0000")
	case 4:
		return lipgloss.Color("#000084")
	case 5:
		return lipgloss.Color("#840000")
	case 6:
		return lipgloss.Color("#008284")
	case 7:
		return lipgloss.Color("#840084")
	case 8:
		return lipgloss.Color("#808080")
	default:
		return lipgloss.Color("#FFFFFF")
	}
}

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E632"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00E632"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	readoutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AFFF"))
)
