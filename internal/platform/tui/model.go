package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-gym/internal/config"
	"github.com/vovakirdan/flappy-gym/internal/env"
	"github.com/vovakirdan/flappy-gym/internal/render"
	"github.com/vovakirdan/flappy-gym/internal/storage"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model that lets a human play the environment.
type Model struct {
	environment *env.Env
	cfg         config.Config
	store       *storage.Store

	keys keyMap
	help help.Model

	frame       *render.Frame
	seed        int64
	score       int
	steps       int
	totalReward float64
	gameOver    bool

	pendingJump bool
	scoreSaved  bool
	quitting    bool

	width  int
	height int
}

// NewModel creates a play model. A zero seed is replaced with time
// entropy so each session is fresh.
func NewModel(e *env.Env, store *storage.Store, cfg config.Config, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return Model{
		environment: e,
		cfg:         cfg,
		store:       store,
		keys:        defaultKeyMap(),
		help:        help.New(),
		seed:        seed,
		width:       80,
		height:      24,
	}
}

// Init starts the episode and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startMsg{} },
		tickCmd(m.cfg.Screen.FPS),
	)
}

// startMsg triggers the initial Reset inside the program loop, where
// the resulting state can be stored on the model.
type startMsg struct{}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m.reset(m.seed)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// reset starts a new episode with the given seed.
func (m Model) reset(seed int64) (tea.Model, tea.Cmd) {
	obs, info, err := m.environment.Reset(&env.ResetOptions{Seed: &seed})
	if err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	m.seed = seed
	m.frame = obs
	m.score = info.Score
	m.steps = 0
	m.totalReward = 0
	m.gameOver = false
	m.scoreSaved = false
	m.pendingJump = false
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		if !m.gameOver {
			m.pendingJump = true
		}

	case key.Matches(msg, m.keys.Restart):
		if m.gameOver {
			return m.reset(time.Now().UnixNano())
		}

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameOver || m.frame == nil {
		// Keep ticking so a restart resumes cleanly.
		return m, tickCmd(m.cfg.Screen.FPS)
	}

	action := env.ActionNone
	if m.pendingJump {
		action = env.ActionJump
		m.pendingJump = false
	}

	res, err := m.environment.Step(action)
	if err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	m.frame = res.Observation
	m.score = res.Info.Score
	m.steps++
	m.totalReward += res.Reward

	if res.Terminated {
		m.gameOver = true
		m.saveEpisode()
	}

	return m, tickCmd(m.cfg.Screen.FPS)
}

// saveEpisode records the finished episode once.
func (m *Model) saveEpisode() {
	if m.scoreSaved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveEpisode(storage.Episode{
		Seed:        m.seed,
		Policy:      "human",
		Score:       m.score,
		Steps:       m.steps,
		TotalReward: m.totalReward,
	})
	m.scoreSaved = true
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() {
	if m.frame == nil {
		return
	}

	dir := filepath.Join(os.Getenv("HOME"), ".flappygym", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.png", time.Now().Format("20060102_150405")))
	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer file.Close()
	//nolint:errcheck // Best-effort save
	m.frame.EncodePNG(file)
}

// View renders the frame with a status line and help footer.
func (m Model) View() string {
	if m.quitting || m.frame == nil {
		return ""
	}

	status := statusStyle.Render(fmt.Sprintf(" Score: %d   Reward: %+.2f   Steps: %d ",
		m.score, m.totalReward, m.steps))
	if m.gameOver {
		status += overStyle.Render("  GAME OVER - press r to restart")
	}

	// Reserve one row for the status line and one for help.
	frameRows := m.height - 2
	if frameRows < 1 {
		frameRows = 1
	}

	return status + "\n" + FrameView(m.frame, m.width, frameRows) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for interactive play.
func Run(e *env.Env, store *storage.Store, cfg config.Config, seed int64) error {
	p := tea.NewProgram(
		NewModel(e, store, cfg, seed),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
