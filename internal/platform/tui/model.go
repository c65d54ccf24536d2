package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/wowjack/bevy-pong-clone/internal/config"
	"github.com/wowjack/bevy-pong-clone/internal/core"
	"github.com/wowjack/bevy-pong-clone/internal/games/pong"
)

// Model is the Bubble Tea model running a pong game in the terminal.
type Model struct {
	game          *pong.Game
	screen        *core.Screen
	geometry      *terminalGeometry
	viewport      pong.Viewport
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	tickRate      int
	screenshotDir string

	lastTick time.Time
	paused   bool
	quitting bool
	err      error
}

// NewModel creates the model for a terminal of cols x rows cells and starts
// the game on it. Starting fails with pong.ErrNoGeometry if the terminal has
// no size.
func NewModel(game *pong.Game, cfg config.PongConfig, cols, rows int, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vp := pong.Viewport{CellWidth: cfg.Terminal.CellWidth, CellHeight: cfg.Terminal.CellHeight}
	geometry := &terminalGeometry{viewport: vp}
	geometry.resize(cols, rows)

	if err := game.Start(geometry); err != nil {
		return Model{}, err
	}

	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".pong", "screenshots")
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cols, rows),
		geometry:      geometry,
		viewport:      vp,
		keys:          DefaultKeyMap(),
		help:          plainHelp(),
		logger:        logger,
		tickRate:      cfg.Runtime.TickRate,
		screenshotDir: dir,
	}, nil
}

// plainHelp returns a help model without ANSI styling so its output can be
// written into screen cells.
func plainHelp() help.Model {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}
	return m, nil
}

// handleResize records the new terminal size. The playfield follows on the
// next reset; walls and goals keep their size until then.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.geometry.resize(msg.Width, msg.Height)
	m.screen.Resize(msg.Width, msg.Height)
	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick steps the game by the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if m.paused {
		return m, tickCmd(m.tickRate)
	}

	if _, err := m.game.Step(dt); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", errors.New("tui: screenshot: no home directory")
	}

	m.draw()

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// draw renders the game and, while paused, the pause overlay.
func (m Model) draw() {
	m.game.Render(m.screen, m.viewport)
	if m.paused {
		m.drawPaused()
	}
}

func (m Model) drawPaused() {
	hint := m.help.ShortHelpView(m.keys.ShortHelp())
	title := "PAUSED"

	w := core.Clamp(core.Max(len([]rune(title)), len([]rune(hint)))+4, 1, m.screen.Width())
	h := 5
	r := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)

	m.screen.DrawRect(r, ' ', core.ColorDefault)
	m.screen.DrawBox(r)
	m.screen.DrawTextColored(r.X+(w-len(title))/2, r.Y+1, title, core.ColorYellow)
	m.screen.DrawText(r.X+2, r.Y+3, hint)
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}
