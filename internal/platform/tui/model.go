package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 4

// PlayOptions configures a PlayModel.
type PlayOptions struct {
	Source  levels.Source
	Store   *storage.Store // nil disables result recording
	Palette Palette
	Config  core.RuntimeConfig
	Logger  *log.Logger // nil discards
	Debug   bool
}

// PlayModel is the Bubble Tea model for one play session.
// It owns a single engine and delivers commands to it one at a time.
type PlayModel struct {
	engine  *sokoban.Engine
	source  levels.Source
	store   *storage.Store
	runID   string
	palette Palette
	screen  *core.Screen
	config  core.RuntimeConfig
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	status    string
	statusSeq int
	best      int              // fewest stored moves for the current level, 0 if none
	summary   []storage.Result // this run's results, filled when the set is finished
	quitting  bool
}

// NewPlayModel creates a model and loads the map set from opts.Source.
func NewPlayModel(opts PlayOptions) (PlayModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg = core.DefaultConfig()
	}

	m := PlayModel{
		engine:  sokoban.NewEngine(sokoban.Options{Debug: opts.Debug, Logger: logger}),
		source:  opts.Source,
		store:   opts.Store,
		runID:   storage.NewRunID(),
		palette: opts.Palette,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = cfg.ScreenW

	if err := m.load(); err != nil {
		return m, err
	}
	m.refreshBest()
	return m, nil
}

func (m *PlayModel) load() error {
	rc, err := m.source.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := m.engine.Load(rc); err != nil {
		return fmt.Errorf("loading %s: %w", m.source.ID, err)
	}
	return nil
}

// Engine exposes the engine driven by this model.
func (m PlayModel) Engine() *sokoban.Engine {
	return m.engine
}

// Init implements tea.Model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleAction runs one semantic command against the engine.
func (m PlayModel) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	if d, ok := directionFor(a); ok {
		return m.handleMove(d)
	}

	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionDebug:
		if m.engine.ToggleDebug() {
			return m.flash("debug on")
		}
		return m.flash("debug off")

	case core.ActionRestart:
		if m.engine.RestartLevel() {
			return m.flash("level restarted")
		}
		return m, nil

	case core.ActionReload:
		if err := m.load(); err != nil {
			m.logger.Error("reload failed", "source", m.source.ID, "error", err)
			return m.flash("reload failed")
		}
		m.runID = storage.NewRunID()
		m.summary = nil
		m.refreshBest()
		return m.flash("map set reloaded")
	}

	return m, nil
}

func (m PlayModel) handleMove(d sokoban.Direction) (tea.Model, tea.Cmd) {
	res := m.engine.HandleDirection(d)
	if !res.LevelComplete {
		return m, nil
	}

	m.saveResult(res)
	m.refreshBest()

	if res.GameComplete {
		m.loadSummary()
		return m.flash("all levels solved")
	}
	return m.flash(fmt.Sprintf("level %d solved in %d moves", res.Level.Index(), res.LevelMoves))
}

// saveResult records a solved level. Storage problems never interrupt play.
func (m *PlayModel) saveResult(res sokoban.MoveResult) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		RunID:      m.runID,
		MapSet:     m.source.ID,
		LevelIndex: res.Level.Index(),
		LevelName:  res.Level.Name(),
		Moves:      res.LevelMoves,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

func (m *PlayModel) refreshBest() {
	m.best = 0
	level := m.engine.CurrentLevel()
	if m.store == nil || level == nil {
		return
	}
	best, ok, err := m.store.LevelBest(m.source.ID, level.Index())
	if err != nil {
		m.logger.Warn("could not read best result", "error", err)
		return
	}
	if ok {
		m.best = best
	}
}

// loadSummary reads back what this run recorded.
func (m *PlayModel) loadSummary() {
	if m.store == nil {
		return
	}
	results, err := m.store.RunResults(m.runID)
	if err != nil {
		m.logger.Warn("could not read run results", "run", m.runID, "error", err)
		return
	}
	m.summary = results
}

// RunID identifies this session's results in the store.
func (m PlayModel) RunID() string {
	return m.runID
}

// Summary returns the results recorded by this run once the set is finished.
func (m PlayModel) Summary() []storage.Result {
	return m.summary
}

// flash shows a status line that clears itself.
func (m PlayModel) flash(text string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	return m, expireStatusCmd(m.statusSeq)
}

// Status returns the current status line.
func (m PlayModel) Status() string {
	return m.status
}

// IsQuitting returns true if the user asked to leave.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := helpStyle.Render(m.help.View(m.keys))

	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(footer), 1))
	m.draw(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// draw paints the HUD and the board into dst.
func (m PlayModel) draw(dst *core.Screen) {
	dst.Clear()
	hud := m.palette.HUD

	title := m.engine.MapSetName()
	if title == "" {
		title = m.source.ID
	}
	dst.DrawTextCentered(0, title, hud)

	level := m.engine.CurrentLevel()
	if level == nil {
		if m.engine.IsGameComplete() {
			m.drawSummary(dst)
			return
		}
		dst.DrawTextCentered(dst.Height()/2, "no levels", hud)
		dst.DrawTextCentered(dst.Height()/2+1, m.status, hud)
		return
	}

	dst.DrawTextCentered(1, fmt.Sprintf("Level %d: %s", level.Index(), level.Name()), hud)

	stats := fmt.Sprintf("moves %d   total %d   goals %d/%d",
		m.engine.LevelMoves(), m.engine.MovesCount(), level.CratesOnDiamonds(), level.Diamonds())
	if m.best > 0 {
		stats += fmt.Sprintf("   best %d", m.best)
	}
	dst.DrawTextCentered(2, stats, hud)

	x0 := (dst.Width() - level.Columns()) / 2
	y0 := hudHeight
	if free := dst.Height() - hudHeight - level.Rows(); free > 0 {
		y0 += free / 2
	}
	DrawBoard(dst, level, m.palette, x0, y0)

	status := m.status
	if m.engine.Debug() {
		keeper := level.KeeperPosition()
		status = fmt.Sprintf("[debug] keeper %s  %s", keeper, status)
	}
	dst.DrawTextCentered(3, status, hud)
}

// drawSummary lists the levels solved in this run below the final tally.
func (m PlayModel) drawSummary(dst *core.Screen) {
	hud := m.palette.HUD
	y := 2
	dst.DrawTextCentered(y, fmt.Sprintf("all levels solved in %d moves", m.engine.MovesCount()), hud)
	y++
	dst.DrawTextCentered(y, m.status, hud)
	y += 2

	for _, r := range m.summary {
		if y >= dst.Height()-1 {
			break
		}
		dst.DrawTextCentered(y, fmt.Sprintf("%3d  %-20s %4d", r.LevelIndex, truncate(r.LevelName, 20), r.Moves), hud)
		y++
	}

	if len(m.summary) > 0 {
		dst.DrawTextCentered(dst.Height()-1, "run "+m.runID, hud)
	}
}

// Run starts the Bubble Tea program for a local play session.
func Run(opts PlayOptions) error {
	model, err := NewPlayModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
