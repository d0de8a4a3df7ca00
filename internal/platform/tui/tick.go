// Package tui provides the Bubble Tea integration for tui-sokoban.
// It maps keys to engine commands, draws the board and hosts SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays on screen.
const statusTimeout = 2 * time.Second

// statusExpiredMsg clears the status line it was scheduled for.
type statusExpiredMsg struct {
	seq int
}

// expireStatusCmd schedules the status line with sequence number seq to be cleared.
func expireStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
