package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// errOpenUnavailable is returned when no browser can be reached, e.g. over SSH
var errOpenUnavailable = errors.New("opening links is not available over SSH, copy the link instead")

const clockTickInterval = 30 * time.Second

// dashboardChangedMsg signals that a poller published a new state
type dashboardChangedMsg struct{}

// clockTickMsg refreshes relative timestamps and rotates the tip
type clockTickMsg struct{}

// actionDoneMsg reports the outcome of an open or copy action
type actionDoneMsg struct {
	err    error
	notice string
}

// waitForChange blocks until a poller notifies or the model is closed
func waitForChange(changes <-chan struct{}, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-changes:
			return dashboardChangedMsg{}
		case <-done:
			return nil
		}
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(clockTickInterval, func(time.Time) tea.Msg {
		return clockTickMsg{}
	})
}
