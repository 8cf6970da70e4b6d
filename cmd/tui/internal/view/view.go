package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// PrimaryActionMsg is delivered to the active screen when the global header
// action fires. Screens that registered an action open their add form on it.
type PrimaryActionMsg struct{}
