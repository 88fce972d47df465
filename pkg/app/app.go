package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/app/screens"
	"github.com/kerbaras/bookshelf/pkg/services"
)

type App struct {
	controller *services.LibraryController
}

// NewApp returns the TUI for an already opened controller.
func NewApp(controller *services.LibraryController) *App {
	return &App{controller: controller}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
