package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/app/components"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
)

type LibraryScreen struct {
	controller *services.LibraryController
	bookList   *components.BookList
	notice     string
	width      int
	height     int
	err        error
}

func NewLibraryScreen(controller *services.LibraryController) *LibraryScreen {
	return &LibraryScreen{
		controller: controller,
		bookList:   components.NewBookList(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

func (s *LibraryScreen) refresh() {
	s.bookList.SetItems(s.controller.Books())
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.bookList.Width = msg.Width - 4
		s.bookList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.bookList.Prev()
		case "down", "j":
			s.bookList.Next()
		case "r":
			s.refresh()
		case "d":
			selected := s.bookList.Selected()
			if selected == nil {
				return s, nil
			}
			title := selected.Title
			removed, err := s.controller.Remove(title)
			s.err = err
			if err == nil {
				s.notice = fmt.Sprintf("Removed %d book(s) titled %q", removed, title)
			}
			return s, libraryChanged
		case "s", "enter":
			selected := s.bookList.Selected()
			if selected != nil {
				title := selected.Title
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "summary", Data: title}
				}
			}
		}
	}

	return s, nil
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📚 Library (%d books)", len(s.bookList.Items)))

	var status string
	if s.err != nil {
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.notice != "" {
		status = styles.StatusRead.Render(s.notice) + "\n\n"
	}

	help := styles.HelpStyle.Render(
		"↑/k: up • ↓/j: down • s/enter: summary • d: delete • r: refresh • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, status, s.bookList.View(), help)
}
