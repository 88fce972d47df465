package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/app/components"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
)

type SearchScreen struct {
	controller *services.LibraryController
	input      textinput.Model
	results    *components.BookList
	fuzzy      bool
	searched   bool
	width      int
	height     int
}

func NewSearchScreen(controller *services.LibraryController) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search by title or author..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	results := components.NewBookList()
	results.EmptyMessage = "No matching books found"

	return &SearchScreen{
		controller: controller,
		input:      ti,
		results:    results,
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-runs the last query against the current collection.
func (s *SearchScreen) refresh() {
	if s.searched {
		s.performSearch()
	}
}

func (s *SearchScreen) performSearch() {
	query := s.input.Value()
	if s.fuzzy {
		s.results.SetItems(s.controller.FuzzySearch(query))
	} else {
		s.results.SetItems(s.controller.Search(query))
	}
	s.searched = true
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.results.Width = msg.Width - 4
		s.results.Height = msg.Height - 16
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				s.performSearch()
				if len(s.results.Items) > 0 {
					s.input.Blur()
				}
				return s, nil
			}
			if selected := s.results.Selected(); selected != nil {
				title := selected.Title
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "summary", Data: title}
				}
			}

		case "ctrl+f":
			s.fuzzy = !s.fuzzy
			if s.searched {
				s.performSearch()
			}
			return s, nil

		case "esc":
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}
			return s, cmd

		case "up", "k":
			if !s.input.Focused() {
				s.results.Prev()
				return s, nil
			}

		case "down", "j":
			if !s.input.Focused() {
				s.results.Next()
				return s, nil
			}
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	mode := "substring"
	if s.fuzzy {
		mode = "fuzzy"
	}
	header := styles.TitleStyle.Render("🔍 Search Books")
	modeLine := styles.MutedStyle.Render(fmt.Sprintf("Mode: %s", mode))

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var resultsView string
	if s.searched {
		resultsView = styles.SubtitleStyle.Render(fmt.Sprintf("Found %d results:", len(s.results.Items)))
		resultsView += "\n\n" + s.results.View()
	}

	help := styles.HelpStyle.Render(
		"enter: search/summary • esc: switch focus • ctrl+f: toggle fuzzy • ↑/k ↓/j: navigate • tab: switch view",
	)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n%s", header, modeLine, inputView, resultsView, help)
}
