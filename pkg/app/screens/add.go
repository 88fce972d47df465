package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldYear
	fieldGenre
	fieldRead
)

var addFieldLabels = []string{"Title", "Author", "Year", "Genre", "Read (yes/no)"}

// AddScreen is the new-book form.
type AddScreen struct {
	controller *services.LibraryController
	inputs     []textinput.Model
	focus      int
	fieldErrs  map[string]string
	notice     string
	width      int
	height     int
	err        error
}

func NewAddScreen(controller *services.LibraryController) *AddScreen {
	placeholders := []string{"Dune", "Frank Herbert", "1965", "Science Fiction", "no"}

	inputs := make([]textinput.Model, len(addFieldLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		ti.Width = 50
		inputs[i] = ti
	}
	inputs[fieldYear].CharLimit = 4
	inputs[fieldRead].CharLimit = 5
	inputs[fieldTitle].Focus()

	return &AddScreen{
		controller: controller,
		inputs:     inputs,
	}
}

func (s *AddScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *AddScreen) setFocus(i int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (i + len(s.inputs)) % len(s.inputs)
	return s.inputs[s.focus].Focus()
}

func (s *AddScreen) reset() {
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	s.setFocus(fieldTitle)
}

func (s *AddScreen) input() services.BookInput {
	return services.BookInput{
		Title:  s.inputs[fieldTitle].Value(),
		Author: s.inputs[fieldAuthor].Value(),
		Year:   s.inputs[fieldYear].Value(),
		Genre:  s.inputs[fieldGenre].Value(),
		Read:   s.inputs[fieldRead].Value(),
	}
}

func (s *AddScreen) submit() tea.Cmd {
	s.notice, s.err, s.fieldErrs = "", nil, nil

	book, err := s.controller.AddInput(s.input())
	if err != nil {
		var inputErr *services.InputError
		if errors.As(err, &inputErr) {
			s.fieldErrs = inputErr.Fields
		} else {
			s.err = err
		}
		return nil
	}

	s.notice = fmt.Sprintf("Added %s", book)
	s.reset()
	return libraryChanged
}

func (s *AddScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			return s, s.setFocus(s.focus - 1)
		case "down":
			return s, s.setFocus(s.focus + 1)
		case "enter":
			if s.focus == len(s.inputs)-1 {
				return s, s.submit()
			}
			return s, s.setFocus(s.focus + 1)
		case "ctrl+s":
			return s, s.submit()
		case "esc":
			s.notice, s.err, s.fieldErrs = "", nil, nil
			s.reset()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AddScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("➕ Add Book"))
	b.WriteString("\n\n")

	for i, label := range addFieldLabels {
		b.WriteString(styles.SubtitleStyle.Render(label))
		b.WriteString("\n")

		inputStyle := styles.InputStyle
		if i == s.focus {
			inputStyle = styles.FocusedInputStyle
		}
		b.WriteString(inputStyle.Render(s.inputs[i].View()))
		b.WriteString("\n")

		key := strings.ToLower(strings.Fields(label)[0])
		if msg, ok := s.fieldErrs[key]; ok {
			b.WriteString(styles.StatusError.Render(fmt.Sprintf("%s %s", label, msg)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if s.err != nil {
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
		b.WriteString("\n")
	} else if s.notice != "" {
		b.WriteString(styles.StatusRead.Render(s.notice))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render(
		"↑/↓: move • enter: next/save • ctrl+s: save • esc: clear • tab: switch view • ctrl+c: quit",
	))

	return b.String()
}
