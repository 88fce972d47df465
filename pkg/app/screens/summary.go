package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
	"github.com/kerbaras/bookshelf/pkg/sources"
)

// SummaryScreen looks up a book description. ctrl+n and ctrl+p cycle the
// input through the titles in the library.
type SummaryScreen struct {
	controller *services.LibraryController
	ctx        context.Context
	cancel     context.CancelFunc
	input      textinput.Model
	titleIndex int
	fetching   bool
	result     *sources.Summary
	width      int
	height     int
}

type summaryMsg struct {
	summary sources.Summary
}

func NewSummaryScreen(controller *services.LibraryController) *SummaryScreen {
	ti := textinput.New()
	ti.Placeholder = "Book title..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return &SummaryScreen{
		controller: controller,
		ctx:        ctx,
		cancel:     cancel,
		input:      ti,
		titleIndex: -1,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SummaryScreen) SetTitle(title string) {
	s.input.SetValue(title)
	s.input.CursorEnd()
	s.result = nil
}

func (s *SummaryScreen) cycleTitle(step int) {
	titles := s.controller.Titles()
	if len(titles) == 0 {
		return
	}
	s.titleIndex = (s.titleIndex + step + len(titles)) % len(titles)
	s.SetTitle(titles[s.titleIndex])
}

// fetch looks up the current input. A blank title is still sent; the API
// answers it like any other query.
func (s *SummaryScreen) fetch() tea.Cmd {
	title := strings.TrimSpace(s.input.Value())
	s.fetching = true
	s.result = nil
	controller, ctx := s.controller, s.ctx
	return func() tea.Msg {
		return summaryMsg{summary: controller.Summary(ctx, title)}
	}
}

// Close cancels any lookup still in flight.
func (s *SummaryScreen) Close() {
	s.cancel()
}

func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case summaryMsg:
		s.fetching = false
		result := msg.summary
		s.result = &result
		return s, nil

	case tea.KeyMsg:
		if s.fetching {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.fetch()
		case "ctrl+n":
			s.cycleTitle(1)
			return s, nil
		case "ctrl+p":
			s.cycleTitle(-1)
			return s, nil
		case "esc":
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}
			return s, cmd
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *SummaryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📖 Book Summary")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var body string
	switch {
	case s.fetching:
		body = styles.StatusPending.Render("Fetching summary...")
	case s.result != nil:
		style := styles.TextStyle
		switch s.result.Status {
		case sources.SummaryFailed, sources.SummaryMissingCredentials:
			style = styles.StatusError
		case sources.SummaryNoDescription, sources.SummaryNotFound:
			style = styles.MutedStyle
		}
		content := fmt.Sprintf("%s\n\n%s",
			styles.SubtitleStyle.Render(s.result.Title),
			style.Render(s.result.String()))
		card := styles.CardStyle
		if s.result.OK() {
			card = styles.ActiveCardStyle
		}
		body = card.Width(s.width - 4).Render(content)
	}

	help := styles.HelpStyle.Render(
		"enter: fetch • ctrl+n/ctrl+p: library titles • esc: toggle focus • tab: switch view • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", header, inputView, body, help)
}
