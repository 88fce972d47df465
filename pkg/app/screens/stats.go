package screens

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/bookshelf/pkg/app/components"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/services"
)

type StatsScreen struct {
	controller *services.LibraryController
	stats      data.Stats
	breakdown  *data.Breakdown
	loading    bool
	width      int
	height     int
	err        error
}

func NewStatsScreen(controller *services.LibraryController) *StatsScreen {
	return &StatsScreen{controller: controller}
}

type breakdownMsg struct {
	breakdown *data.Breakdown
	err       error
}

func (s *StatsScreen) Init() tea.Cmd {
	s.stats = s.controller.Stats()
	s.loading = true

	// Analyze works on a snapshot so the query runs off the update loop.
	books := s.controller.Books()
	return func() tea.Msg {
		breakdown, err := data.Analyze(books)
		return breakdownMsg{breakdown: breakdown, err: err}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.Init()
		}

	case breakdownMsg:
		s.loading = false
		s.breakdown = msg.breakdown
		s.err = msg.err
	}

	return s, nil
}

func (s *StatsScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("📊 Statistics"))
	b.WriteString("\n\n")

	b.WriteString(styles.TextStyle.Render(fmt.Sprintf("Total books: %d", s.stats.Total)))
	b.WriteString("\n")
	b.WriteString(styles.StatusRead.Render(fmt.Sprintf("Books read: %d", s.stats.Read)))
	b.WriteString("\n")
	b.WriteString(styles.StatusUnread.Render(fmt.Sprintf("Books unread: %d", s.stats.Unread())))
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Render(fmt.Sprintf("Percentage read: %s", s.stats.PercentLabel())))
	b.WriteString("\n\n")

	if s.stats.Total > 0 {
		barWidth := s.width - 8
		if barWidth > 60 {
			barWidth = 60
		}
		b.WriteString(components.SimpleProgress(s.stats.Read, s.stats.Total, barWidth))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render("read ▕ unread"))
		b.WriteString("\n\n")
	}

	switch {
	case s.err != nil:
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
		b.WriteString("\n")
	case s.loading:
		b.WriteString(styles.StatusPending.Render("Crunching numbers..."))
		b.WriteString("\n")
	case s.breakdown != nil && s.stats.Total > 0:
		genres := renderBreakdown("Genre", s.breakdown.Genres)
		decades := renderBreakdown("Decade", s.breakdown.Decades)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, genres, "  ", decades))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render("r: refresh • tab: switch view • q: quit"))
	return b.String()
}

func renderBreakdown(label string, groups []data.GroupCount) string {
	headerStyle := lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(label, "Books", "Read")

	for _, g := range groups {
		t.Row(g.Key, strconv.Itoa(g.Total), strconv.Itoa(g.Read))
	}
	return t.String()
}
