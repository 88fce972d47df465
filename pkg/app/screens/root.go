package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
)

type screenType int

const (
	libraryView screenType = iota
	addView
	searchView
	statsView
	summaryView
)

var tabNames = []string{"Library", "Add", "Search", "Stats", "Summary"}

// SwitchScreenMsg asks the root screen to change tabs. Data carries an
// optional book title for the summary tab.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

// libraryChangedMsg is sent after the collection was modified.
type libraryChangedMsg struct{}

func libraryChanged() tea.Msg {
	return libraryChangedMsg{}
}

type RootScreen struct {
	controller *services.LibraryController

	currentView screenType
	library     *LibraryScreen
	add         *AddScreen
	search      *SearchScreen
	stats       *StatsScreen
	summary     *SummaryScreen

	width  int
	height int
}

func NewRootScreen(controller *services.LibraryController) *RootScreen {
	return &RootScreen{
		controller:  controller,
		currentView: libraryView,
		library:     NewLibraryScreen(controller),
		add:         NewAddScreen(controller),
		search:      NewSearchScreen(controller),
		stats:       NewStatsScreen(controller),
		summary:     NewSummaryScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.library.Init()
}

// capturingText reports whether the active screen is reading free text, in
// which case "q" is typed rather than quitting.
func (r *RootScreen) capturingText() bool {
	switch r.currentView {
	case addView:
		return true
	case searchView:
		return r.search.input.Focused()
	case summaryView:
		return r.summary.input.Focused()
	}
	return false
}

func (r *RootScreen) switchTo(view screenType) tea.Cmd {
	r.currentView = view
	switch view {
	case libraryView:
		return r.library.Init()
	case addView:
		return r.add.Init()
	case searchView:
		return r.search.Init()
	case statsView:
		return r.stats.Init()
	case summaryView:
		return r.summary.Init()
	}
	return nil
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// Every screen lays itself out from the window size.
		r.library.Update(msg)
		r.add.Update(msg)
		r.search.Update(msg)
		r.stats.Update(msg)
		r.summary.Update(msg)
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			r.summary.Close()
			return r, tea.Quit
		case "q":
			if !r.capturingText() {
				r.summary.Close()
				return r, tea.Quit
			}
		case "tab":
			return r, r.switchTo((r.currentView + 1) % screenType(len(tabNames)))
		case "shift+tab":
			return r, r.switchTo((r.currentView + screenType(len(tabNames)) - 1) % screenType(len(tabNames)))
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "library":
			return r, r.switchTo(libraryView)
		case "stats":
			return r, r.switchTo(statsView)
		case "summary":
			if title, ok := msg.Data.(string); ok {
				r.summary.SetTitle(title)
			}
			cmd := r.switchTo(summaryView)
			if _, ok := msg.Data.(string); ok {
				return r, tea.Batch(cmd, r.summary.fetch())
			}
			return r, cmd
		}
		return r, nil

	case libraryChangedMsg:
		r.library.refresh()
		r.search.refresh()
		return r, nil

	case summaryMsg:
		_, cmd := r.summary.Update(msg)
		return r, cmd

	case breakdownMsg:
		_, cmd := r.stats.Update(msg)
		return r, cmd
	}

	var cmd tea.Cmd
	switch r.currentView {
	case libraryView:
		_, cmd = r.library.Update(msg)
	case addView:
		_, cmd = r.add.Update(msg)
	case searchView:
		_, cmd = r.search.Update(msg)
	case statsView:
		_, cmd = r.stats.Update(msg)
	case summaryView:
		_, cmd = r.summary.Update(msg)
	}
	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case libraryView:
		content = r.library.View()
	case addView:
		content = r.add.View()
	case searchView:
		content = r.search.View()
	case statsView:
		content = r.stats.View()
	case summaryView:
		content = r.summary.View()
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if screenType(i) == r.currentView {
			tabs[i] = styles.ActiveTabStyle.Render(name)
		} else {
			tabs[i] = styles.InactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
