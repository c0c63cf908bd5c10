package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option is one selectable entry in a Selector.
type Option struct {
	Label       string
	Description string
	Value       string
}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	unselectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultSelectorKeyMap() selectorKeyMap {
	return selectorKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q/esc", "quit")),
	}
}

// Selector is a single-choice list model.
type Selector struct {
	title     string
	options   []Option
	cursor    int
	selected  int
	keyMap    selectorKeyMap
	submitted bool
	cancelled bool
}

// NewSelector creates a selector over the given options.
func NewSelector(title string, options []Option) Selector {
	return Selector{
		title:    title,
		options:  options,
		selected: -1,
		keyMap:   defaultSelectorKeyMap(),
	}
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.keyMap.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, s.keyMap.Down):
			if s.cursor < len(s.options)-1 {
				s.cursor++
			}
		case key.Matches(msg, s.keyMap.Select):
			s.selected = s.cursor
			s.submitted = true
			return s, tea.Quit
		case key.Matches(msg, s.keyMap.Quit):
			s.cancelled = true
			return s, tea.Quit
		}
	}
	return s, nil
}

// View implements tea.Model.
func (s Selector) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.title))
	b.WriteString("\n\n")

	for i, opt := range s.options {
		style := unselectedStyle
		symbol := "○"
		cursor := "  "
		if i == s.cursor {
			style = selectedStyle
			symbol = "●"
			cursor = ""
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(symbol + " " + opt.Label))
		b.WriteString("\n")
		if opt.Description != "" {
			b.WriteString(descriptionStyle.Render(opt.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("\n↑/↓ navigate • enter select • q quit"))
	return b.String()
}

// SelectedOption returns the chosen option, or nil if none was chosen.
func (s Selector) SelectedOption() *Option {
	if s.selected >= 0 && s.selected < len(s.options) {
		return &s.options[s.selected]
	}
	return nil
}

// Cancelled reports whether the user quit without choosing.
func (s Selector) Cancelled() bool {
	return s.cancelled
}

// Select runs a selector to completion and returns the chosen option.
// Returns nil (and no error) when the user cancels.
func Select(title string, options []Option) (*Option, error) {
	model, err := tea.NewProgram(NewSelector(title, options)).Run()
	if err != nil {
		return nil, fmt.Errorf("selection failed: %w", err)
	}
	final, ok := model.(Selector)
	if !ok || final.Cancelled() {
		return nil, nil
	}
	return final.SelectedOption(), nil
}
