package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/config"
	"tasklist/internal/form"
	"tasklist/internal/task"
)

type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Primary lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	OnColor lipgloss.Color
}

var palettes = map[string]palette{
	config.ThemeLight: {
		Text:    lipgloss.Color("#2D3436"),
		Muted:   lipgloss.Color("#636E72"),
		Primary: lipgloss.Color("#0984E3"),
		Border:  lipgloss.Color("#B2BEC3"),
		Success: lipgloss.Color("#28A745"),
		Warning: lipgloss.Color("#E1A100"),
		Error:   lipgloss.Color("#DC3545"),
		OnColor: lipgloss.Color("#FFFFFF"),
	},
	config.ThemeDark: {
		Text:    lipgloss.Color("#DFE6E9"),
		Muted:   lipgloss.Color("#8395A7"),
		Primary: lipgloss.Color("#74B9FF"),
		Border:  lipgloss.Color("#576574"),
		Success: lipgloss.Color("#00B894"),
		Warning: lipgloss.Color("#FDCB6E"),
		Error:   lipgloss.Color("#FF7675"),
		OnColor: lipgloss.Color("#2D3436"),
	},
}

// Styles is the rendered look of one theme.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	FilterBar   lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardNear    lipgloss.Style
	CardOverdue lipgloss.Style
	TaskName    lipgloss.Style
	Muted       lipgloss.Style
	Deadline    lipgloss.Style
	Panel       lipgloss.Style
	FieldActive lipgloss.Style
	Prompt      lipgloss.Style

	priority map[task.Priority]lipgloss.Style
	status   map[task.Status]lipgloss.Style
	notice   map[form.Kind]lipgloss.Style
}

func newStyles(theme string) Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[config.ThemeLight]
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Subtitle:    lipgloss.NewStyle().Italic(true).Foreground(p.Muted),
		FilterBar:   lipgloss.NewStyle().Foreground(p.Text),
		Card:        card,
		CardFocused: card.BorderForeground(p.Primary),
		CardNear:    card.BorderForeground(p.Warning),
		CardOverdue: card.BorderForeground(p.Error),
		TaskName:    lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Muted:       lipgloss.NewStyle().Foreground(p.Muted),
		Deadline:    lipgloss.NewStyle().Foreground(p.Text),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		FieldActive: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Prompt: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Warning).
			Padding(0, 1),

		priority: map[task.Priority]lipgloss.Style{
			task.PriorityHigh:   badge.Background(p.Error).Foreground(p.OnColor),
			task.PriorityMedium: badge.Background(p.Warning).Foreground(lipgloss.Color("#2D3436")),
			task.PriorityLow:    badge.Background(p.Success).Foreground(p.OnColor),
		},
		status: map[task.Status]lipgloss.Style{
			task.StatusTodo:       lipgloss.NewStyle().Foreground(p.Muted),
			task.StatusInProgress: lipgloss.NewStyle().Foreground(p.Primary),
			task.StatusDone:       lipgloss.NewStyle().Foreground(p.Success),
		},
		notice: map[form.Kind]lipgloss.Style{
			form.KindInfo:    lipgloss.NewStyle().Foreground(p.Muted),
			form.KindSuccess: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
			form.KindWarning: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
			form.KindError:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		},
	}
}

func (s Styles) Priority(p task.Priority) lipgloss.Style {
	return s.priority[p]
}

func (s Styles) Status(st task.Status) lipgloss.Style {
	return s.status[st]
}

func (s Styles) Notice(k form.Kind) lipgloss.Style {
	return s.notice[k]
}

// CardFor picks the card frame. Deadline colour wins over focus colour;
// focus is also shown by a thicker border.
func (s Styles) CardFor(p task.Proximity, focused bool) lipgloss.Style {
	style := s.Card
	switch {
	case p == task.Overdue:
		style = s.CardOverdue
	case p == task.DueSoon:
		style = s.CardNear
	case focused:
		style = s.CardFocused
	}
	if focused {
		style = style.Border(lipgloss.ThickBorder())
	}
	return style
}

func statusIcon(s task.Status) string {
	switch s {
	case task.StatusInProgress:
		return "◐"
	case task.StatusDone:
		return "●"
	default:
		return "○"
	}
}
