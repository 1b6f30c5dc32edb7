package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the board view uses. They are built from a
// renderer so the colour profile can be pinned (ASCII in tests).
type Styles struct {
	Header  lipgloss.Style
	Status  lipgloss.Style
	Hidden  lipgloss.Style
	Flag    lipgloss.Style
	Mine    lipgloss.Style
	Numbers [9]lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// numberColors follows the classic palette, index = adjacent mines.
var numberColors = [9]string{
	"#FAFAFA", "#4FC3F7", "#96CEB4", "#FF6B6B", "#7D56F4",
	"#FFA07A", "#48D1CC", "#FAFAFA", "#626262",
}

// NewStyles builds the styles on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#0E7490")).
			Bold(true).
			Padding(0, 1),
		Status: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Flag: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Mine: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Cursor: r.NewStyle().
			Reverse(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
	for i, c := range numberColors {
		s.Numbers[i] = r.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}
	return s
}
