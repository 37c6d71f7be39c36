package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the interactive placement browser.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "inspect <hierarchy.json>",
		Short: "Browse label placements interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.placeLabels(cmd.Context(), args[0], &flags)
			if err != nil {
				return err
			}
			if len(result.Placements) == 0 {
				printInfo("No labelled sectors")
				return nil
			}
			p := tea.NewProgram(newPlacementModel(result), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// PlacementModel - Interactive placement browser
// =============================================================================

// PlacementModel is the bubbletea model listing placements with the detail
// of the one under the cursor.
type PlacementModel struct {
	Placements []label.Placement
	Fill       func(token string) string
	Cursor     int
	Offset     int
	Height     int
}

func newPlacementModel(result *pipeline.Result) PlacementModel {
	return PlacementModel{
		Placements: result.Placements,
		Fill:       result.Registry.Color,
		Height:     10,
	}
}

func (m PlacementModel) Init() tea.Cmd {
	return nil
}

func (m PlacementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Placements)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		// leave room for the header and the detail pane
		m.Height = msg.Height - 14
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m PlacementModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Label Placements"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Placements))
	for i := m.Offset; i < end; i++ {
		p := m.Placements[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-3d %-5s %s", cursor, p.Index, p.Mode, displayText(p))
		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case p.Suppressed:
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Placements))))
	b.WriteString("\n\n")

	if len(m.Placements) > 0 {
		m.writeDetail(&b, m.Placements[m.Cursor])
	}
	return b.String()
}

func (m PlacementModel) writeDetail(b *strings.Builder, p label.Placement) {
	fill := ""
	if m.Fill != nil {
		fill = m.Fill(p.Token)
	}
	row := func(k, v string) {
		fmt.Fprintf(b, "%s %s\n", lipgloss.NewStyle().Foreground(colorGray).Width(8).Render(k), v)
	}
	row("feature", StyleHighlight.Render(p.Name))
	row("token", p.Token)
	row("fill", swatch(fill)+" "+fill)
	row("text", fmt.Sprintf("%q", p.Text))
	row("size", fmt.Sprintf("%.1fpx", p.FontSize))
	row("span", fmt.Sprintf("x %.4f..%.4f  y %.0f..%.0f", p.Rect.X0, p.Rect.X1, p.Rect.Y0, p.Rect.Y1))
	if f := placementFlags(p); f != "" {
		row("flags", StyleWarning.Render(f))
	}
	b.WriteString("\n")
	writePlacementPaths(b, p)
}
