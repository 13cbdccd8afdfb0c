package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brewlab/mixtree/pkg/recipe"
)

// viewModel is the bubbletea model for the interactive tree viewer. The
// cursor indexes into the view's flattened node slice, which is rebuilt
// after every toggle.
type viewModel struct {
	drug     string
	view     *recipe.View
	cursor   int
	offset   int
	height   int
	detailed bool
}

// newViewModel creates a viewer for an already resolved view.
func newViewModel(drug string, view *recipe.View, detailed bool) viewModel {
	return viewModel{
		drug:     drug,
		view:     view,
		height:   20,
		detailed: detailed,
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.view.Nodes)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.toggleCursor()
		case "e":
			m.view.SetAll(true)
			m.clampCursor()
		case "c":
			m.view.SetAll(false)
			m.clampCursor()
		}
		m.scroll()
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
		m.scroll()
	}
	return m, nil
}

// toggleCursor toggles the node under the cursor and keeps the cursor on
// it. Ids are reassigned on every toggle, but the flattening is pre-order,
// so every node above the cursor keeps its id and the cursor stays valid.
func (m *viewModel) toggleCursor() {
	if m.cursor >= len(m.view.Nodes) {
		return
	}
	m.view.Toggle(m.view.Nodes[m.cursor].ID)
	m.clampCursor()
}

func (m *viewModel) clampCursor() {
	if m.cursor >= len(m.view.Nodes) {
		m.cursor = len(m.view.Nodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// scroll keeps the cursor inside the visible window.
func (m *viewModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.drug))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ toggle  e expand all  c collapse all  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.view.Nodes) {
		end = len(m.view.Nodes)
	}

	for i := m.offset; i < end; i++ {
		node := m.view.Nodes[i]

		cursor := "  "
		if i == m.cursor {
			cursor = StyleHighlight.Render("▸ ")
		}

		indent := strings.Repeat("  ", node.Depth)
		b.WriteString(cursor + indent + m.nodeLine(node, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.view.Nodes))))

	return b.String()
}

// nodeLine formats one row, marking expandable and collapsed nodes.
func (m viewModel) nodeLine(node recipe.FlatNode, current bool) string {
	marker := "  "
	switch {
	case node.HasHidden:
		marker = StyleHighlight.Render("+ ")
	case node.Source.HasChildren():
		marker = StyleDim.Render("- ")
	}

	label := node.Label
	switch node.Role {
	case recipe.RoleRoot:
		label = StyleTitle.Render(label)
	case recipe.RoleCircular:
		label = styleCircular.Render(label) + " " + StyleDim.Render("(circular)")
	case recipe.RoleLeaf:
		label = styleLeaf.Render(label)
	default:
		if current {
			label = StyleValue.Render(label)
		}
	}

	if m.detailed && node.Attrs != nil {
		var parts []string
		if node.Attrs.Price > 0 {
			parts = append(parts, fmt.Sprintf("$%.0f", node.Attrs.Price))
		}
		if node.Attrs.Effects != "" {
			parts = append(parts, node.Attrs.Effects)
		}
		if len(parts) > 0 {
			label += " " + StyleDim.Render("("+strings.Join(parts, " · ")+")")
		}
	}

	return marker + label
}
