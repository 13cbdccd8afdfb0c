package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brewlab/mixtree/pkg/catalog"
	"github.com/brewlab/mixtree/pkg/recipe"
)

func testViewModel(t *testing.T) viewModel {
	t.Helper()
	cat := catalog.New([]catalog.Record{
		{Name: "Jet Fuel", Recipe: "Meth + Energy Drink"},
		{Name: "Meth", Recipe: "Pseudo + Acid"},
	})
	root := recipe.NewResolver(cat).Resolve("Jet Fuel")
	view := recipe.NewView(root, recipe.DefaultGeometry())
	return newViewModel("Jet Fuel", view, false)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m viewModel, msgs ...tea.Msg) viewModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(viewModel)
	}
	return m
}

func TestViewModelToggleCollapsesSubtree(t *testing.T) {
	m := testViewModel(t)
	if len(m.view.Nodes) != 5 {
		t.Fatalf("initial nodes = %d, want 5", len(m.view.Nodes))
	}

	// Move to Meth (first child of the root) and collapse it.
	m = update(t, m, key("j"), key("enter"))
	if len(m.view.Nodes) != 3 {
		t.Errorf("nodes after collapse = %d, want 3", len(m.view.Nodes))
	}
	if !m.view.Nodes[m.cursor].HasHidden {
		t.Error("cursor node not marked as collapsed")
	}

	// Toggle again restores the subtree.
	m = update(t, m, key("enter"))
	if len(m.view.Nodes) != 5 {
		t.Errorf("nodes after expand = %d, want 5", len(m.view.Nodes))
	}
}

func TestViewModelCollapseAllKeepsCursorValid(t *testing.T) {
	m := testViewModel(t)
	m = update(t, m, key("j"), key("j"), key("j"), key("c"))
	if len(m.view.Nodes) != 1 {
		t.Fatalf("nodes after collapse all = %d, want 1", len(m.view.Nodes))
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	m = update(t, m, key("e"))
	if len(m.view.Nodes) != 5 {
		t.Errorf("nodes after expand all = %d, want 5", len(m.view.Nodes))
	}
}

func TestViewModelCursorBounds(t *testing.T) {
	m := testViewModel(t)
	m = update(t, m, key("k"))
	if m.cursor != 0 {
		t.Errorf("cursor moved above top: %d", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m = update(t, m, key("j"))
	}
	if m.cursor != len(m.view.Nodes)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.view.Nodes)-1)
	}
}

func TestViewModelViewRendersLabels(t *testing.T) {
	m := testViewModel(t)
	out := m.View()
	for _, label := range []string{"Jet Fuel", "Meth", "Energy Drink", "Pseudo", "Acid"} {
		if !strings.Contains(out, label) {
			t.Errorf("view output missing %q", label)
		}
	}
}
