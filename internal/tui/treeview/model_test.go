package treeview

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceLoader(src string) Loader {
	return func() (Document, error) {
		tokens := parser.Tokenize(src)
		doc := Document{Name: "top.v", Tokens: tokens}
		mod, err := parser.NewParser(tokens).Parse()
		if err != nil {
			return doc, err
		}
		doc.Modules = append(doc.Modules, mod)
		return doc, nil
	}
}

// start sizes the model and delivers the initial load.
func start(t *testing.T, load Loader) Model {
	t.Helper()
	m := New(load)
	assert.Equal(t, "Loading...", m.View())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	cmd := m.Init()
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	return updated.(Model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ShowsTree(t *testing.T) {
	m := start(t, sourceLoader("module top (input a, output y); assign y = a; endmodule"))

	assert.Equal(t, PaneTree, m.Pane())
	view := m.View()
	assert.Contains(t, view, "top.v")
	assert.Contains(t, view, "[tree]")
	assert.Contains(t, view, "top (Module)")
	assert.Contains(t, view, "  ports (PortList)")
	assert.Contains(t, view, "q: quit")
}

func TestModel_TogglePane(t *testing.T) {
	m := start(t, sourceLoader("module top (); endmodule"))

	updated, _ := m.Update(key("t"))
	m = updated.(Model)
	assert.Equal(t, PaneTokens, m.Pane())
	assert.Contains(t, m.View(), `Token(Keyword, "module", Line: 1, column: 7)`)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, PaneTree, m.Pane())
}

func TestModel_ParseError(t *testing.T) {
	m := start(t, sourceLoader("module top (input a) endmodule"))

	view := m.View()
	assert.Contains(t, view, "syntax error")
	assert.Contains(t, view, "parse error at line 1, column 31")

	// Tokens are still available.
	updated, _ := m.Update(key("t"))
	assert.Contains(t, updated.(Model).Content(), `Token(Symbol, ")", Line: 1, column: 21)`)
}

func TestModel_Reload(t *testing.T) {
	calls := 0
	load := func() (Document, error) {
		calls++
		if calls == 1 {
			return Document{Name: "x.v"}, errors.New("failed to read x.v")
		}
		return sourceLoader("module x (); endmodule")()
	}

	m := start(t, load)
	assert.Contains(t, m.View(), "failed to read x.v")

	updated, cmd := m.Update(key("r"))
	require.NotNil(t, cmd)
	updated, _ = updated.(Model).Update(cmd())
	m = updated.(Model)

	assert.Equal(t, 2, calls)
	assert.Contains(t, m.View(), "x (Module)")
}

func TestModel_Quit(t *testing.T) {
	m := start(t, sourceLoader("module top (); endmodule"))

	for _, msg := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_EmptyDocument(t *testing.T) {
	m := start(t, func() (Document, error) { return Document{Name: "empty.v"}, nil })
	assert.Equal(t, "(no modules)", m.Content())

	updated, _ := m.Update(key("t"))
	assert.Equal(t, "(no tokens)", updated.(Model).Content())
}
