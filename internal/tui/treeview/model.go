// Package treeview is an interactive terminal viewer for a parsed source
// file. It shows the syntax tree or the token stream in a scrollable pane
// and can re-read the file on demand.
package treeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/vfront/pkg/format"
	"github.com/leapstack-labs/vfront/pkg/parser"
	"github.com/leapstack-labs/vfront/pkg/token"
)

// Pane selects what the viewport shows.
type Pane int

// Panes.
const (
	PaneTree Pane = iota
	PaneTokens
)

func (p Pane) String() string {
	if p == PaneTokens {
		return "tokens"
	}
	return "tree"
}

// Document is one loaded source.
type Document struct {
	Name    string
	Tokens  []token.Token
	Modules []*parser.Node
}

// Loader reads and parses the viewed source. On a parse error it returns
// the document so far (tokens, no modules) together with the error.
type Loader func() (Document, error)

const (
	headerHeight = 2
	footerHeight = 1
)

// Model is the bubbletea model of the viewer.
type Model struct {
	width  int
	height int
	ready  bool

	pane Pane
	doc  Document
	err  error

	load     Loader
	viewport viewport.Model
}

// New creates a viewer that loads its content with load.
func New(load Loader) Model {
	return Model{load: load}
}

// Init loads the document.
func (m Model) Init() tea.Cmd {
	return m.reload
}

func (m Model) reload() tea.Msg {
	doc, err := m.load()
	return loadedMsg{doc: doc, err: err}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := max(msg.Height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case loadedMsg:
		m.doc = msg.doc
		m.err = msg.err
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.togglePane()
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "t":
			m.togglePane()
			return m, nil
		case "r":
			return m, m.reload
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) togglePane() {
	if m.pane == PaneTree {
		m.pane = PaneTokens
	} else {
		m.pane = PaneTree
	}
	m.updateViewportContent()
	m.viewport.GotoTop()
}

// Pane returns the pane being shown.
func (m Model) Pane() Pane {
	return m.pane
}

// Content returns the text of the current pane.
func (m Model) Content() string {
	if m.pane == PaneTokens {
		if len(m.doc.Tokens) == 0 {
			return "(no tokens)"
		}
		return format.Tokens(m.doc.Tokens)
	}

	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	trees := make([]string, 0, len(m.doc.Modules))
	for _, mod := range m.doc.Modules {
		trees = append(trees, format.Tree(mod))
	}
	if len(trees) == 0 {
		return "(no modules)"
	}
	return strings.Join(trees, "\n")
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.Content())
}

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("t/tab: tree/tokens  r: reload  g/G: top/bottom  q: quit"))
	return b.String()
}

func (m Model) renderHeader() string {
	status := fmt.Sprintf("%d tokens, %d modules", len(m.doc.Tokens), len(m.doc.Modules))
	if m.err != nil {
		status = errorStyle.Render("syntax error")
	}
	title := titleStyle.Render(m.doc.Name) + "  " + paneStyle.Render("["+m.pane.String()+"]") + "  " + status
	return title + "\n" + strings.Repeat("─", max(m.width, 1))
}
