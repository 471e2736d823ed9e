// Package tui is the interactive terminal preview.
//
// The preview renders the document live and, in the custom layout mode,
// supports direct manipulation: click to select an item, drag to displace
// it, +/- to scale it, r to reset. All manipulation state is transient and
// dies with the program; the document itself is never modified.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/menuforge/menuforge/pkg/menu"
)

// layoutCycle is the order the l key steps through layout modes.
var layoutCycle = []menu.Layout{menu.LayoutGrid, menu.LayoutCard, menu.LayoutList, menu.LayoutCustom}

// Model is the bubbletea model for the preview.
type Model struct {
	project *menu.MenuProject
	in      *Interaction

	width  int
	height int

	// dragMoved distinguishes a click from a drag within one press/release.
	dragMoved bool
}

// NewModel creates a preview for the project. The project is previewed in
// place but never mutated except for the layout mode, which the preview
// cycles locally for comparison (the caller decides whether to persist it).
func NewModel(p *menu.MenuProject) Model {
	return Model{
		project: p,
		in:      NewInteraction(),
		width:   80,
		height:  24,
	}
}

// Interaction exposes the transient state, mainly for tests.
func (m Model) Interaction() *Interaction { return m.in }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=":
		m.in.ScaleUp()
	case "-":
		m.in.ScaleDown()
	case "r":
		m.in.Reset()
	case "z":
		m.in.ZoomIn()
	case "Z":
		m.in.ZoomOut()
	case "l":
		m.cycleLayout()
	}
	return m, nil
}

// cycleLayout steps the preview through layout modes. Transient offsets and
// scales are retained across switches; they apply again when the custom
// mode returns.
func (m *Model) cycleLayout() {
	cur := m.project.Style.Layout
	for i, l := range layoutCycle {
		if l == cur {
			m.project.Style.Layout = layoutCycle[(i+1)%len(layoutCycle)]
			return
		}
	}
	m.project.Style.Layout = layoutCycle[0]
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Direct manipulation exists only in the custom layout.
	if m.project.Style.Layout != menu.LayoutCustom {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		id := m.itemAt(msg.Y)
		if id == "" {
			return m, nil
		}
		m.dragMoved = false
		if id == m.in.Selected() {
			m.in.StartDrag(id, msg.X, msg.Y)
		} else {
			m.in.Click(id)
		}

	case tea.MouseActionMotion:
		if m.in.Dragging() {
			m.in.Drag(msg.X, msg.Y)
			m.dragMoved = true
		}

	case tea.MouseActionRelease:
		if m.in.Dragging() {
			id := m.in.Selected()
			m.in.EndDrag()
			// A press on the selected item with no movement is a click,
			// which toggles the selection off.
			if !m.dragMoved {
				m.in.Click(id)
			}
		}
	}
	return m, nil
}

// itemAt hit-tests a screen line against the current frame. The frame is
// recomputed here rather than cached from View so the ownership map always
// matches what is on screen.
func (m Model) itemAt(line int) string {
	return renderFrame(m.project, m.in, m.width).itemAt(line)
}

func (m Model) View() string {
	f := renderFrame(m.project, m.in, m.width)

	var b strings.Builder
	b.WriteString(f.content)
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) statusBar() string {
	parts := []string{
		fmt.Sprintf("layout: %s", m.project.Style.Layout),
		fmt.Sprintf("zoom: %.1fx", m.in.Zoom()),
	}
	if sel := m.in.Selected(); sel != "" {
		parts = append(parts, fmt.Sprintf("selected (scale %.1fx)", m.in.Scale(sel)))
	}
	help := "l layout  z/Z zoom  q quit"
	if m.project.Style.Layout == menu.LayoutCustom {
		help = "click select  drag move  +/- scale  r reset  " + help
	}
	return dimStyle.Render(strings.Join(parts, "  ")) + "\n" + helpStyle.Render(help)
}

// Run starts the interactive preview and blocks until the user quits.
func Run(p *menu.MenuProject) error {
	prog := tea.NewProgram(NewModel(p), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := prog.Run()
	return err
}
