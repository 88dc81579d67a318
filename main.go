package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger creates the stderr diagnostics logger with timestamp
// formatting.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "jackviz <file.xml> [file.xml ...]",
		Short: "jackviz renders compiler syntax trees as an interactive diagram",
		Long: `jackviz renders the tagged markup trees emitted by the Jack compiler
front-end as an interactive node-link diagram: drag to pan, scroll to
zoom, and switch between the loaded files without leaving the session.

Inputs that cannot be read or parsed are reported to stderr and
skipped; the viewer starts as long as at least one file loads.`,
		Version:      version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			return runViewer(args, newLogger(os.Stderr, level))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRegistryCommand())
	return root
}

// runViewer loads every input, then hands the surviving documents to
// the interactive program with the first one active.
func runViewer(paths []string, logger *charmlog.Logger) error {
	docs, errs := loadDocuments(paths, logger)
	if len(docs) == 0 {
		return fmt.Errorf("%w (%d input(s) failed)", ErrNoDocuments, len(errs))
	}

	m := newViewerModel(loadConfig(), NewDocumentSet(docs))
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleMouse drives the camera's drag state machine and wheel zoom.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeView {
		return m, nil
	}

	row := msg.Y - m.canvasTop()
	anchorX := float64(msg.X) * cellWidth
	anchorY := float64(row) * cellHeight

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.camera.ZoomAt(m.config.WheelFactor, anchorX, anchorY, m.config.ZoomMin, m.config.ZoomMax)
	case msg.Button == tea.MouseButtonWheelDown:
		m.camera.ZoomAt(1/m.config.WheelFactor, anchorX, anchorY, m.config.ZoomMin, m.config.ZoomMax)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.camera.StartDrag(msg.X, row)
	case msg.Action == tea.MouseActionMotion:
		m.camera.Drag(msg.X, row)
	case msg.Action == tea.MouseActionRelease:
		m.camera.EndDrag()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help {
		m.help = false
		return m, nil
	}

	if m.mode == ModeSelect {
		switch key {
		case "ctrl+c", "q", "esc", "o":
			m.mode = ModeView
		case "up", "k":
			if m.selectIndex > 0 {
				m.selectIndex--
			}
		case "down", "j":
			if m.selectIndex < m.docs.Len()-1 {
				m.selectIndex++
			}
		case "enter":
			m.setActiveDocument(m.selectIndex)
			m.mode = ModeView
		}
		return m, nil
	}

	centerX := float64(m.width) * cellWidth / 2
	centerY := float64(m.canvasHeight()) * cellHeight / 2

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.help = true
	case "tab":
		if m.docs.Len() > 0 {
			m.setActiveDocument((m.docs.ActiveIndex() + 1) % m.docs.Len())
		}
	case "shift+tab":
		if m.docs.Len() > 0 {
			m.setActiveDocument((m.docs.ActiveIndex() + m.docs.Len() - 1) % m.docs.Len())
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.setActiveDocument(int(key[0]-'0') - 1)
	case "o":
		m.mode = ModeSelect
		m.selectIndex = m.docs.ActiveIndex()
	case "left":
		m.camera.PanX += keyPanStep
	case "right":
		m.camera.PanX -= keyPanStep
	case "up":
		m.camera.PanY += keyPanStep
	case "down":
		m.camera.PanY -= keyPanStep
	case "+", "=":
		m.camera.ZoomAt(keyZoomFactor, centerX, centerY, m.config.ZoomMin, m.config.ZoomMax)
	case "-":
		m.camera.ZoomAt(1/keyZoomFactor, centerX, centerY, m.config.ZoomMin, m.config.ZoomMax)
	case "0":
		m.resetCamera()
	case "h":
		m.selectParent()
	case "l":
		m.selectFirstChild()
	case "j":
		m.selectSibling(1)
	case "k":
		m.selectSibling(-1)
	case "c":
		m.centerOnSelected()
	case "y":
		m.yankSelected()
	case "p":
		m.exportActive()
	}
	return m, nil
}

// exportActive snapshots the active tree to a PNG next to the export
// directory (or the working directory).
func (m *model) exportActive() {
	doc := m.docs.Active()
	if doc == nil {
		return
	}
	name := strings.TrimSuffix(doc.Filename, ".jack") + ".png"
	path := m.config.GetExportPath(name)
	if err := exportPNG(doc, path); err != nil {
		m.errorMessage = fmt.Sprintf("export: %v", err)
		return
	}
	m.errorMessage = ""
	m.statusMessage = fmt.Sprintf("exported %s", path)
}

var (
	barActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	barInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	statusOkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	selectDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var b strings.Builder

	if m.canvasTop() > 0 {
		b.WriteString(m.renderBufferBar())
		b.WriteString("\n")
	}

	if m.mode == ModeSelect {
		b.WriteString(m.selectView())
	} else {
		var root *PlacedNode
		if doc := m.docs.Active(); doc != nil {
			root = doc.Root
		}
		lines := m.canvas.Render(root, &m.camera, m.width, m.canvasHeight(), m.selected)
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// renderBufferBar lists every loaded document across the top, the
// active one highlighted.
func (m model) renderBufferBar() string {
	var parts []string
	for i, name := range m.docs.Names() {
		entry := fmt.Sprintf(" %d:%s ", i+1, name)
		if i == m.docs.ActiveIndex() {
			parts = append(parts, barActiveStyle.Render(entry))
		} else {
			parts = append(parts, barInactiveStyle.Render(entry))
		}
	}
	return strings.Join(parts, "")
}

// selectView is the document selector list, replacing the canvas while
// open.
func (m model) selectView() string {
	var b strings.Builder
	b.WriteString("Select a document:\n")
	b.WriteString(strings.Repeat("─", max(m.width, 1)))
	b.WriteString("\n")

	names := m.docs.Names()
	shown := 0
	maxLines := m.canvasHeight() - 3
	for i, name := range names {
		if shown >= maxLines {
			break
		}
		line := fmt.Sprintf("  %s", name)
		if i == m.selectIndex {
			line = fmt.Sprintf("> %s <", name)
			b.WriteString(selectCurStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
		shown++
	}
	for shown < maxLines {
		b.WriteString("\n")
		shown++
	}
	b.WriteString(selectDimStyle.Render("j/k move  enter select  esc cancel"))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// statusLine shows the active document, zoom level, and any pending
// message.
func (m model) statusLine() string {
	doc := m.docs.Active()
	left := "no documents"
	if doc != nil {
		left = fmt.Sprintf("%s  %d nodes", doc.Filename, doc.NodeCount)
	}
	line := fmt.Sprintf("%s  zoom %d%%", left, int(m.camera.Scale*100+0.5))
	if m.selected != nil {
		line += fmt.Sprintf("  [%s]", m.selected.Label)
	}

	switch {
	case m.errorMessage != "":
		return statusErrStyle.Render(m.errorMessage)
	case m.statusMessage != "":
		return statusOkStyle.Render(m.statusMessage)
	default:
		return statusStyle.Render(line + "  ? help")
	}
}

func (m model) helpView() string {
	help := `jackviz

  Camera
    drag            pan
    scroll          zoom at pointer
    arrows          pan
    + / -           zoom at center
    0               reset camera

  Documents
    tab / shift+tab next / previous document
    1-9             switch directly
    o               document selector

  Tree
    h / l           parent / first child
    j / k           next / previous sibling
    c               center on selection
    y               copy selected label

  Other
    p               export PNG snapshot
    ?               toggle this help
    q               quit

  Press any key to close help.`
	return help
}
