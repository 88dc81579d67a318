package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// ErrMissingField marks a registry record that lacks a required field.
var ErrMissingField = errors.New("missing field")

// RegistryEntry is one subroutine record from the compiler's global
// registry dump.
type RegistryEntry struct {
	Class  string
	Method string
	Type   string
	Return string
	Params string
}

// registryFields are required on every record, checked in this order
// so the reported field is deterministic.
var registryFields = []string{"class", "method", "type", "return", "params"}

// loadRegistry reads and validates a registry dump. Every record must
// carry all five fields; the first missing one is reported by name.
// Entries come back sorted by class, then method.
func loadRegistry(path string) ([]RegistryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file struct {
		Registry []map[string]string `json:"registry"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	entries := make([]RegistryEntry, 0, len(file.Registry))
	for i, rec := range file.Registry {
		for _, f := range registryFields {
			if _, ok := rec[f]; !ok {
				return nil, fmt.Errorf("registry entry %d: %w %q", i, ErrMissingField, f)
			}
		}
		entries = append(entries, RegistryEntry{
			Class:  rec["class"],
			Method: rec["method"],
			Type:   rec["type"],
			Return: rec["return"],
			Params: rec["params"],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Class != entries[j].Class {
			return entries[i].Class < entries[j].Class
		}
		return entries[i].Method < entries[j].Method
	})
	return entries, nil
}

// findRegistryFile locates the registry dump when no path is given,
// checking the spots the compiler's build usually leaves it in.
func findRegistryFile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	candidates := []string{
		"registry_debug.json",
		"build/registry_debug.json",
		"tests/JackTestCode/registry_debug.json",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return candidates[0]
}

func newRegistryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "registry [registry.json]",
		Short: "Browse the compiler's global subroutine registry",
		Long: `Browse the compiler's global subroutine registry.

Loads a registry dump (a JSON object with a "registry" array of
class/method records) into a filterable table. Type to filter by class
or method substring; press ctrl+r to reload the file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := findRegistryFile(args)
			entries, err := loadRegistry(path)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newRegistryModel(path, entries), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run registry browser: %w", err)
			}
			return nil
		},
	}
}

// =============================================================================
// Registry browser model
// =============================================================================

var (
	registryTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	registryHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	registryDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	registryCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	registryStaticStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	registryMethodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

// registryModel is the bubbletea model for the registry browser. The
// loaded entries are never mutated; filtering always recomputes a view
// of them, so clearing the query restores every row.
type registryModel struct {
	path    string
	entries []RegistryEntry
	filter  string
	cursor  int
	offset  int
	height  int
	status  string
}

func newRegistryModel(path string, entries []RegistryEntry) registryModel {
	return registryModel{
		path:    path,
		entries: entries,
		height:  15,
	}
}

// filtered returns the entries whose class or method contains the
// current query, case-insensitively.
func (m registryModel) filtered() []RegistryEntry {
	q := strings.ToLower(m.filter)
	if q == "" {
		return m.entries
	}
	var out []RegistryEntry
	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(e.Class), q) ||
			strings.Contains(strings.ToLower(e.Method), q) {
			out = append(out, e)
		}
	}
	return out
}

func (m registryModel) Init() tea.Cmd {
	return nil
}

func (m registryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down":
			if m.cursor < len(m.filtered())-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "ctrl+r":
			entries, err := loadRegistry(m.path)
			if err != nil {
				m.status = err.Error()
				break
			}
			m.entries = entries
			m.cursor, m.offset = 0, 0
			m.status = fmt.Sprintf("reloaded %d entries", len(entries))
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.cursor, m.offset = 0, 0
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.filter += string(msg.Runes)
				m.cursor, m.offset = 0, 0
			}
		}
	}
	return m, nil
}

func (m registryModel) View() string {
	var b strings.Builder

	b.WriteString(registryTitleStyle.Render("Global Registry"))
	b.WriteString("  ")
	b.WriteString(registryDimStyle.Render(m.path))
	b.WriteString("\n")
	b.WriteString("Search by class or method: " + m.filter + "█")
	b.WriteString("\n\n")

	entries := m.filtered()
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	end := m.offset + m.height
	if end > len(entries) {
		end = len(entries)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		e := entries[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		kind := "method"
		if e.Type == "function" {
			kind = "static"
		}
		rows = append(rows, []string{cursor, e.Class, e.Method, kind, e.Return, e.Params})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(registryDimStyle).
		Headers("", "Class", "Method", "Kind", "Return", "Parameters").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return registryHeaderStyle
			}
			actualIdx := m.offset + row
			if actualIdx == m.cursor {
				return registryCursorStyle
			}
			if col == 3 && actualIdx < len(entries) {
				if entries[actualIdx].Type == "function" {
					return registryStaticStyle
				}
				return registryMethodStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(registryDimStyle.Render(
		fmt.Sprintf("  [%d/%d]  type to filter  ↑/↓ move  ctrl+r reload  esc quit", len(entries), len(m.entries))))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(registryDimStyle.Render("  " + m.status))
	}

	return b.String()
}
