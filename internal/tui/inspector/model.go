package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	mdwlog "github.com/vcglab/vcgc/foundation/core/log"
	"github.com/vcglab/vcgc/internal/vcg/ast"
)

// ApplyColorProfile maps a vcgconfig color_profile setting onto lipgloss's
// global renderer, so "none" degrades cleanly for piped or CI output.
func ApplyColorProfile(profile string) {
	switch profile {
	case "none":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "light":
		lipgloss.SetColorProfile(termenv.ANSI256)
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// ruleItem adapts a compiled rule to bubbles/list.Item.
type ruleItem struct {
	name     string
	callback string
	tree     string
}

func (i ruleItem) Title() string       { return "$" + i.name }
func (i ruleItem) Description() string { return i.tree }
func (i ruleItem) FilterValue() string { return i.name }

// Model is the Bubbletea model for the rule tree inspector.
type Model struct {
	list      list.Model
	module    *ast.Module
	sessionID string
	logger    *mdwlog.Logger
	width     int
	height    int
	ready     bool
}

// New builds an inspector Model over an already-compiled module. sessionID
// tags every log line this session emits so concurrent inspect runs can be
// told apart in a shared log stream.
func New(module *ast.Module, sessionID string, logger *mdwlog.Logger) Model {
	items := make([]list.Item, 0, len(module.Rules))
	for name, root := range module.Rules {
		items = append(items, ruleItem{
			name:     name,
			callback: module.CallbackNames[name],
			tree:     root.String(),
		})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = SelectedItemStyle
	delegate.Styles.NormalTitle = ListItemStyle

	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("%s (%d rules)", module.FileName, len(items))
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return Model{
		list:      l,
		module:    module,
		sessionID: sessionID,
		logger:    logger.WithField("session_id", sessionID),
	}
}

func (m Model) Init() tea.Cmd {
	m.logger.Debug("inspector started", mdwlog.Fields{"rules": len(m.module.Rules)})
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		listWidth := m.width / 3
		m.list.SetSize(listWidth, m.height-4)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	listView := m.list.View()

	var tree strings.Builder
	if item, ok := m.list.SelectedItem().(ruleItem); ok {
		tree.WriteString(TitleStyle.Render("$" + item.name))
		if item.callback != "" {
			tree.WriteString("\n" + CallbackStyle.Render("@"+item.callback))
		}
		tree.WriteString("\n\n" + item.tree)
	} else {
		tree.WriteString(CallbackStyle.Render("no rules to show"))
	}

	treePanelWidth := m.width - m.width/3 - 6
	if treePanelWidth < 20 {
		treePanelWidth = 20
	}
	treePanel := TreePanelStyle.Width(treePanelWidth).Height(m.height - 6).Render(tree.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, listView, treePanel)
	help := HelpStyle.Render("↑/↓ select  /  filter  q  quit")

	return body + "\n" + help
}

// Run starts the inspector as a full-screen program.
func Run(module *ast.Module, sessionID string, logger *mdwlog.Logger) error {
	p := tea.NewProgram(New(module, sessionID, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
