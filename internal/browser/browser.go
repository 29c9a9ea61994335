// Package browser is an interactive terminal browser for the palette
// registries: fuzzy filtering, reversed preview and copying hex codes to
// the clipboard.
package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/brookplot/internal/keyboard"
	"github.com/renato0307/brookplot/internal/logging"
	"github.com/renato0307/brookplot/internal/messages"
	"github.com/renato0307/brookplot/internal/palette"
	"github.com/renato0307/brookplot/internal/types"
	"github.com/renato0307/brookplot/internal/ui"
)

// StatusDisplayDuration is how long a status message stays visible
const StatusDisplayDuration = 5 * time.Second

// chromeLines is the number of lines around the list: title, filter,
// header, detail, status and help
const chromeLines = 8

// copyToClipboard is swapped out in tests
var copyToClipboard = func(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return messages.WrapError(err, "failed to copy to clipboard")
	}
	return nil
}

// kinds is the cycle of registry views; "" lists both
var kinds = []palette.Kind{"", palette.KindCore, palette.KindExtended}

// Options configure a browser
type Options struct {
	Theme   *ui.Theme
	Keys    *keyboard.Keys
	Kind    palette.Kind
	Reverse bool
}

// Model is the browser's Bubble Tea model
type Model struct {
	keys   *keyboard.Keys
	theme  *ui.Theme
	filter textinput.Model
	help   help.Model
	list   *paletteList
	log    *logging.Logger

	kind    palette.Kind
	reverse bool

	status   types.StatusMsg
	statusID int

	width, height int
}

// New creates a browser listing every palette of opts.Kind
func New(opts Options) *Model {
	if opts.Theme == nil {
		opts.Theme = ui.ThemeBrookings()
	}
	if opts.Keys == nil {
		opts.Keys = keyboard.Default()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter palettes"
	ti.PromptStyle = lipgloss.NewStyle().Foreground(opts.Theme.Accent)

	h := help.New()
	h.Styles.ShortKey = opts.Theme.Help.Bold(true)
	h.Styles.ShortDesc = opts.Theme.Help
	h.Styles.FullKey = opts.Theme.Help.Bold(true)
	h.Styles.FullDesc = opts.Theme.Help

	m := &Model{
		keys:    opts.Keys,
		theme:   opts.Theme,
		filter:  ti,
		help:    h,
		list:    newPaletteList(),
		log:     logging.Get().Component("browser"),
		kind:    opts.Kind,
		reverse: opts.Reverse,
	}
	m.reload()
	return m
}

// Run starts the browser full screen and blocks until it quits
func Run(opts Options) error {
	if _, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}

// reload lists the palettes of the current kind and orientation
func (m *Model) reload() {
	var ps []palette.Palette
	if m.kind == "" {
		ps = palette.All()
	} else {
		ps = palette.ByKind(m.kind)
	}
	if m.reverse {
		for i := range ps {
			ps[i] = ps[i].Reversed()
		}
	}
	m.list.SetPalettes(ps)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.list.SetVisible(msg.Height - chromeLines)
		return m, nil

	case types.StatusMsg:
		m.status = msg
		m.statusID++
		id := m.statusID
		return m, tea.Tick(StatusDisplayDuration, func(time.Time) tea.Msg {
			return types.ClearStatusMsg{MessageID: id}
		})

	case types.ClearStatusMsg:
		if msg.MessageID == m.statusID {
			m.status = types.StatusMsg{}
		}
		return m, nil

	case types.FilterUpdateMsg:
		m.filter.SetValue(msg.Filter)
		m.list.Filter(msg.Filter)
		return m, nil

	case types.PaletteCopiedMsg:
		m.log.Info("palette copied", "palette", msg.Name)
		if advisory, ok := palette.Advisory(msg.Name); ok {
			return m, messages.WarningCmd("Copied %s. %s", msg.Name, advisory)
		}
		return m, messages.SuccessCmd("Copied %s: %s", msg.Name, msg.Codes)

	case tea.KeyMsg:
		if m.filter.Focused() {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

// updateFilter handles keys while the filter input has focus
func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.filter.Blur()
		m.filter.SetValue("")
		m.list.Filter("")
		return m, nil
	case tea.KeyEnter:
		m.filter.Blur()
		return m, nil
	case tea.KeyUp:
		m.list.NavigateUp()
		return m, nil
	case tea.KeyDown:
		m.list.NavigateDown()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.list.Filter(m.filter.Value())
	}
	return m, cmd
}

// updateList handles keys while the list has focus
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Back):
		m.filter.SetValue("")
		m.list.Filter("")
	case key.Matches(msg, m.keys.Up):
		m.list.NavigateUp()
	case key.Matches(msg, m.keys.Down):
		m.list.NavigateDown()
	case key.Matches(msg, m.keys.JumpTop):
		m.list.JumpTop()
	case key.Matches(msg, m.keys.JumpBottom):
		m.list.JumpBottom()
	case key.Matches(msg, m.keys.Reverse):
		m.reverse = !m.reverse
		m.reload()
	case key.Matches(msg, m.keys.Kind):
		m.kind = nextKind(m.kind)
		m.reload()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func nextKind(k palette.Kind) palette.Kind {
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

// copySelected puts the selected palette's hex codes on the clipboard
func (m *Model) copySelected() tea.Cmd {
	p, ok := m.list.Selected()
	if !ok {
		return messages.InfoCmd("No palette selected")
	}
	name := string(p.Name())
	codes := strings.Join(p.Hex(), ", ")
	return func() tea.Msg {
		if err := copyToClipboard(codes); err != nil {
			return messages.ErrorCmd("Copy failed: %v", err)()
		}
		return types.PaletteCopiedMsg{Name: name, Codes: codes}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	title := m.theme.Title.Render("brookplot palettes")
	scope := string(m.kind)
	if scope == "" {
		scope = "all"
	}
	if m.reverse {
		scope += ", reversed"
	}
	b.WriteString(title + " " + m.theme.Help.Render(fmt.Sprintf("%s · %d shown", scope, m.list.Size())))
	b.WriteString("\n")

	if m.filter.Focused() || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
	}
	b.WriteString("\n")

	header := lipgloss.NewStyle().Width(nameWidth).Render("  NAME") +
		lipgloss.NewStyle().Width(purposeWidth).Render("PURPOSE") + " COLORS"
	b.WriteString(m.theme.Header.Render(header))
	b.WriteString("\n")
	b.WriteString(m.list.View(m.theme, m.width))
	b.WriteString("\n")

	if p, ok := m.list.Selected(); ok {
		if advisory, warn := p.Advisory(); warn {
			b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Warning).Render("! " + advisory))
		}
	}
	b.WriteString("\n")

	b.WriteString(ui.RenderMessage(m.status.Message, m.status.Type, m.theme, m.width))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
