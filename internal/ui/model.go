package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/renato0307/chord/internal/adapters/eventbus"
	"github.com/renato0307/chord/internal/adapters/terminal"
	"github.com/renato0307/chord/internal/config"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/services"
	"github.com/renato0307/chord/internal/theme"
	"github.com/renato0307/chord/internal/version"
)

const (
	clearMessageDelay = 2 * time.Second
	maxEventLog       = 6
)

// ModelConfig holds everything needed to build a tester Model
type ModelConfig struct {
	Keymap          domain.Keymap
	Keys            config.KeyBindingsConfig
	Policy          domain.ModifierPolicy
	SessionID       string
	StopPropagation bool
}

// eventRecord is one line of the event log
type eventRecord struct {
	description string
	fired       string
	origin      string
	prevented   bool
	propagated  bool
	suppressed  bool
}

// Model is the interactive shortcut tester.
// Shortcuts are registered on a panel bus whose parent is the app bus, so a shortcut that
// stops propagation keeps the event from reaching the app stage.
type Model struct {
	actions    *services.ActionRegistry
	appBus     *eventbus.Bus
	count      int
	events     []eventRecord
	failed     bool
	fired      string
	generation int
	help       help.Model
	input      textinput.Model
	keymap     domain.Keymap
	keys       KeyMap
	message    string
	panelBus   *eventbus.Bus
	pending    []tea.Cmd
	propagated bool
	save       *services.ShortcutRegistration
	sessionID  string
	shortcuts  *services.ShortcutsRegistration
	tips       []Tip
	width      int
}

// NewModel builds a tester for cfg.Keymap. It fails when the keymap names an unknown action.
func NewModel(cfg ModelConfig) (*Model, error) {
	policy, err := domain.ParseModifierPolicy(string(cfg.Policy))
	if err != nil {
		return nil, err
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	input := textinput.New()
	input.Placeholder = "Try typing here - shortcuts won't work"
	input.Width = 40

	appBus := eventbus.New("app")
	m := &Model{
		actions:   services.NewActionRegistry(),
		appBus:    appBus,
		help:      help.New(),
		input:     input,
		keymap:    cfg.Keymap,
		keys:      NewKeyMap(cfg.Keys),
		message:   idleMessage,
		panelBus:  appBus.NewChild("panel"),
		sessionID: sessionID,
	}
	m.tips = m.keys.Tips()
	m.registerActions()

	mapping, err := m.actions.Compile(cfg.Keymap)
	if err != nil {
		return nil, err
	}

	appBus.AddListener(&eventbus.ListenerFunc{Fn: func(*eventbus.Event) {
		m.propagated = true
	}})

	shortcuts := services.NewShortcutService(m.panelBus)

	saveOpts := domain.DefaultShortcutOptions()
	saveOpts.Policy = policy
	saveOpts.StopPropagation = cfg.StopPropagation
	m.save = shortcuts.RegisterShortcut(SaveShortcut, m.handlerFor(ActionSave), saveOpts)

	multiOpts := domain.DefaultShortcutsOptions()
	multiOpts.Policy = policy
	m.shortcuts = shortcuts.RegisterShortcuts(mapping, multiOpts)

	logging.Logger.Info("Tester created",
		"session_id", sessionID,
		"keymap", cfg.Keymap.Name,
		"policy", policy,
		"bindings", len(m.shortcuts.Bindings()))

	return m, nil
}

func (m *Model) registerActions() {
	handlers := map[string]domain.Handler{
		ActionSave: func(domain.KeyEvent) {
			m.setMessage("Document saved! (Ctrl+S pressed)")
		},
		ActionUndo: func(domain.KeyEvent) {
			m.count = max(0, m.count-1)
			m.setMessage("Undo! Count decreased")
		},
		ActionRedo: func(domain.KeyEvent) {
			m.count++
			m.setMessage("Redo! Count increased")
		},
		ActionReset: func(domain.KeyEvent) {
			m.count = 0
			m.setMessage("Reset! Count set to 0")
		},
		ActionClear: func(domain.KeyEvent) {
			m.setMessage("Escape pressed - clearing message")
			generation := m.generation
			m.pending = append(m.pending, tea.Tick(clearMessageDelay, func(time.Time) tea.Msg {
				return clearMessageMsg{generation: generation}
			}))
		},
	}

	for _, a := range DemoActions() {
		handler := handlers[a.Name]
		name := a.Name
		m.actions.Register(name, a.Description, func(event domain.KeyEvent) {
			m.fired = name
			handler(event)
		})
	}
}

func (m *Model) handlerFor(action string) domain.Handler {
	handler, ok := m.actions.Handler(action)
	if !ok {
		panic("ui: action not registered: " + action)
	}
	return handler
}

func (m *Model) setMessage(message string) {
	m.generation++
	m.message = message
	m.failed = false
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case clearMessageMsg:
		if msg.generation == m.generation {
			m.setMessage(idleMessage)
		}
		return m, nil

	case KeymapChangedMsg:
		m.applyKeymap(msg.Keymap)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit.Binding) {
			return m, tea.Quit
		}
		return m, m.handleKey(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches the key through the shortcut buses and runs the tester's own
// behaviour only when no shortcut prevented the default action
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	origin := domain.TagDiv
	if m.input.Focused() {
		origin = domain.TagInput
	}

	m.fired = ""
	m.propagated = false
	m.pending = nil

	if event, ok := terminal.Translate(msg, origin); ok {
		m.panelBus.Dispatch(event)
		m.record(event, origin)
		logging.Logger.Debug("Key dispatched",
			"key", terminal.Describe(event),
			"origin", string(origin),
			"fired", m.fired,
			"prevented", event.DefaultPrevented())

		if event.DefaultPrevented() {
			return tea.Batch(m.pending...)
		}
	}

	cmds := append(m.pending, m.defaultAction(msg))
	return tea.Batch(cmds...)
}

func (m *Model) defaultAction(msg tea.KeyMsg) tea.Cmd {
	if m.input.Focused() {
		if key.Matches(msg, m.keys.Input.Blur.Binding) {
			m.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Input.Focus.Binding):
		return m.input.Focus()
	case key.Matches(msg, m.keys.Application.Help.Binding):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Application.ClearLog.Binding):
		m.events = nil
	case key.Matches(msg, m.keys.Application.Quit.Binding):
		return tea.Quit
	}
	return nil
}

func (m *Model) record(event *eventbus.Event, origin domain.Tag) {
	rec := eventRecord{
		description: terminal.Describe(event),
		fired:       m.fired,
		origin:      string(origin),
		prevented:   event.DefaultPrevented(),
		propagated:  m.propagated,
		suppressed:  origin == domain.TagInput,
	}
	m.events = append(m.events, rec)
	if len(m.events) > maxEventLog {
		m.events = m.events[len(m.events)-maxEventLog:]
	}
}

func (m *Model) applyKeymap(keymap domain.Keymap) {
	mapping, err := m.actions.Compile(keymap)
	if err != nil {
		logging.Logger.Warn("Keymap rejected", "keymap", keymap.Name, "error", err)
		m.setMessage("Keymap rejected: " + err.Error())
		m.failed = true
		return
	}
	m.shortcuts.SetMapping(mapping)
	m.keymap = keymap
	m.setMessage(fmt.Sprintf("Keymap %q reloaded (%d shortcuts)", keymap.Name, len(keymap.Entries)))
}

// Close detaches every registration
func (m *Model) Close() {
	m.save.Detach()
	m.shortcuts.Detach()
}

// SessionID returns the tester session identifier
func (m *Model) SessionID() string {
	return m.sessionID
}

// Count returns the demo counter
func (m *Model) Count() int {
	return m.count
}

// Message returns the current status message
func (m *Model) Message() string {
	return m.message
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("chord · keyboard shortcut tester"))
	b.WriteString("  ")
	b.WriteString(theme.VersionStyle.Render(version.Version + " · " + shortID(m.sessionID)))
	b.WriteString("\n")

	messageStyle := theme.NormalStyle
	if m.failed {
		messageStyle = theme.ErrorStyle
	}
	status := theme.LabelStyle.Render("Count: ") + theme.NormalStyle.Render(fmt.Sprintf("%d", m.count)) + "\n" +
		theme.LabelStyle.Render("Message: ") + messageStyle.Render(m.message)
	b.WriteString(theme.PanelStyle.Render(status))
	b.WriteString("\n")

	b.WriteString(m.renderShortcuts())
	b.WriteString("\n")

	b.WriteString(theme.NoteStyle.Render("Note: shortcuts are ignored when typing in the text field."))
	b.WriteString("\n")
	inputStyle := theme.InputBlurredStyle
	if m.input.Focused() {
		inputStyle = theme.InputFocusedStyle
	}
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderEvents())

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	if len(m.tips) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderTip(m.tips[len(m.events)%len(m.tips)]))
	}
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderShortcuts() string {
	descriptions := make(map[string]string)
	for _, a := range m.actions.Actions() {
		descriptions[a.Name] = a.Description
	}

	var b strings.Builder
	b.WriteString(theme.GroupStyle.Render("Available shortcuts"))
	b.WriteString(theme.VersionStyle.Render("  keymap: " + m.keymap.Name))
	b.WriteString("\n")
	b.WriteString(renderShortcut(SaveShortcut, descriptions[ActionSave]))
	for _, e := range m.keymap.Entries {
		b.WriteString(renderShortcut(e.Shortcut, descriptions[e.Action]))
	}
	return b.String()
}

func renderShortcut(shortcut, description string) string {
	return theme.ShortcutKeyStyle.Render(shortcut) + theme.ShortcutDescStyle.Render(description) + "\n"
}

func (m *Model) renderEvents() string {
	if len(m.events) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.GroupStyle.Render("Events"))
	b.WriteString("\n")
	for i := len(m.events) - 1; i >= 0; i-- {
		e := m.events[i]
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			theme.ShortcutKeyStyle.Render(e.description),
			theme.ShortcutDescStyle.Width(10).Render(e.origin),
			outcome(e),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func outcome(e eventRecord) string {
	var parts []string
	switch {
	case e.fired != "":
		parts = append(parts, theme.MatchedStyle.Render("→ "+e.fired))
	case e.suppressed:
		parts = append(parts, theme.SuppressedStyle.Render("suppressed"))
	default:
		parts = append(parts, theme.UnmatchedStyle.Render("no shortcut"))
	}
	if e.prevented {
		parts = append(parts, theme.PreventedStyle.Render("default prevented"))
	}
	if e.fired != "" && !e.propagated {
		parts = append(parts, theme.PreventedStyle.Render("propagation stopped"))
	}
	return strings.Join(parts, "  ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
