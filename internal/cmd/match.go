package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/renato0307/chord/internal/adapters/eventbus"
	"github.com/renato0307/chord/internal/adapters/terminal"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/keys"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/services"
	"github.com/renato0307/chord/internal/shortcut"
	"github.com/renato0307/chord/internal/theme"
)

// ErrNoMatch is returned by match when the event did not trigger the shortcut
var ErrNoMatch = errors.New("no shortcut matched")

// MatchCmd dispatches one synthetic key event to a shortcut registration
type MatchCmd struct {
	Alt              bool   `help:"Hold alt"`
	Ctrl             bool   `help:"Hold ctrl"`
	Description      string `arg:"" help:"Shortcut description (e.g. 'ctrl+s, cmd+s')"`
	Format           string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Key              string `help:"Pressed key: a name (s, enter, f5) or a numeric code (83)" required:""`
	Meta             bool   `help:"Hold meta (command)"`
	NoPreventDefault bool   `help:"Do not prevent the default action on match"`
	Policy           string `help:"Override the modifier policy for this evaluation" enum:",meta-as-control,strict" default:""`
	Shift            bool   `help:"Hold shift"`
	StopPropagation  bool   `help:"Stop propagation on match"`
	Target           string `help:"Tag name of the element the event originates from (e.g. INPUT)"`
}

// MatchResult is the outcome of one evaluation
type MatchResult struct {
	Combination        string `json:"combination,omitempty"`
	DefaultPrevented   bool   `json:"default_prevented"`
	Event              string `json:"event"`
	Matched            bool   `json:"matched"`
	Policy             string `json:"policy"`
	PropagationStopped bool   `json:"propagation_stopped"`
	Suppressed         bool   `json:"suppressed"`
}

// Run executes the match command
func (m *MatchCmd) Run(cli *CLI) error {
	code, err := parseKeyCode(m.Key)
	if err != nil {
		return err
	}

	result := m.evaluate(code, cli.modifierPolicy(m.Policy))

	logging.Logger.Debug("Match evaluated",
		"description", m.Description,
		"event", result.Event,
		"matched", result.Matched)

	if m.Format == "json" {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		m.printResult(result)
	}

	if !result.Matched {
		return ErrNoMatch
	}
	return nil
}

func (m *MatchCmd) evaluate(code domain.KeyCode, policy domain.ModifierPolicy) MatchResult {
	var origin domain.Element
	if m.Target != "" {
		origin = domain.Tag(m.Target)
	}

	bus := eventbus.New("match")
	matched := false

	opts := domain.DefaultShortcutOptions()
	opts.Policy = policy
	opts.PreventDefault = !m.NoPreventDefault
	opts.StopPropagation = m.StopPropagation

	reg := services.NewShortcutService(bus).RegisterShortcut(m.Description, func(domain.KeyEvent) {
		matched = true
	}, opts)
	defer reg.Detach()

	event := bus.Dispatch(eventbus.NewEvent(code, origin).WithModifiers(m.Shift, m.Ctrl, m.Alt, m.Meta))

	result := MatchResult{
		DefaultPrevented:   event.DefaultPrevented(),
		Event:              terminal.Describe(event),
		Matched:            matched,
		Policy:             string(policy),
		PropagationStopped: event.PropagationStopped(),
		Suppressed:         shortcut.Suppressed(origin),
	}
	if matched {
		if combo, ok := shortcut.Match(reg.Combinations(), event, policy); ok {
			result.Combination = combo.Source
		}
	}
	return result
}

func (m *MatchCmd) printResult(r MatchResult) {
	fmt.Fprintf(stdout, "Event:    %s\n", r.Event)
	fmt.Fprintf(stdout, "Policy:   %s\n", r.Policy)
	switch {
	case r.Matched:
		fmt.Fprintf(stdout, "Result:   %s\n", theme.MatchedStyle.Render("matched "+r.Combination))
	case r.Suppressed:
		fmt.Fprintf(stdout, "Result:   %s\n", theme.SuppressedStyle.Render("suppressed (typing context)"))
	default:
		fmt.Fprintf(stdout, "Result:   %s\n", theme.UnmatchedStyle.Render("no match"))
	}
	fmt.Fprintf(stdout, "Prevent:  %t\n", r.DefaultPrevented)
	fmt.Fprintf(stdout, "Stopped:  %t\n", r.PropagationStopped)
}

// parseKeyCode accepts a decimal key code or any name the parser understands
func parseKeyCode(value string) (domain.KeyCode, error) {
	if n, err := strconv.Atoi(value); err == nil && len(value) > 1 {
		return domain.KeyCode(n), nil
	}
	code := keys.Resolve(value)
	if code == domain.KeyNone {
		return domain.KeyNone, fmt.Errorf("%w: %q", domain.ErrUnresolvedKey, value)
	}
	return code, nil
}
