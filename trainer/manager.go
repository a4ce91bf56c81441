package trainer

import (
	"errors"
	"fmt"

	"washtrainer/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// ErrUnknownFeature is returned by Toggle for an unregistered identifier.
var ErrUnknownFeature = errors.New("unknown cheat feature")

// Manager owns the registered cheat features for one attached process and
// profile pair. It is not safe for concurrent use; the menu loop drives it
// from a single goroutine.
type Manager struct {
	proc    process.Process
	profile Profile

	log      *logger.Logger
	order    []string
	features map[string]*Feature
}

// NewManager builds an empty registry bound to an attached process and the
// active profile.
func NewManager(proc process.Process, profile Profile) *Manager {
	return &Manager{
		proc:     proc,
		profile:  profile,
		log:      logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "cheat-manager")),
		features: make(map[string]*Feature),
	}
}

// Profile returns the active game profile.
func (m *Manager) Profile() Profile {
	return m.profile
}

// Register adds a feature in the OFF state. Identifiers are exact-match
// keys; registering an identifier twice is last-write-wins and keeps the
// original menu position.
func (m *Manager) Register(identifier string, op Operation) {
	if _, exists := m.features[identifier]; !exists {
		m.order = append(m.order, identifier)
	}
	m.features[identifier] = &Feature{
		Identifier: identifier,
		Label:      displayLabel(identifier),
		op:         op,
	}
}

// Features returns the registered features in registration order, which is
// also menu display order.
func (m *Manager) Features() []*Feature {
	out := make([]*Feature, 0, len(m.order))
	for _, identifier := range m.order {
		out = append(out, m.features[identifier])
	}
	return out
}

// Toggle flips the feature's state. The operation runs first with the
// tentative new state; only when it succeeds does the enabled flag flip,
// so a failed toggle leaves the feature exactly as it was.
func (m *Manager) Toggle(identifier string) error {
	feature, ok := m.features[identifier]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, identifier)
	}

	next := !feature.enabled
	if err := feature.op.Apply(m.proc, m.profile, next); err != nil {
		return fmt.Errorf("toggle %s: %w", feature.Label, err)
	}
	feature.enabled = next

	state := "OFF"
	if next {
		state = "ON"
	}
	if infoEnabled() {
		m.log.Infoln(feature.Label, "->", state)
	}
	return nil
}
