package trainer

import (
	"fmt"
	"strings"

	"washtrainer/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// Operation is the memory modification a cheat stands for. Apply is called
// exactly once per toggle with the tentative new state; it must either
// fully take effect and return nil, or leave the target untouched and
// return the error. There is one implementation per kind of operation:
// freeze a value, override a flag, patch a function.
type Operation interface {
	Apply(proc process.Process, profile Profile, enabled bool) error
}

// Feature is one user-toggleable cheat. Its enabled state is owned by the
// Manager and changes only through Manager.Toggle, so a state change is
// always paired with an Operation invocation.
type Feature struct {
	Identifier string
	Label      string

	enabled bool
	op      Operation
}

// Enabled reports the last successfully applied state.
func (f *Feature) Enabled() bool {
	return f.enabled
}

// Display names for the predefined cheat identifiers.
var cheatNames = map[string]string{
	"soap":          "Infinite Soap",
	"instant_clean": "Instant Clean",
	"flight":        "Flight",
	"dirt_esp":      "Dirt ESP",
}

// displayLabel resolves the menu label for an identifier, title-casing
// unknown ones so freshly added cheats still render acceptably.
func displayLabel(identifier string) string {
	if label, ok := cheatNames[identifier]; ok {
		return label
	}
	words := strings.Split(identifier, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func opLogger(identifier string) *logger.Logger {
	return logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "cheat-"+identifier))
}

// Pinned soap quantity written while the freeze is active.
const soapPinnedAmount = 9999

// RegisterDefaults registers the four predefined cheats in menu order.
func RegisterDefaults(m *Manager) {
	m.Register("soap", NewFreezeOp("soap", soapPinnedAmount))
	m.Register("instant_clean", NewHookOp("instant_clean"))
	m.Register("flight", NewOverrideOp("flight", 1, 0))
	m.Register("dirt_esp", NewHookOp("dirt_esp"))
}

// freezeOp pins a data value: enabling snapshots the current value and
// writes the pinned one, disabling restores the snapshot.
type freezeOp struct {
	key       string
	pinned    uint32
	saved     uint32
	haveSaved bool
	log       *logger.Logger
}

// NewFreezeOp builds a freeze-value operation over the profile's base
// address for key.
func NewFreezeOp(key string, pinned uint32) Operation {
	return &freezeOp{key: key, pinned: pinned, log: opLogger(key)}
}

func (o *freezeOp) Apply(proc process.Process, profile Profile, enabled bool) error {
	addr, err := profile.BaseAddress(o.key)
	if err != nil {
		return err
	}
	if debugEnabled() {
		o.log.Debugln(o.key, "address chain:", addr.Describe())
	}

	verb := "freeze"
	if !enabled {
		verb = "release"
	}
	if addr.IsPlaceholder() {
		if infoEnabled() {
			o.log.Infoln("Would", verb, "value at", addr.Describe(), "for process", proc.PID())
		}
		return nil
	}

	target, err := addr.resolve(proc)
	if err != nil {
		return fmt.Errorf("%s: resolve %s: %w", o.key, addr.Describe(), err)
	}

	if enabled {
		current, err := process.ReadUint32(proc, target)
		if err != nil {
			return fmt.Errorf("%s: read current value at %s: %w", o.key, target, err)
		}
		if err := process.WriteUint32(proc, target, o.pinned); err != nil {
			return fmt.Errorf("%s: %s value at %s: %w", o.key, verb, target, err)
		}
		o.saved, o.haveSaved = current, true
		return nil
	}

	if !o.haveSaved {
		return nil
	}
	if err := process.WriteUint32(proc, target, o.saved); err != nil {
		return fmt.Errorf("%s: %s value at %s: %w", o.key, verb, target, err)
	}
	o.haveSaved = false
	return nil
}

// overrideOp writes a fixed on/off value into a data address, e.g. a
// boolean flag the game polls continuously.
type overrideOp struct {
	key      string
	onValue  uint32
	offValue uint32
	log      *logger.Logger
}

// NewOverrideOp builds a flag-override operation over the profile's base
// address for key.
func NewOverrideOp(key string, onValue, offValue uint32) Operation {
	return &overrideOp{key: key, onValue: onValue, offValue: offValue, log: opLogger(key)}
}

func (o *overrideOp) Apply(proc process.Process, profile Profile, enabled bool) error {
	addr, err := profile.BaseAddress(o.key)
	if err != nil {
		return err
	}
	if debugEnabled() {
		o.log.Debugln(o.key, "address chain:", addr.Describe())
	}

	value := o.offValue
	if enabled {
		value = o.onValue
	}
	if addr.IsPlaceholder() {
		if infoEnabled() {
			o.log.Infoln("Would set flag to", value, "at", addr.Describe(), "for process", proc.PID())
		}
		return nil
	}

	target, err := addr.resolve(proc)
	if err != nil {
		return fmt.Errorf("%s: resolve %s: %w", o.key, addr.Describe(), err)
	}
	if err := process.WriteUint32(proc, target, value); err != nil {
		return fmt.Errorf("%s: set flag at %s: %w", o.key, target, err)
	}
	return nil
}

// hookOp targets a function in game code. Installing patches is out of
// scope for now, so the operation resolves its target and logs what a
// patch would do; the kind stays separate from the data operations so a
// real patch/unpatch implementation slots in here later.
type hookOp struct {
	key string
	log *logger.Logger
}

// NewHookOp builds a code-hook operation over the profile's function hook
// for key.
func NewHookOp(key string) Operation {
	return &hookOp{key: key, log: opLogger(key)}
}

func (o *hookOp) Apply(proc process.Process, profile Profile, enabled bool) error {
	hook, err := profile.FunctionHook(o.key)
	if err != nil {
		return err
	}
	if debugEnabled() {
		o.log.Debugln(o.key, "hook chain:", hook.Describe())
	}

	verb := "install"
	if !enabled {
		verb = "remove"
	}
	if infoEnabled() {
		o.log.Infoln("Would", verb, "hook at", hook.Describe(), "for process", proc.PID())
	}
	return nil
}
