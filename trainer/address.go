// Package trainer holds the cheat-feature registry and toggle state
// machine for the PowerWash Simulator trainer.
package trainer

import (
	"fmt"
	"strings"

	"washtrainer/process"
)

// Address describes a static memory address and an optional pointer-offset
// chain. Values are immutable once constructed and shared read-only by any
// number of features.
type Address struct {
	Base    uint64
	Offsets []uint64
}

// IsPlaceholder reports whether the address is still the zero placeholder
// from an unverified profile entry. Operations dry-run against these.
func (a Address) IsPlaceholder() bool {
	return a.Base == 0
}

// Describe renders the address chain deterministically, e.g.
// "0x00400000 -> 0x00000028 -> 0x00000FC0". Base and offsets are printed
// as 8-digit uppercase hex so logs stay diffable across runs.
func (a Address) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "0x%08X", a.Base)
	for _, offset := range a.Offsets {
		fmt.Fprintf(&sb, " -> 0x%08X", offset)
	}
	return sb.String()
}

// resolve turns the descriptor into a concrete address in the attached
// process, walking the pointer chain when offsets are present.
func (a Address) resolve(proc process.Process) (process.MemoryAddress, error) {
	if len(a.Offsets) == 0 {
		return process.MemoryAddress(a.Base), nil
	}
	offsets := make([]process.MemorySize, len(a.Offsets))
	for i, offset := range a.Offsets {
		offsets[i] = process.MemorySize(offset)
	}
	return process.ResolveChain(proc, process.MemoryAddress(a.Base), offsets...)
}
