package trainer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedVersion is returned by GetProfile for a version key
	// outside the static profile table.
	ErrUnsupportedVersion = errors.New("unsupported game version")

	// ErrMissingAddress is returned when an operation's feature key has no
	// entry in the active profile. This is a configuration bug, never
	// silently defaulted.
	ErrMissingAddress = errors.New("profile is missing an address entry")
)

// Profile bundles the memory configuration for one supported game build:
// every process name, base address, offset chain and function hook the
// features need. Profiles are static data built at compile time and never
// mutated; centralizing the per-build magic numbers here means porting to
// a new game build touches exactly this file and zero behavioral code.
type Profile struct {
	Name          string
	ProcessName   string
	Description   string
	BaseAddresses map[string]Address
	FunctionHooks map[string]Address
	Notes         string
}

// BaseAddress returns the data address for the feature key, or
// ErrMissingAddress naming the key.
func (p Profile) BaseAddress(key string) (Address, error) {
	addr, ok := p.BaseAddresses[key]
	if !ok {
		return Address{}, fmt.Errorf("%w: base address %q in profile %q", ErrMissingAddress, key, p.Name)
	}
	return addr, nil
}

// FunctionHook returns the code-patch target for the feature key, or
// ErrMissingAddress naming the key.
func (p Profile) FunctionHook(key string) (Address, error) {
	addr, ok := p.FunctionHooks[key]
	if !ok {
		return Address{}, fmt.Errorf("%w: function hook %q in profile %q", ErrMissingAddress, key, p.Name)
	}
	return addr, nil
}

// Known offsets for PowerWash Simulator (v1). These values were carried
// over from the legacy trainer and are kept for backwards compatibility.
var pwsV1Profile = Profile{
	Name:        "PowerWash Simulator",
	ProcessName: "PowerWashSimulator.exe",
	Description: "Original release of PowerWash Simulator",
	BaseAddresses: map[string]Address{
		// TODO: Document the original offsets in more detail once verified.
		"currency":   {},
		"soap":       {},
		"dirt_level": {},
		"flight":     {},
	},
	FunctionHooks: map[string]Address{
		"instant_clean": {},
		"dirt_esp":      {},
	},
	Notes: "Placeholder values copied from the legacy trainer. Replace with" +
		" the actual addresses when porting the old functionality.",
}

// PowerWash Simulator 2 requires updated offsets. The placeholders mark
// where new values go as reverse engineering of the sequel progresses.
var pwsV2Profile = Profile{
	Name:        "PowerWash Simulator 2",
	ProcessName: "PowerWashSimulator2.exe",
	Description: "Sequel release. All offsets below must be verified.",
	BaseAddresses: map[string]Address{
		// TODO: Identify the new base pointer for player currency.
		"currency": {},
		// TODO: Locate the consumable soap quantity structure.
		"soap": {},
		// TODO: Determine the chain that stores the current dirt level.
		"dirt_level": {},
		"flight":     {},
	},
	FunctionHooks: map[string]Address{
		// TODO: Update with the Instant Clean hook once discovered.
		"instant_clean": {},
		"dirt_esp":      {},
	},
	Notes: "All addresses are placeholders. Replace them after locating the" +
		" sequel's structures. Use Address.Describe to log chains during" +
		" development.",
}

var supportedProfiles = map[string]Profile{
	"v1": pwsV1Profile,
	"v2": pwsV2Profile,
}

// GetProfile returns the profile for the requested game version. The key
// is case-insensitive; an unknown key yields ErrUnsupportedVersion naming
// the input.
func GetProfile(version string) (Profile, error) {
	profile, ok := supportedProfiles[strings.ToLower(version)]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	return profile, nil
}

// Versions returns the supported version keys in sorted order.
func Versions() []string {
	keys := make([]string, 0, len(supportedProfiles))
	for key := range supportedProfiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
