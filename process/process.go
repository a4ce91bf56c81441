// Package process defines the interface the trainer uses to talk to an
// attached game process. Platform implementations live in their own
// packages (process_linux); the trainer core only depends on this package.
package process

import "errors"

var (
	// ErrProcessNotOpen is returned when an operation requiring an open
	// process is attempted before Open or after Close.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrAddressNotMapped is returned when an address falls outside every
	// mapped region of the target process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrRegionNotWritable is returned when a write targets a mapped
	// region without write permission.
	ErrRegionNotWritable = errors.New("memory region not writable")

	// ErrInvalidPointer is returned when a pointer hop reads NULL or an
	// unmapped value.
	ErrInvalidPointer = errors.New("invalid pointer read")
)

// ProcessID identifies a process on the host system.
type ProcessID int

// Process is the handle the trainer holds on the attached game.
type Process interface {
	// Open attaches to the process with the given PID.
	Open(pid ProcessID) error

	// Close detaches and releases resources.
	Close() error

	// PID returns the attached process ID, zero when not open.
	PID() ProcessID

	// UpdateMemoryMap refreshes the cached memory map.
	UpdateMemoryMap() error

	// IsValidAddress reports whether addr is inside a readable mapped region.
	IsValidAddress(addr MemoryAddress) bool

	// ReadMemory reads size bytes at addr.
	ReadMemory(addr MemoryAddress, size MemorySize) ([]byte, error)

	// WriteMemory writes data at addr.
	WriteMemory(addr MemoryAddress, data []byte) error
}
