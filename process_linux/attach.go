//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"os"

	"washtrainer/process"
)

var (
	// ErrProcessNotFound is returned by Attach when no running process
	// matches the requested name.
	ErrProcessNotFound = errors.New("process not found")

	// ErrProcfsUnavailable is returned by Attach when /proc cannot be
	// enumerated at all.
	ErrProcfsUnavailable = errors.New("procfs unavailable")
)

// Attach locates a running process by name and opens it for memory
// operations. The returned handle stays valid until Close.
func Attach(name string) (process.Process, error) {
	pid, err := OneByName(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no running process named %q", ErrProcessNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrProcfsUnavailable, err)
	}

	proc, err := NewWithPID(pid)
	if err != nil {
		return nil, fmt.Errorf("attach to %q (pid %d): %w", name, pid, err)
	}
	return proc, nil
}
