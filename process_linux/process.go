//go:build linux

// Package process_linux implements process.Process for Linux targets
// using procfs and the process_vm syscalls.
package process_linux

import (
	"fmt"
	"os"
	"sync"

	"washtrainer/process"
	"washtrainer/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

var _ process.Process = (*LinuxProcess)(nil)

// LinuxProcess implements the process.Process interface for Linux systems.
type LinuxProcess struct {
	pid process.ProcessID
	log *logger.Logger
	mm  []memory_map.Region
	mu  sync.Mutex
}

// New creates a new, unopened LinuxProcess.
func New() process.Process {
	return &LinuxProcess{
		log: logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open")),
	}
}

// NewWithPID creates a LinuxProcess and opens it with the given PID.
func NewWithPID(pid process.ProcessID) (process.Process, error) {
	p := &LinuxProcess{}
	if err := p.Open(pid); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *LinuxProcess) Open(pid process.ProcessID) error {
	procPath := fmt.Sprintf("/proc/%d", pid)
	if _, err := os.Stat(procPath); os.IsNotExist(err) {
		return fmt.Errorf("process with PID %d does not exist", pid)
	}

	p.mu.Lock()
	p.pid = pid
	p.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid)))
	p.mu.Unlock()

	if err := p.UpdateMemoryMap(); err != nil {
		return fmt.Errorf("failed to initialize memory map: %w", err)
	}

	p.log.Infoln("Process opened")

	return nil
}

func (p *LinuxProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.log.Infoln("Closing process")

	p.pid = 0
	p.mm = nil
	p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))

	return nil
}

// PID returns the attached process ID.
func (p *LinuxProcess) PID() process.ProcessID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pid
}

func (p *LinuxProcess) UpdateMemoryMap() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pid == 0 {
		return process.ErrProcessNotOpen
	}

	// memory_map.Read returns the regions sorted by address, which
	// regionForInternal relies on.
	mm, err := memory_map.Read(int(p.pid))
	if err != nil {
		return fmt.Errorf("failed to read memory map: %w", err)
	}

	p.mm = mm
	return nil
}

func (p *LinuxProcess) IsValidAddress(addr process.MemoryAddress) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.isValidAddressInternal(addr)
}

// Internal helper that assumes the mutex is already locked.
func (p *LinuxProcess) isValidAddressInternal(addr process.MemoryAddress) bool {
	// Reject the null page and kernel-half addresses outright.
	if addr <= 0x10000 {
		return false
	}
	if addr > 0x700000000000 {
		return false
	}

	if region := memory_map.RegionFor(uint64(addr), p.mm); region != nil {
		return region.IsReadable()
	}

	return false
}

// Internal helper that assumes the mutex is already locked.
func (p *LinuxProcess) regionForInternal(addr process.MemoryAddress) *memory_map.Region {
	return memory_map.RegionFor(uint64(addr), p.mm)
}
