//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"washtrainer/process"

	"golang.org/x/sys/unix"
)

// vmWrite writes data at remoteAddr in the target process using the
// process_vm_writev syscall and returns the number of bytes written.
func vmWrite(
	pid process.ProcessID,
	remoteAddr process.MemoryAddress,
	data []byte,
) (int, error) {
	localIov := unix.Iovec{
		Base: &data[0],
		Len:  uint64(len(data)),
	}
	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  len(data),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_WRITEV,
		uintptr(pid),
		uintptr(unsafe.Pointer(&localIov)),
		uintptr(1),
		uintptr(unsafe.Pointer(&remoteIov)),
		uintptr(1),
		uintptr(0), // flags, reserved
	)
	if errno != 0 {
		return 0, fmt.Errorf("process_vm_writev failed: %s (errno: %d)", errno.Error(), errno)
	}

	return int(n), nil
}

// WriteMemory writes data to the process memory at the specified address.
func (p *LinuxProcess) WriteMemory(addr process.MemoryAddress, data []byte) error {
	p.mu.Lock()

	if p.pid == 0 {
		p.mu.Unlock()
		return process.ErrProcessNotOpen
	}
	pid := p.pid

	if !p.isValidAddressInternal(addr) {
		p.mu.Unlock()
		return fmt.Errorf("write at %s: %w", addr, process.ErrAddressNotMapped)
	}
	region := p.regionForInternal(addr)

	p.mu.Unlock()

	if region == nil {
		return fmt.Errorf("write at %s: %w", addr, process.ErrAddressNotMapped)
	}
	if !region.IsWritable() {
		return fmt.Errorf("write at %s: %w", addr, process.ErrRegionNotWritable)
	}

	// Copy so the caller's buffer cannot change mid-syscall.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	written, err := vmWrite(pid, addr, dataCopy)
	if err != nil {
		return fmt.Errorf("failed to write process memory: %w", err)
	}
	if written != len(data) {
		return fmt.Errorf("only wrote %d of %d bytes", written, len(data))
	}

	return nil
}
