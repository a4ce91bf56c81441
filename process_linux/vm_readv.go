//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"washtrainer/process"

	"golang.org/x/sys/unix"
)

// vmRead reads bytesToRead bytes at remoteAddr in the target process using
// the process_vm_readv syscall.
func vmRead(
	pid process.ProcessID,
	remoteAddr process.MemoryAddress,
	bytesToRead process.MemorySize,
) ([]byte, error) {
	localBuf := make([]byte, bytesToRead)

	localIov := unix.Iovec{
		Base: &localBuf[0],
		Len:  uint64(bytesToRead),
	}
	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  int(bytesToRead),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_READV,
		uintptr(pid),
		uintptr(unsafe.Pointer(&localIov)),
		uintptr(1),
		uintptr(unsafe.Pointer(&remoteIov)),
		uintptr(1),
		uintptr(0), // flags, reserved
	)
	if errno != 0 {
		return nil, fmt.Errorf("process_vm_readv failed: %s (errno: %d)", errno.Error(), errno)
	}
	if int(n) != int(bytesToRead) {
		return localBuf[:n], fmt.Errorf("partial read: %d of %d bytes", n, bytesToRead)
	}

	return localBuf, nil
}

// ReadMemory reads memory from the process at the specified address.
func (p *LinuxProcess) ReadMemory(addr process.MemoryAddress, size process.MemorySize) ([]byte, error) {
	p.mu.Lock()
	pid := p.pid
	valid := p.isValidAddressInternal(addr)
	p.mu.Unlock()

	if pid == 0 {
		return nil, process.ErrProcessNotOpen
	}
	if !valid {
		return nil, fmt.Errorf("read at %s: %w", addr, process.ErrAddressNotMapped)
	}

	data, err := vmRead(pid, addr, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read process memory: %w", err)
	}

	return data, nil
}
