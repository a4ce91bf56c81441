package process

import (
	"encoding/binary"
	"fmt"
)

// Typed accessors over the raw Process read/write primitives. Game values
// are little-endian, matching the x86-64 builds the trainer targets.

// ReadUint32 reads an unsigned 32-bit value at addr.
func ReadUint32(p Process, addr MemoryAddress) (uint32, error) {
	data, err := p.ReadMemory(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// WriteUint32 writes an unsigned 32-bit value at addr.
func WriteUint32(p Process, addr MemoryAddress, value uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	return p.WriteMemory(addr, buf[:])
}

// ReadPointer reads a pointer-width value at addr.
func ReadPointer(p Process, addr MemoryAddress) (MemoryAddress, error) {
	data, err := p.ReadMemory(addr, PointerSize)
	if err != nil {
		return 0, err
	}
	return MemoryAddress(binary.LittleEndian.Uint64(data)), nil
}

// ResolveChain walks a multi-level pointer chain and returns the final
// address. Every offset except the last is treated as a pointer field to
// dereference; the last is a raw byte offset into the final struct.
//
// Example:
//
//	// base -> [ +0 ]ptrA -> [ +24 ]ptrB, value lives at ptrB+504
//	addr, err := process.ResolveChain(proc, base, 0, 24, 504)
//
// With no offsets the base itself is returned.
func ResolveChain(p Process, base MemoryAddress, offsets ...MemorySize) (MemoryAddress, error) {
	if len(offsets) == 0 {
		return base, nil
	}

	current := base
	for i := 0; i < len(offsets)-1; i++ {
		hop := current + MemoryAddress(offsets[i])
		ptr, err := ReadPointer(p, hop)
		if err != nil {
			return 0, fmt.Errorf("ResolveChain: read pointer at step %d (addr=%s): %w", i, hop, err)
		}
		if ptr == 0 {
			return 0, fmt.Errorf("ResolveChain: %w: NULL at step %d (addr=%s)", ErrInvalidPointer, i, hop)
		}
		if !p.IsValidAddress(ptr) {
			return 0, fmt.Errorf("ResolveChain: %w: %s at step %d (addr=%s)", ErrInvalidPointer, ptr, i, hop)
		}
		current = ptr
	}

	final := current + MemoryAddress(offsets[len(offsets)-1])
	if !p.IsValidAddress(final) {
		return 0, fmt.Errorf("ResolveChain: %w: final address %s", ErrAddressNotMapped, final)
	}
	return final, nil
}
