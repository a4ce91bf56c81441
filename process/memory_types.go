package process

import "fmt"

// MemoryAddress is an address within the target process.
type MemoryAddress uint64

func (a MemoryAddress) String() string {
	return fmt.Sprintf("0x%X", uint64(a))
}

// MemorySize is a byte count within the target process.
type MemorySize uint

func (s MemorySize) String() string {
	return fmt.Sprintf("%d bytes", uint(s))
}

// PointerSize is the width of a pointer in the target process. The trainer
// targets 64-bit game builds only.
const PointerSize = MemorySize(8)
