package trainer

import (
	"encoding/binary"
	"errors"
	"testing"

	"washtrainer/process"
)

// fakeProc serves a single writable region of memory for operation tests.
type fakeProc struct {
	base     process.MemoryAddress
	data     []byte
	writeErr error
	writes   int
}

func (f *fakeProc) Open(pid process.ProcessID) error { return nil }
func (f *fakeProc) Close() error                     { return nil }
func (f *fakeProc) PID() process.ProcessID           { return 4242 }
func (f *fakeProc) UpdateMemoryMap() error           { return nil }

func (f *fakeProc) IsValidAddress(addr process.MemoryAddress) bool {
	return addr >= f.base && addr < f.base+process.MemoryAddress(len(f.data))
}

func (f *fakeProc) ReadMemory(addr process.MemoryAddress, size process.MemorySize) ([]byte, error) {
	offset := int(addr - f.base)
	if addr < f.base || offset+int(size) > len(f.data) {
		return nil, process.ErrAddressNotMapped
	}
	out := make([]byte, size)
	copy(out, f.data[offset:])
	return out, nil
}

func (f *fakeProc) WriteMemory(addr process.MemoryAddress, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	offset := int(addr - f.base)
	if addr < f.base || offset+len(data) > len(f.data) {
		return process.ErrAddressNotMapped
	}
	copy(f.data[offset:], data)
	f.writes++
	return nil
}

func (f *fakeProc) uint32At(addr process.MemoryAddress) uint32 {
	return binary.LittleEndian.Uint32(f.data[addr-f.base:])
}

// liveProfile is a profile with a real (non-placeholder) soap address and a
// flight flag so operations exercise the write path.
func liveProfile() Profile {
	return Profile{
		Name:        "PowerWash Simulator",
		ProcessName: "PowerWashSimulator.exe",
		BaseAddresses: map[string]Address{
			"soap":   {Base: 0x5000},
			"flight": {Base: 0x5008},
		},
		FunctionHooks: map[string]Address{
			"instant_clean": {Base: 0x5010},
		},
	}
}

func liveProc() *fakeProc {
	f := &fakeProc{base: 0x5000, data: make([]byte, 0x20)}
	binary.LittleEndian.PutUint32(f.data[0:], 123) // current soap amount
	return f
}

func TestFreezeOpPinsAndRestores(t *testing.T) {
	proc := liveProc()
	profile := liveProfile()
	op := NewFreezeOp("soap", soapPinnedAmount)

	if err := op.Apply(proc, profile, true); err != nil {
		t.Fatal(err)
	}
	if got := proc.uint32At(0x5000); got != soapPinnedAmount {
		t.Fatalf("expected pinned value %d - got %d", soapPinnedAmount, got)
	}

	if err := op.Apply(proc, profile, false); err != nil {
		t.Fatal(err)
	}
	if got := proc.uint32At(0x5000); got != 123 {
		t.Fatalf("expected original value restored - got %d", got)
	}
}

func TestFreezeOpDisableBeforeEnableIsNoop(t *testing.T) {
	proc := liveProc()
	op := NewFreezeOp("soap", soapPinnedAmount)

	if err := op.Apply(proc, liveProfile(), false); err != nil {
		t.Fatal(err)
	}
	if proc.writes != 0 {
		t.Fatalf("expected no writes without a snapshot - got %d", proc.writes)
	}
}

func TestFreezeOpWriteFailureSurfaces(t *testing.T) {
	proc := liveProc()
	proc.writeErr = process.ErrRegionNotWritable
	op := NewFreezeOp("soap", soapPinnedAmount)

	err := op.Apply(proc, liveProfile(), true)
	if !errors.Is(err, process.ErrRegionNotWritable) {
		t.Fatalf("expected ErrRegionNotWritable - got %v", err)
	}
}

func TestOverrideOpWritesOnAndOffValues(t *testing.T) {
	proc := liveProc()
	profile := liveProfile()
	op := NewOverrideOp("flight", 1, 0)

	if err := op.Apply(proc, profile, true); err != nil {
		t.Fatal(err)
	}
	if got := proc.uint32At(0x5008); got != 1 {
		t.Fatalf("expected flight flag 1 - got %d", got)
	}

	if err := op.Apply(proc, profile, false); err != nil {
		t.Fatal(err)
	}
	if got := proc.uint32At(0x5008); got != 0 {
		t.Fatalf("expected flight flag 0 - got %d", got)
	}
}

func TestHookOpNeverWrites(t *testing.T) {
	proc := liveProc()
	op := NewHookOp("instant_clean")

	if err := op.Apply(proc, liveProfile(), true); err != nil {
		t.Fatal(err)
	}
	if err := op.Apply(proc, liveProfile(), false); err != nil {
		t.Fatal(err)
	}
	if proc.writes != 0 {
		t.Fatalf("hook operations must not touch memory - got %d writes", proc.writes)
	}
}

func TestPlaceholderAddressDryRuns(t *testing.T) {
	proc := liveProc()
	profile, err := GetProfile("v1") // all placeholder zeros
	if err != nil {
		t.Fatal(err)
	}

	for _, op := range []Operation{
		NewFreezeOp("soap", soapPinnedAmount),
		NewOverrideOp("flight", 1, 0),
		NewHookOp("dirt_esp"),
	} {
		if err := op.Apply(proc, profile, true); err != nil {
			t.Fatal(err)
		}
	}
	if proc.writes != 0 {
		t.Fatalf("placeholder addresses must not be written - got %d writes", proc.writes)
	}
}

func TestOperationsFailLoudlyOnMissingKey(t *testing.T) {
	proc := liveProc()
	profile := liveProfile()

	err := NewFreezeOp("dirt_level", 0).Apply(proc, profile, true)
	if !errors.Is(err, ErrMissingAddress) {
		t.Fatalf("expected ErrMissingAddress - got %v", err)
	}

	err = NewHookOp("dirt_esp").Apply(proc, profile, true)
	if !errors.Is(err, ErrMissingAddress) {
		t.Fatalf("expected ErrMissingAddress - got %v", err)
	}
}

func TestFreezeOpResolvesPointerChain(t *testing.T) {
	proc := liveProc()
	// pointer at base+0x18 points back into the region; value at +0x4
	binary.LittleEndian.PutUint64(proc.data[0x18:], 0x5008)
	binary.LittleEndian.PutUint32(proc.data[0xC:], 777) // 0x5008 + 0x4

	profile := liveProfile()
	profile.BaseAddresses["soap"] = Address{Base: 0x5018, Offsets: []uint64{0x0, 0x4}}

	op := NewFreezeOp("soap", soapPinnedAmount)
	if err := op.Apply(proc, profile, true); err != nil {
		t.Fatal(err)
	}
	if got := proc.uint32At(0x500C); got != soapPinnedAmount {
		t.Fatalf("expected pinned value at resolved address - got %d", got)
	}
}
