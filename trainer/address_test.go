package trainer

import "testing"

func TestAddressDescribeWithOffsets(t *testing.T) {
	addr := Address{Base: 0x00400000, Offsets: []uint64{0x28, 0xFC0}}
	exp := "0x00400000 -> 0x00000028 -> 0x00000FC0"
	if got := addr.Describe(); got != exp {
		t.Fatalf("expected %q - got %q", exp, got)
	}
}

func TestAddressDescribeNoOffsets(t *testing.T) {
	addr := Address{Base: 0x7FFE1000}
	exp := "0x7FFE1000"
	if got := addr.Describe(); got != exp {
		t.Fatalf("expected %q - got %q", exp, got)
	}
}

func TestAddressDescribeZeroPlaceholder(t *testing.T) {
	addr := Address{}
	exp := "0x00000000"
	if got := addr.Describe(); got != exp {
		t.Fatalf("expected %q - got %q", exp, got)
	}
	if !addr.IsPlaceholder() {
		t.Fatal("expected zero base to be a placeholder")
	}
}

func TestAddressDescribeWideBase(t *testing.T) {
	// bases above 32 bits widen past the fixed 8 digits instead of truncating
	addr := Address{Base: 0x140000000, Offsets: []uint64{0x10}}
	exp := "0x140000000 -> 0x00000010"
	if got := addr.Describe(); got != exp {
		t.Fatalf("expected %q - got %q", exp, got)
	}
}

func TestAddressIsPlaceholder(t *testing.T) {
	if (Address{Base: 0x1000}).IsPlaceholder() {
		t.Fatal("non-zero base should not be a placeholder")
	}
	if !(Address{Offsets: []uint64{0x10}}).IsPlaceholder() {
		t.Fatal("zero base with offsets is still a placeholder")
	}
}
