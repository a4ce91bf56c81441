//go:build linux

package memory_map

import (
	"fmt"
	"os"
)

// Read parses the memory map of a live process from /proc/pid/maps.
func Read(pid int) ([]Region, error) {
	file, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}
