// Package memory_map reads and models the memory layout of a process.
package memory_map

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Region is one mapped range in a process's address space.
type Region struct {
	Address uint64 // start of the region
	Size    uint   // length in bytes
	Perms   string // e.g. "rw-p"
	Path    string // backing file or pseudo-path, may be empty
}

func (r Region) String() string {
	return fmt.Sprintf("Address: %x, Size: %d, Perms: %s", r.Address, r.Size, r.Perms)
}

func (r Region) IsReadable() bool {
	return len(r.Perms) > 0 && r.Perms[0] == 'r'
}

func (r Region) IsWritable() bool {
	return len(r.Perms) > 1 && r.Perms[1] == 'w'
}

func (r Region) IsExecutable() bool {
	return len(r.Perms) > 2 && r.Perms[2] == 'x'
}

// RegionFor returns the region containing addr, or nil. The slice must be
// sorted by Address, as Parse and Read produce it.
func RegionFor(addr uint64, regions []Region) *Region {
	i := sort.Search(len(regions), func(i int) bool {
		return regions[i].Address+uint64(regions[i].Size) > addr
	})
	if i < len(regions) && regions[i].Address <= addr {
		return &regions[i]
	}
	return nil
}

// Parse reads /proc/pid/maps formatted lines and returns the regions
// sorted by address. Unparseable lines are skipped.
func Parse(r io.Reader) ([]Region, error) {
	var regions []Region

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		// address range, e.g. "00400000-0040b000"
		addrRange := strings.Split(fields[0], "-")
		if len(addrRange) != 2 {
			continue
		}
		start, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil || end < start {
			continue
		}

		region := Region{
			Address: start,
			Size:    uint(end - start),
			Perms:   fields[1],
		}
		if len(fields) >= 6 {
			region.Path = fields[5]
		}
		regions = append(regions, region)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Address < regions[j].Address
	})
	return regions, nil
}
