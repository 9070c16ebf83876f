package subnetcalc

import (
	"fmt"
	"math/bits"
	"net"
	"sort"

	"github.com/ccnalabs/subnetcalc/util/ip"
)

const ipv4Bits = 32

// Allocation describes one subnet carved out of a parent block by Allocate.
type Allocation struct {
	Network      string `json:"network"`
	PrefixLength int    `json:"prefix_length"`
	CIDR         string `json:"cidr"`
	FirstHost    string `json:"first_host"`
	LastHost     string `json:"last_host"`
	Broadcast    string `json:"broadcast"`
	TotalHosts   uint64 `json:"total_hosts"`
	UsableHosts  uint64 `json:"usable_hosts"`
}

// Allocate packs one subnet per host requirement into the parent block,
// assigning the smallest sufficient block to each requirement in descending
// order. Blocks are placed back-to-back from the parent's network address;
// the cursor is never re-aligned to a power-of-two boundary. Results are
// returned in the sorted (descending-hosts) order, not the caller's input
// order, and requiredHosts itself is never modified.
//
// Sizing follows the subtract-2 convention: a requirement of h usable hosts
// receives the smallest block with at least h+2 total addresses, so a
// zero-host requirement still consumes a two-address block.
//
// The call is atomic: if any block would extend past the parent's last
// address, ErrAddressSpaceExhausted is returned and no results are.
func Allocate(parentAddr string, parentPrefix int, requiredHosts []int) ([]Allocation, error) {
	parsed := net.ParseIP(parentAddr)
	if parsed == nil || parsed.To4() == nil {
		return nil, fmt.Errorf("parsing parent address %q: %w", parentAddr, ErrInvalidInput)
	}
	if parentPrefix < 0 || parentPrefix > ipv4Bits {
		return nil, fmt.Errorf("parent prefix /%d out of range [0,32]: %w", parentPrefix, ErrInvalidInput)
	}
	addr, err := ip.IPv4ToUint32(parsed)
	if err != nil {
		return nil, fmt.Errorf("parsing parent address %q: %w", parentAddr, ErrInvalidInput)
	}

	mask := ip.MaskUint32(parentPrefix)
	parentNetwork := addr & mask
	parentLast := uint64(parentNetwork) + (uint64(1) << uint(ipv4Bits-parentPrefix)) - 1

	// Sort a copy so the caller's slice stays untouched.
	sorted := make([]int, len(requiredHosts))
	copy(sorted, requiredHosts)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	allocs := make([]Allocation, 0, len(sorted))
	cursor := uint64(parentNetwork)
	for _, hosts := range sorted {
		if hosts < 0 {
			return nil, fmt.Errorf("negative host requirement %d: %w", hosts, ErrInvalidInput)
		}
		// Smallest n with 2^n >= hosts+2; never below one host bit.
		hostBits := bits.Len(uint(hosts) + 1)
		if hostBits > ipv4Bits {
			return nil, fmt.Errorf("%d hosts exceed the IPv4 address space: %w", hosts, ErrAddressSpaceExhausted)
		}
		size := uint64(1) << uint(hostBits)
		last := cursor + size - 1
		if last > parentLast {
			return nil, fmt.Errorf("%d hosts need a /%d block past the parent range: %w",
				hosts, ipv4Bits-hostBits, ErrAddressSpaceExhausted)
		}
		allocs = append(allocs, newAllocation(uint32(cursor), ipv4Bits-hostBits))
		cursor = last + 1
	}
	return allocs, nil
}

// newAllocation derives the addressing report for the block at network with
// the given prefix length. First and last host are network+1 and broadcast-1
// uniformly; blocks with two or fewer total addresses have no usable hosts.
func newAllocation(network uint32, prefix int) Allocation {
	total := uint64(1) << uint(ipv4Bits-prefix)
	var usable uint64
	if total > 2 {
		usable = total - 2
	}
	broadcast := network + uint32(total-1)
	networkIP := ip.Uint32ToIPv4(network)
	return Allocation{
		Network:      networkIP.String(),
		PrefixLength: prefix,
		CIDR:         fmt.Sprintf("%s/%d", networkIP, prefix),
		FirstHost:    ip.Uint32ToIPv4(network + 1).String(),
		LastHost:     ip.Uint32ToIPv4(broadcast - 1).String(),
		Broadcast:    ip.Uint32ToIPv4(broadcast).String(),
		TotalHosts:   total,
		UsableHosts:  usable,
	}
}
