package subnetcalc

import (
	"fmt"
	"net"
	"strconv"

	"github.com/ccnalabs/subnetcalc/util/ip"
)

// BinaryToDecimal converts a 32-character binary string (no separators) to a
// dotted-decimal IPv4 address.
func BinaryToDecimal(binary string) (string, error) {
	if len(binary) != ipv4Bits {
		return "", fmt.Errorf("binary form %q must be %d characters: %w", binary, ipv4Bits, ErrInvalidInput)
	}
	value, err := strconv.ParseUint(binary, 2, ipv4Bits)
	if err != nil {
		return "", fmt.Errorf("parsing binary form %q: %w", binary, ErrInvalidInput)
	}
	return ip.Uint32ToIPv4(uint32(value)).String(), nil
}

// DecimalToBinary converts a dotted-decimal IPv4 address to its
// 32-character binary string, with no separators.
func DecimalToBinary(decimal string) (string, error) {
	nn, err := parseIPv4(decimal)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%032b", nn), nil
}

// MaskBits returns the number of one bits in a dotted-decimal IPv4 address
// or mask.
func MaskBits(mask string) (int, error) {
	nn, err := parseIPv4(mask)
	if err != nil {
		return 0, err
	}
	return ip.OnesCount(nn), nil
}

// NetworkAddress returns the network address of a host under the given
// dotted-decimal mask.
func NetworkAddress(hostAddr, mask string) (string, error) {
	host, err := parseIPv4(hostAddr)
	if err != nil {
		return "", err
	}
	m, err := parseIPv4(mask)
	if err != nil {
		return "", err
	}
	return ip.Uint32ToIPv4(host & m).String(), nil
}

// SubnetMask returns the dotted-decimal IPv4 mask for a prefix length.
func SubnetMask(prefix int) (string, error) {
	if prefix < 0 || prefix > ipv4Bits {
		return "", fmt.Errorf("prefix /%d out of range [0,32]: %w", prefix, ErrInvalidInput)
	}
	return ip.DottedMask(prefix), nil
}

// NumSubnets returns the number of subnets produced by borrowing bits.
func NumSubnets(bits int) int {
	return 1 << uint(bits)
}

// NumHosts returns the usable hosts afforded by bits host bits, under the
// subtract-2 convention. bits must be at least 1.
func NumHosts(bits int) int {
	return 1<<uint(bits) - 2
}

// SubnetInfo reports the addressing details of re-masking a host's network
// with a longer mask.
type SubnetInfo struct {
	OriginalMaskBits int    `json:"original_mask_bits"`
	NewMaskBits      int    `json:"new_mask_bits"`
	BorrowedBits     int    `json:"borrowed_bits"`
	Subnets          int    `json:"subnets"`
	HostBits         int    `json:"host_bits"`
	UsableHosts      int    `json:"usable_hosts"`
	Network          string `json:"network"`
	FirstHost        string `json:"first_host"`
	LastHost         string `json:"last_host"`
	Broadcast        string `json:"broadcast"`
}

// SubnetFromNewMask reports the subnet a host lands in when its original
// mask is extended to newMask, along with the borrow arithmetic relating the
// two masks. newMask must not be shorter than origMask.
func SubnetFromNewMask(hostAddr, origMask, newMask string) (SubnetInfo, error) {
	host, err := parseIPv4(hostAddr)
	if err != nil {
		return SubnetInfo{}, err
	}
	origBits, err := MaskBits(origMask)
	if err != nil {
		return SubnetInfo{}, err
	}
	newBits, err := MaskBits(newMask)
	if err != nil {
		return SubnetInfo{}, err
	}
	if newBits < origBits {
		return SubnetInfo{}, fmt.Errorf("new mask /%d shorter than original /%d: %w", newBits, origBits, ErrInvalidInput)
	}

	alloc := newAllocation(host&ip.MaskUint32(newBits), newBits)
	return SubnetInfo{
		OriginalMaskBits: origBits,
		NewMaskBits:      newBits,
		BorrowedBits:     newBits - origBits,
		Subnets:          NumSubnets(newBits - origBits),
		HostBits:         ipv4Bits - newBits,
		UsableHosts:      int(alloc.UsableHosts),
		Network:          alloc.Network,
		FirstHost:        alloc.FirstHost,
		LastHost:         alloc.LastHost,
		Broadcast:        alloc.Broadcast,
	}, nil
}

func parseIPv4(addr string) (uint32, error) {
	parsed := net.ParseIP(addr)
	if parsed == nil {
		return 0, fmt.Errorf("parsing address %q: %w", addr, ErrInvalidInput)
	}
	nn, err := ip.IPv4ToUint32(parsed)
	if err != nil {
		return 0, fmt.Errorf("address %q is not IPv4: %w", addr, ErrInvalidInput)
	}
	return nn, nil
}
