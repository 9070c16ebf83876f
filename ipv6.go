package subnetcalc

import (
	"fmt"
	"net"
	"strings"

	"github.com/ccnalabs/subnetcalc/util/ip"
)

const (
	ipv6Bits = 128

	// derivedHextet is the segment incremented by DeriveSubnets, matching
	// /48 site to /64 subnet delegation.
	derivedHextet = 3

	maxHextet = 0xffff
)

// DeriveSubnets produces count sibling /64 blocks from the starting block by
// incrementing its fourth hextet, returning compressed <address>/64 strings
// in increment order. The starting block is parsed non-strictly; host bits
// are masked off. Incrementing past ffff fails the whole call with
// ErrSegmentRangeExceeded and no results are returned.
func DeriveSubnets(cidr string, count int) ([]string, error) {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("parsing subnet %q: %w", cidr, ErrInvalidInput)
	}
	if count < 0 {
		return nil, fmt.Errorf("subnet count %d must not be negative: %w", count, ErrInvalidInput)
	}
	hextets, err := ip.Hextets(network.IP)
	if err != nil {
		return nil, fmt.Errorf("subnet %q is not IPv6: %w", cidr, ErrInvalidInput)
	}

	derived := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		segment := uint32(hextets[derivedHextet]) + uint32(i)
		if segment > maxHextet {
			return nil, fmt.Errorf("hextet %x+%d overflows 16 bits: %w",
				hextets[derivedHextet], i, ErrSegmentRangeExceeded)
		}
		next := hextets
		next[derivedHextet] = uint16(segment)
		derived = append(derived, ip.FromHextets(next).String()+"/64")
	}
	return derived, nil
}

// SplitSubnets halves the starting IPv6 block by extending its prefix one bit
// and returns the first count resulting sub-blocks (at most two) as
// compressed CIDR strings.
func SplitSubnets(cidr string, count int) ([]string, error) {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("parsing subnet %q: %w", cidr, ErrInvalidInput)
	}
	if network.IP.To4() != nil {
		return nil, fmt.Errorf("subnet %q is not IPv6: %w", cidr, ErrInvalidInput)
	}
	if count < 0 {
		return nil, fmt.Errorf("subnet count %d must not be negative: %w", count, ErrInvalidInput)
	}

	ones, _ := network.Mask.Size()
	newPrefix := ones + 1
	if newPrefix > ipv6Bits {
		return nil, fmt.Errorf("cannot split a /%d further: %w", ones, ErrInvalidInput)
	}

	subnets := []string{fmt.Sprintf("%s/%d", network.IP, newPrefix)}
	if count <= 1 {
		return subnets[:count], nil
	}
	upper, err := ip.NextSubnetIPv6(network.IP, newPrefix)
	if err != nil {
		return nil, fmt.Errorf("subnet %q: %w", cidr, ErrInvalidInput)
	}
	return append(subnets, fmt.Sprintf("%s/%d", upper, newPrefix)), nil
}

// CompressIPv6 returns the canonical compressed form of a bare IPv6 address.
func CompressIPv6(addr string) (string, error) {
	parsed, err := parseBareIPv6(addr)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// DecompressIPv6 returns the fully-expanded form of a bare IPv6 address:
// eight colon-separated four-digit hextets.
func DecompressIPv6(addr string) (string, error) {
	parsed, err := parseBareIPv6(addr)
	if err != nil {
		return "", err
	}
	hextets, err := ip.Hextets(parsed)
	if err != nil {
		return "", fmt.Errorf("address %q is not IPv6: %w", addr, ErrInvalidInput)
	}

	groups := make([]string, len(hextets))
	for i, h := range hextets {
		groups[i] = fmt.Sprintf("%04x", h)
	}
	return strings.Join(groups, ":"), nil
}

func parseBareIPv6(addr string) (net.IP, error) {
	if strings.Contains(addr, "/") {
		return nil, fmt.Errorf("address %q must not carry a prefix suffix: %w", addr, ErrInvalidInput)
	}
	parsed := net.ParseIP(addr)
	if parsed == nil || parsed.To4() != nil {
		return nil, fmt.Errorf("parsing address %q: %w", addr, ErrInvalidInput)
	}
	return parsed, nil
}
