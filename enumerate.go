package subnetcalc

import (
	"fmt"
	"net"
	"strings"

	"github.com/ccnalabs/subnetcalc/util/ip"
)

// maxBorrowPrefix is the largest prefix the borrow sweep will produce;
// borrowing past /30 leaves no usable host bits.
const maxBorrowPrefix = 30

// BorrowOption is one row of a borrow sweep: the mask, subnet count and
// per-subnet usable hosts that result from borrowing BitsBorrowed bits.
type BorrowOption struct {
	BitsBorrowed int    `json:"bits_borrowed"`
	Mask         string `json:"mask"`
	Subnets      int    `json:"subnets"`
	UsableHosts  int    `json:"usable_hosts"`
}

// EnumerateBorrowOptions lists, for every feasible borrow amount from the
// given base prefix, the resulting mask, number of subnets and usable hosts
// per subnet. Rows are returned in ascending borrow order; a base prefix of
// /30 or longer yields no rows.
//
// baseAddr must be a bare dotted-decimal address with no prefix suffix, and
// basePrefix must lie in [1, 32]; anything else is ErrInvalidInput.
func EnumerateBorrowOptions(baseAddr string, basePrefix int) ([]BorrowOption, error) {
	if strings.Contains(baseAddr, "/") {
		return nil, fmt.Errorf("base address %q must not carry a prefix suffix: %w", baseAddr, ErrInvalidInput)
	}
	parsed := net.ParseIP(baseAddr)
	if parsed == nil || parsed.To4() == nil {
		return nil, fmt.Errorf("parsing base address %q: %w", baseAddr, ErrInvalidInput)
	}
	if basePrefix < 1 || basePrefix > ipv4Bits {
		return nil, fmt.Errorf("base prefix /%d out of range [1,32]: %w", basePrefix, ErrInvalidInput)
	}

	rows := make([]BorrowOption, 0)
	for b := 1; basePrefix+b <= maxBorrowPrefix; b++ {
		newPrefix := basePrefix + b
		rows = append(rows, BorrowOption{
			BitsBorrowed: b,
			Mask:         ip.DottedMask(newPrefix),
			Subnets:      1 << uint(b),
			UsableHosts:  1<<uint(ipv4Bits-newPrefix) - 2,
		})
	}
	return rows, nil
}

// ExpandHosts lists every usable host address of an IPv4 subnet in ascending
// order, excluding the network and broadcast addresses. Subnets of /31 or /32
// have no usable hosts under the subtract-2 convention and yield an empty
// list. A string that does not parse as IPv4 CIDR notation is ErrInvalidInput.
func ExpandHosts(cidr string) ([]string, error) {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("parsing subnet %q: %w", cidr, ErrInvalidInput)
	}
	base := network.IP.To4()
	if base == nil {
		return nil, fmt.Errorf("subnet %q is not IPv4: %w", cidr, ErrInvalidInput)
	}

	ones, _ := network.Mask.Size()
	total := uint64(1) << uint(ipv4Bits-ones)
	if total <= 2 {
		return []string{}, nil
	}

	hosts := make([]string, 0, total-2)
	host := ip.NextIP(base)
	for i := uint64(0); i < total-2; i++ {
		hosts = append(hosts, host.String())
		host = ip.NextIP(host)
	}
	return hosts, nil
}
