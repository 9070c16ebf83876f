/*
Package subnetcalc provides stateless IPv4/IPv6 subnetting calculators:
VLSM allocation, borrowed-bit subnet enumeration, usable-host expansion and
IPv6 /64 subnet derivation.

To pack subnets of differing host requirements into a parent block:

	allocs, err := subnetcalc.Allocate("192.168.1.0", 24, []int{50, 20, 10})

To sweep the borrow options available from a base prefix:

	rows, err := subnetcalc.EnumerateBorrowOptions("192.168.100.0", 24)

To list every usable host address of a subnet:

	hosts, err := subnetcalc.ExpandHosts("192.168.1.0/26")

To derive sibling /64 blocks from a starting IPv6 subnet:

	subnets, err := subnetcalc.DeriveSubnets("2001:db8:acad:c8::/64", 4)

All operations are pure computations with no shared state and are safe to
call concurrently. Failures are reported through the sentinel errors
ErrInvalidInput, ErrAddressSpaceExhausted and ErrSegmentRangeExceeded,
matchable with errors.Is.
*/
package subnetcalc
