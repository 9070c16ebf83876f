/*
Package ip provides utility functions for working with IPs (net.IP).
*/
package ip

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net"
)

// ErrNotIPv4Error is returned when IPv4 operations is performed on IPv6.
var ErrNotIPv4Error = fmt.Errorf("IP is not IPv4")

// ErrNotIPv6Error is returned when IPv6 operations is performed on IPv4.
var ErrNotIPv6Error = fmt.Errorf("IP is not IPv6")

// ErrBitsNotValid is returned when bits requested is not valid.
var ErrBitsNotValid = fmt.Errorf("bits requested not valid")

const (
	ipv4BitLength = 32
	ipv6BitLength = 128
)

// IPv4ToUint32 converts ipV4 to uint32.
func IPv4ToUint32(ip net.IP) (uint32, error) {
	ip = ip.To4()
	if ip == nil {
		return 0, ErrNotIPv4Error
	}
	return binary.BigEndian.Uint32(ip), nil
}

// Uint32ToIPv4 converts uint32 to ipV4 net.IP.
func Uint32ToIPv4(nn uint32) net.IP {
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, nn)
	return ip
}

// NextIP returns the next sequential ip.
func NextIP(ip net.IP) net.IP {
	newIP := make([]byte, len(ip))
	copy(newIP, ip)
	for i := len(newIP) - 1; i >= 0; i-- {
		newIP[i]++
		if newIP[i] > 0 {
			break
		}
	}
	return newIP
}

// MaskUint32 returns the uint32 form of an IPv4 network mask with the given
// number of leading one bits. Values outside [0, 32] are clamped.
func MaskUint32(ones int) uint32 {
	if ones <= 0 {
		return 0
	}
	if ones >= ipv4BitLength {
		return ^uint32(0)
	}
	return ^uint32(0) << uint(ipv4BitLength-ones)
}

// DottedMask renders the dotted-decimal IPv4 mask for a prefix length.
func DottedMask(ones int) string {
	return net.IP(net.CIDRMask(ones, ipv4BitLength)).String()
}

// OnesCount returns the number of one bits in the uint32 form of an IPv4
// address or mask.
func OnesCount(nn uint32) int {
	return bits.OnesCount32(nn)
}

// Hextets splits an IPv6 address into its eight 16-bit groups.
func Hextets(ip net.IP) ([8]uint16, error) {
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return [8]uint16{}, ErrNotIPv6Error
	}
	var h [8]uint16
	for i := range h {
		h[i] = binary.BigEndian.Uint16(v6[2*i:])
	}
	return h, nil
}

// FromHextets assembles an IPv6 address from eight 16-bit groups.
func FromHextets(h [8]uint16) net.IP {
	ip := make(net.IP, net.IPv6len)
	for i, v := range h {
		binary.BigEndian.PutUint16(ip[2*i:], v)
	}
	return ip
}

// NextSubnetIPv6 returns the IPv6 network that immediately follows ip at the
// given prefix length.
func NextSubnetIPv6(ip net.IP, prefix int) (net.IP, error) {
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return nil, ErrNotIPv6Error
	}
	if prefix < 1 || prefix > ipv6BitLength {
		return nil, ErrBitsNotValid
	}

	hi := binary.BigEndian.Uint64(v6[:8])
	lo := binary.BigEndian.Uint64(v6[8:])
	if prefix > 64 {
		var carry uint64
		lo, carry = bits.Add64(lo, uint64(1)<<uint(ipv6BitLength-prefix), 0)
		hi, _ = bits.Add64(hi, 0, carry)
	} else {
		hi += uint64(1) << uint(64-prefix)
	}

	next := make(net.IP, net.IPv6len)
	binary.BigEndian.PutUint64(next[:8], hi)
	binary.BigEndian.PutUint64(next[8:], lo)
	return next, nil
}
