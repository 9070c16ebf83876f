package subnetcalc

import "errors"

// ErrInvalidInput is returned upon malformed address, mask or prefix input.
var ErrInvalidInput = errors.New("invalid address or prefix input")

// ErrAddressSpaceExhausted is returned when a VLSM allocation does not fit
// within the parent block's remaining space.
var ErrAddressSpaceExhausted = errors.New("address space exhausted")

// ErrSegmentRangeExceeded is returned when an IPv6 hextet increment overflows
// the valid 16-bit segment range.
var ErrSegmentRangeExceeded = errors.New("exceeded valid segment range for IPv6")
