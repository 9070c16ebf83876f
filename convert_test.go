package subnetcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryToDecimal(t *testing.T) {
	cases := []struct {
		binary   string
		expected string
		name     string
	}{
		{"11000000101010000000000100000001", "192.168.1.1", "host address"},
		{"00001010000000000000000000000000", "10.0.0.0", "network address"},
		{"11111111111111111111111111111111", "255.255.255.255", "all ones"},
		{"00000000000000000000000000000000", "0.0.0.0", "all zeros"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decimal, err := BinaryToDecimal(tc.binary)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, decimal)
		})
	}
}

func TestBinaryToDecimalInvalidInput(t *testing.T) {
	for _, binary := range []string{"", "1100", "110000001010100000000001000000011", "1100000010101000000000010000000x"} {
		t.Run(binary, func(t *testing.T) {
			_, err := BinaryToDecimal(binary)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDecimalToBinary(t *testing.T) {
	cases := []struct {
		decimal  string
		expected string
	}{
		{"192.168.1.1", "11000000101010000000000100000001"},
		{"10.0.0.0", "00001010000000000000000000000000"},
		{"255.255.255.255", "11111111111111111111111111111111"},
	}
	for _, tc := range cases {
		t.Run(tc.decimal, func(t *testing.T) {
			binary, err := DecimalToBinary(tc.decimal)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, binary)
		})
	}

	_, err := DecimalToBinary("192.168.1")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = DecimalToBinary("2001:db8::1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBinaryDecimalRoundTrip(t *testing.T) {
	for _, decimal := range []string{"0.0.0.1", "172.16.254.3", "224.0.0.251"} {
		binary, err := DecimalToBinary(decimal)
		assert.NoError(t, err)
		back, err := BinaryToDecimal(binary)
		assert.NoError(t, err)
		assert.Equal(t, decimal, back)
	}
}

func TestMaskBits(t *testing.T) {
	cases := []struct {
		mask     string
		expected int
	}{
		{"255.255.255.0", 24},
		{"255.255.255.192", 26},
		{"255.0.0.0", 8},
		{"0.0.0.0", 0},
	}
	for _, tc := range cases {
		t.Run(tc.mask, func(t *testing.T) {
			bits, err := MaskBits(tc.mask)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, bits)
		})
	}
}

func TestNetworkAddress(t *testing.T) {
	cases := []struct {
		host     string
		mask     string
		expected string
	}{
		{"10.5.4.100", "255.255.255.0", "10.5.4.0"},
		{"192.168.1.130", "255.255.255.128", "192.168.1.128"},
		{"172.16.31.5", "255.255.0.0", "172.16.0.0"},
	}
	for _, tc := range cases {
		t.Run(tc.host, func(t *testing.T) {
			network, err := NetworkAddress(tc.host, tc.mask)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, network)
		})
	}

	_, err := NetworkAddress("bogus", "255.255.255.0")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NetworkAddress("10.5.4.100", "bogus")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubnetMask(t *testing.T) {
	cases := []struct {
		prefix   int
		expected string
	}{
		{8, "255.0.0.0"},
		{24, "255.255.255.0"},
		{26, "255.255.255.192"},
		{32, "255.255.255.255"},
		{0, "0.0.0.0"},
	}
	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			mask, err := SubnetMask(tc.prefix)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, mask)
		})
	}

	_, err := SubnetMask(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = SubnetMask(33)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNumSubnetsAndHosts(t *testing.T) {
	assert.Equal(t, 1, NumSubnets(0))
	assert.Equal(t, 8, NumSubnets(3))
	assert.Equal(t, 2, NumHosts(2))
	assert.Equal(t, 62, NumHosts(6))
	assert.Equal(t, 254, NumHosts(8))
}

func TestSubnetFromNewMask(t *testing.T) {
	info, err := SubnetFromNewMask("192.168.1.100", "255.255.255.0", "255.255.255.192")
	assert.NoError(t, err)
	assert.Equal(t, SubnetInfo{
		OriginalMaskBits: 24,
		NewMaskBits:      26,
		BorrowedBits:     2,
		Subnets:          4,
		HostBits:         6,
		UsableHosts:      62,
		Network:          "192.168.1.64",
		FirstHost:        "192.168.1.65",
		LastHost:         "192.168.1.126",
		Broadcast:        "192.168.1.127",
	}, info)
}

func TestSubnetFromNewMaskInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		host string
		orig string
		new  string
	}{
		{"bad host", "300.0.0.1", "255.255.255.0", "255.255.255.192"},
		{"bad original mask", "192.168.1.100", "bogus", "255.255.255.192"},
		{"bad new mask", "192.168.1.100", "255.255.255.0", "bogus"},
		{"new mask shorter than original", "192.168.1.100", "255.255.255.192", "255.255.255.0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SubnetFromNewMask(tc.host, tc.orig, tc.new)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
