package xsubnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xmask"
)

func TestNew(t *testing.T) {
	addr := xaddr.MustParse("192.168.1.25")
	mask := xmask.MustCIDR(xaddr.V4, 24)

	sn, err := New(addr, mask)
	require.NoError(t, err)
	assert.True(t, sn.IsValid())
	assert.Equal(t, "192.168.1.0/24", sn.String())

	_, err = New(addr, xmask.MustCIDR(xaddr.V6, 64))
	assert.ErrorIs(t, err, ErrVersionMismatch)

	_, err = New(xaddr.Addr{}, mask)
	assert.ErrorIs(t, err, ErrInvalidSubnet)

	_, err = New(addr, xmask.Mask{})
	assert.ErrorIs(t, err, ErrInvalidSubnet)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantCIDR int
		wantErr  error
	}{
		{name: "V4 slash cidr", input: "192.168.1.25/24", want: "192.168.1.0/24", wantCIDR: 24},
		{name: "V4 single host", input: "10.0.0.1/32", want: "10.0.0.1/32", wantCIDR: 32},
		{name: "V4 whole space", input: "0.0.0.0/0", want: "0.0.0.0/0", wantCIDR: 0},
		{name: "V6 slash cidr", input: "2001:db8::1/64", want: "2001:db8::/64", wantCIDR: 64},
		{name: "V6 whole space", input: "::/0", want: "::/0", wantCIDR: 0},
		{name: "bare class A", input: "10.1.2.3", want: "10.0.0.0/8", wantCIDR: 8},
		{name: "bare class B", input: "172.20.1.2", want: "172.20.0.0/16", wantCIDR: 16},
		{name: "bare class C", input: "192.168.1.25", want: "192.168.1.0/24", wantCIDR: 24},
		{name: "bare class D", input: "224.0.0.1", wantErr: xmask.ErrNoClassMask},
		{name: "bare class E", input: "250.0.0.1", wantErr: xmask.ErrNoClassMask},
		{name: "bare V6", input: "2001:db8::1", wantErr: ErrMissingMask},
		{name: "cidr out of range", input: "10.0.0.0/33", wantErr: xmask.ErrInvalidCIDR},
		{name: "cidr not numeric", input: "10.0.0.0/abc", wantErr: xmask.ErrInvalidCIDR},
		{name: "cidr empty", input: "10.0.0.0/", wantErr: xmask.ErrInvalidCIDR},
		{name: "addr bad octet", input: "300.1.2.3/8", wantErr: xaddr.ErrAddressItem},
		{name: "addr empty", input: "/24", wantErr: xaddr.ErrEmpty},
		{name: "empty", input: "", wantErr: xaddr.ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sn, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sn.String())
			assert.Equal(t, tt.wantCIDR, sn.CIDR())
		})
	}
}

func TestParseKeepsOriginalAddr(t *testing.T) {
	sn := MustParse("192.168.1.25/24")
	assert.Equal(t, "192.168.1.25", sn.Addr().String())
	assert.Equal(t, "192.168.1.0", sn.Network().String())
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "10.0.0.0/8", MustParse("10.0.0.0/8").String())
	assert.PanicsWithValue(t,
		`xsubnet.MustParse("2001:db8::1"): xsubnet: V6 subnet requires an explicit mask: "2001:db8::1"`,
		func() { MustParse("2001:db8::1") })
}

func TestParseWithMask(t *testing.T) {
	sn, err := ParseWithMask("192.168.1.25", "255.255.255.0")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0/24", sn.String())

	sn, err = ParseWithMask("2001:db8::1", "ffff:ffff:ffff:ffff::")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/64", sn.String())

	_, err = ParseWithMask("192.168.1.25", "ffff::")
	assert.ErrorIs(t, err, ErrVersionMismatch)

	_, err = ParseWithMask("192.168.1.25", "255.0.255.0")
	assert.ErrorIs(t, err, xmask.ErrNonContiguous)

	_, err = ParseWithMask("not an ip", "255.255.255.0")
	assert.ErrorIs(t, err, xaddr.ErrInvalidAddress)
}

func TestWithHosts(t *testing.T) {
	sn, err := WithHosts("10.0.0.0", 300)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/23", sn.String())
	assert.Equal(t, "510", sn.Hosts().String())

	sn, err = WithHosts("2001:db8::", 0)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/128", sn.String())

	_, err = WithHosts("10.0.0.0", 1<<32-1)
	assert.ErrorIs(t, err, xmask.ErrHostCountRange)
}

func TestAccessors(t *testing.T) {
	sn := MustParse("172.20.1.2/16")

	assert.Equal(t, xaddr.V4, sn.Version())
	assert.Equal(t, 16, sn.CIDR())
	assert.Equal(t, "65536", sn.Size().String())
	assert.Equal(t, "65534", sn.Hosts().String())
	assert.Equal(t, "255.255.0.0", sn.Mask().String())

	c, ok := sn.Class()
	assert.True(t, ok)
	assert.Equal(t, xaddr.ClassB, c)

	v6 := MustParse("2001:db8::/64")
	_, ok = v6.Class()
	assert.False(t, ok)
}

func TestZeroSubnet(t *testing.T) {
	var nilSn *Subnet
	assert.False(t, nilSn.IsValid())
	assert.Equal(t, -1, nilSn.CIDR())
	assert.Equal(t, "invalid subnet", nilSn.String())

	zero := &Subnet{}
	assert.False(t, zero.IsValid())
	assert.Equal(t, xaddr.V0, zero.Version())
	assert.Nil(t, zero.Size())
	assert.Nil(t, zero.Hosts())
	assert.False(t, zero.Network().IsValid())
	assert.False(t, zero.Addr().IsValid())
	assert.False(t, zero.Mask().IsValid())
	assert.False(t, zero.Includes(xaddr.MustParse("10.0.0.1")))

	_, ok := zero.Class()
	assert.False(t, ok)
	_, ok = zero.Broadcast()
	assert.False(t, ok)
}
