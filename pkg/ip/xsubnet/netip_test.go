package xsubnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	p, ok := MustParse("192.168.1.25/24").Prefix()
	require.True(t, ok)
	assert.Equal(t, netip.MustParsePrefix("192.168.1.0/24"), p)

	p, ok = MustParse("2001:db8::1/64").Prefix()
	require.True(t, ok)
	assert.Equal(t, netip.MustParsePrefix("2001:db8::/64"), p)

	// zone id 不进入前缀
	p, ok = MustParse("fe80::1%eth0/64").Prefix()
	require.True(t, ok)
	assert.Equal(t, netip.MustParsePrefix("fe80::/64"), p)

	_, ok = (&Subnet{}).Prefix()
	assert.False(t, ok)

	var nilSn *Subnet
	_, ok = nilSn.Prefix()
	assert.False(t, ok)
}

func TestRange(t *testing.T) {
	r, ok := MustParse("192.168.1.25/24").Range()
	require.True(t, ok)
	assert.Equal(t, netip.MustParseAddr("192.168.1.0"), r.From())
	assert.Equal(t, netip.MustParseAddr("192.168.1.255"), r.To())

	r, ok = MustParse("2001:db8::/64").Range()
	require.True(t, ok)
	assert.Equal(t, netip.MustParseAddr("2001:db8::"), r.From())
	assert.Equal(t, netip.MustParseAddr("2001:db8::ffff:ffff:ffff:ffff"), r.To())

	_, ok = (&Subnet{}).Range()
	assert.False(t, ok)
}

func TestSubnetsToIPSet(t *testing.T) {
	set, err := SubnetsToIPSet([]*Subnet{
		MustParse("10.0.0.0/24"),
		MustParse("10.0.1.0/24"),
		MustParse("192.168.1.0/24"),
	})
	require.NoError(t, err)

	assert.True(t, set.Contains(netip.MustParseAddr("10.0.0.5")))
	assert.True(t, set.Contains(netip.MustParseAddr("10.0.1.200")))
	assert.True(t, set.Contains(netip.MustParseAddr("192.168.1.1")))
	assert.False(t, set.Contains(netip.MustParseAddr("10.0.2.1")))
	assert.False(t, set.Contains(netip.MustParseAddr("192.168.2.1")))

	// 相邻的两个 /24 归并成一个 /23
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/23"),
		netip.MustParsePrefix("192.168.1.0/24"),
	}, set.Prefixes())
}

func TestSubnetsToIPSetMixedVersions(t *testing.T) {
	set, err := SubnetsToIPSet([]*Subnet{
		MustParse("10.0.0.0/8"),
		MustParse("2001:db8::/32"),
	})
	require.NoError(t, err)
	assert.True(t, set.Contains(netip.MustParseAddr("10.1.2.3")))
	assert.True(t, set.Contains(netip.MustParseAddr("2001:db8::1")))
	assert.False(t, set.Contains(netip.MustParseAddr("2001:db9::1")))
}

func TestSubnetsToIPSetInvalid(t *testing.T) {
	_, err := SubnetsToIPSet([]*Subnet{MustParse("10.0.0.0/24"), nil})
	assert.ErrorIs(t, err, ErrInvalidSubnet)

	_, err = SubnetsToIPSet([]*Subnet{{}})
	assert.ErrorIs(t, err, ErrInvalidSubnet)

	set, err := SubnetsToIPSet(nil)
	require.NoError(t, err)
	assert.False(t, set.Contains(netip.MustParseAddr("10.0.0.1")))
}
