package xmask

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		ver  xaddr.Version
		cidr int
		want string
	}{
		{name: "V4 /24", ver: xaddr.V4, cidr: 24, want: "256"},
		{name: "V4 /32", ver: xaddr.V4, cidr: 32, want: "1"},
		{name: "V4 /0", ver: xaddr.V4, cidr: 0, want: "4294967296"},
		{name: "V6 /64", ver: xaddr.V6, cidr: 64, want: "18446744073709551616"},
		{name: "V6 /0", ver: xaddr.V6, cidr: 0, want: "340282366920938463463374607431768211456"},
		{name: "V6 /128", ver: xaddr.V6, cidr: 128, want: "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustCIDR(tt.ver, tt.cidr).Size().String())
		})
	}
}

func TestSizeCopySemantics(t *testing.T) {
	m := MustCIDR(xaddr.V4, 24)
	s := m.Size()
	s.SetInt64(0)
	assert.Equal(t, "256", m.Size().String())
}

func TestSizeUint64(t *testing.T) {
	tests := []struct {
		name   string
		ver    xaddr.Version
		cidr   int
		want   uint64
		wantOK bool
	}{
		{name: "V4 /0 fits", ver: xaddr.V4, cidr: 0, want: 1 << 32, wantOK: true},
		{name: "V4 /32", ver: xaddr.V4, cidr: 32, want: 1, wantOK: true},
		{name: "V6 /65 fits", ver: xaddr.V6, cidr: 65, want: 1 << 63, wantOK: true},
		{name: "V6 /64 overflows", ver: xaddr.V6, cidr: 64, wantOK: false},
		{name: "V6 /0 overflows", ver: xaddr.V6, cidr: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MustCIDR(tt.ver, tt.cidr).SizeUint64()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Mask{}.SizeUint64()
	assert.False(t, ok)
}

func TestHosts(t *testing.T) {
	tests := []struct {
		name string
		ver  xaddr.Version
		cidr int
		want string
	}{
		{name: "V4 /24 drops net and broadcast", ver: xaddr.V4, cidr: 24, want: "254"},
		{name: "V4 /30", ver: xaddr.V4, cidr: 30, want: "2"},
		{name: "V4 /31 point to point", ver: xaddr.V4, cidr: 31, want: "2"},
		{name: "V4 /32 single host", ver: xaddr.V4, cidr: 32, want: "1"},
		{name: "V4 /0", ver: xaddr.V4, cidr: 0, want: "4294967294"},
		{name: "V6 /64 drops anycast", ver: xaddr.V6, cidr: 64, want: "18446744073709551615"},
		{name: "V6 /126", ver: xaddr.V6, cidr: 126, want: "3"},
		{name: "V6 /127", ver: xaddr.V6, cidr: 127, want: "0"},
		{name: "V6 /128 single host", ver: xaddr.V6, cidr: 128, want: "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustCIDR(tt.ver, tt.cidr).Hosts().String())
		})
	}
}

func TestHostsUint64(t *testing.T) {
	got, ok := MustCIDR(xaddr.V4, 24).HostsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(254), got)

	// /64 的主机数是 2^64-1，刚好可表示
	got, ok = MustCIDR(xaddr.V6, 64).HostsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(1<<64-1), got)

	_, ok = MustCIDR(xaddr.V6, 63).HostsUint64()
	assert.False(t, ok)

	_, ok = Mask{}.HostsUint64()
	assert.False(t, ok)
}

func TestFromHosts(t *testing.T) {
	tests := []struct {
		name    string
		ver     xaddr.Version
		hosts   uint64
		want    int
		wantErr error
	}{
		{name: "V4 two hosts", ver: xaddr.V4, hosts: 2, want: 30},
		{name: "V4 three hundred", ver: xaddr.V4, hosts: 300, want: 23},
		{name: "V4 zero", ver: xaddr.V4, hosts: 0, want: 31},
		{name: "V4 classful fit", ver: xaddr.V4, hosts: 254, want: 24},
		{name: "V4 one over classful", ver: xaddr.V4, hosts: 255, want: 23},
		{name: "V4 one host", ver: xaddr.V4, hosts: 1, want: 30},
		{name: "V4 whole space", ver: xaddr.V4, hosts: 1<<32 - 2, want: 0},
		{name: "V4 beyond reach", ver: xaddr.V4, hosts: 1<<32 - 1, wantErr: ErrHostCountRange},
		{name: "V6 zero", ver: xaddr.V6, hosts: 0, want: 128},
		{name: "V6 one host", ver: xaddr.V6, hosts: 1, want: 127},
		{name: "V6 two hosts", ver: xaddr.V6, hosts: 2, want: 126},
		{name: "V6 uint64 max exactly fills /64", ver: xaddr.V6, hosts: 1<<64 - 1, want: 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromHosts(tt.ver, tt.hosts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ver, m.Version())
			assert.Equal(t, tt.want, m.CIDR())
		})
	}
}

func TestFromHostsBig(t *testing.T) {
	// 2^64 台主机：/64 只有 2^64-1 可用，降到 /63
	m, err := FromHostsBig(xaddr.V6, new(big.Int).Lsh(big.NewInt(1), 64))
	require.NoError(t, err)
	assert.Equal(t, 63, m.CIDR())

	// 整个 V6 空间减 1，可用主机数上限
	max6 := new(big.Int).Lsh(big.NewInt(1), 128)
	max6.Sub(max6, big.NewInt(1))
	m, err = FromHostsBig(xaddr.V6, max6)
	require.NoError(t, err)
	assert.Equal(t, 0, m.CIDR())

	_, err = FromHostsBig(xaddr.V6, nil)
	assert.ErrorIs(t, err, ErrHostCountRange)

	_, err = FromHostsBig(xaddr.V4, big.NewInt(-1))
	assert.ErrorIs(t, err, ErrHostCountRange)

	over := new(big.Int).Lsh(big.NewInt(1), 129)
	_, err = FromHostsBig(xaddr.V6, over)
	assert.ErrorIs(t, err, ErrHostCountRange)

	_, err = FromHostsBig(xaddr.V0, big.NewInt(10))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

// 搜索结果是"最小能装下"的子网：结果可用数 ≥ 请求数，而再长一位的前缀装不下。
func TestFromHostsMostSpecific(t *testing.T) {
	for _, h := range []uint64{1, 2, 3, 5, 30, 254, 255, 1000, 65534, 1 << 20} {
		m, err := FromHosts(xaddr.V4, h)
		require.NoError(t, err, "hosts=%d", h)

		avail := new(big.Int).Sub(m.Size(), big.NewInt(2))
		assert.GreaterOrEqual(t, avail.Uint64(), h, "hosts=%d got /%d", h, m.CIDR())

		if m.CIDR() < 32 {
			tighter := MustCIDR(xaddr.V4, m.CIDR()+1)
			tightAvail := new(big.Int).Sub(tighter.Size(), big.NewInt(2))
			assert.Negative(t, tightAvail.Cmp(new(big.Int).SetUint64(h)), "hosts=%d /%d not most specific", h, m.CIDR())
		}
	}
}
