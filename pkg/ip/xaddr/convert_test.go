package xaddr

import (
	"math/big"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint32RoundTrip(t *testing.T) {
	tests := []struct {
		value uint32
		want  string
	}{
		{0, "0.0.0.0"},
		{2130706433, "127.0.0.1"},
		{3232235801, "192.168.1.25"},
		{4294967295, "255.255.255.255"},
	}
	for _, tt := range tests {
		addr := FromUint32(tt.value)
		assert.Equal(t, tt.want, addr.String())

		back, err := addr.ToUint32()
		require.NoError(t, err)
		assert.Equal(t, tt.value, back)
	}
}

func TestToUint32Errors(t *testing.T) {
	_, err := MustParse("::1").ToUint32()
	assert.ErrorIs(t, err, ErrInvalidVersion)

	var zero Addr
	_, err = zero.ToUint32()
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestFromWords(t *testing.T) {
	addr, err := FromWords(V4, []uint16{192, 168, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", addr.String())

	addr, err = FromWords(V6, []uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1", addr.String())

	// V4 字超出 8 位
	_, err = FromWords(V4, []uint16{256, 0, 0, 0})
	assert.ErrorIs(t, err, ErrAddressItem)

	// 字数不符
	_, err = FromWords(V4, []uint16{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = FromWords(V6, []uint16{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrInvalidLength)

	// 无效版本
	_, err = FromWords(V0, []uint16{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrInvalidVersion)

	// 入参切片被拷贝
	src := []uint16{10, 0, 0, 1}
	addr, err = FromWords(V4, src)
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, uint16(10), addr.Word(0))
}

func TestMustFromWords(t *testing.T) {
	assert.NotPanics(t, func() { MustFromWords(V4, []uint16{1, 2, 3, 4}) })
	assert.Panics(t, func() { MustFromWords(V4, []uint16{256, 0, 0, 0}) })
}

func TestBytesRoundTrip(t *testing.T) {
	v4 := MustParse("192.168.1.1")
	b4 := v4.Bytes()
	assert.Equal(t, []byte{192, 168, 1, 1}, b4)
	back, err := FromBytes(b4)
	require.NoError(t, err)
	assert.True(t, back.Equal(v4))

	v6 := MustParse("2001:db8::1")
	b6 := v6.Bytes()
	assert.Len(t, b6, 16)
	assert.Equal(t, byte(0x20), b6[0])
	assert.Equal(t, byte(0x01), b6[15])
	back, err = FromBytes(b6)
	require.NoError(t, err)
	assert.True(t, back.Equal(v6))

	_, err = FromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = FromBytes(nil)
	assert.ErrorIs(t, err, ErrInvalidLength)

	var zero Addr
	assert.Nil(t, zero.Bytes())
}

func TestAs4As16(t *testing.T) {
	v4 := MustParse("192.168.1.1")
	b4, ok := v4.As4()
	require.True(t, ok)
	assert.Equal(t, [4]byte{192, 168, 1, 1}, b4)
	_, ok = v4.As16()
	assert.False(t, ok)

	v6 := MustParse("2001:db8::1")
	b16, ok := v6.As16()
	require.True(t, ok)
	assert.Equal(t, byte(0x20), b16[0])
	assert.Equal(t, byte(0x01), b16[1])
	assert.Equal(t, byte(0x0d), b16[2])
	assert.Equal(t, byte(0xb8), b16[3])
	assert.Equal(t, byte(0x01), b16[15])
	_, ok = v6.As4()
	assert.False(t, ok)

	var zero Addr
	_, ok = zero.As4()
	assert.False(t, ok)
	_, ok = zero.As16()
	assert.False(t, ok)
}

func TestBigIntRoundTrip(t *testing.T) {
	v4 := MustParse("127.0.0.1")
	n := v4.ToBigInt()
	require.NotNil(t, n)
	assert.Equal(t, "2130706433", n.String())

	back, err := FromBigInt(V4, n)
	require.NoError(t, err)
	assert.True(t, back.Equal(v4))

	v6 := MustParse("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
	max := v6.ToBigInt()
	// 2^128 - 1
	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	assert.Zero(t, max.Cmp(want))

	back, err = FromBigInt(V6, max)
	require.NoError(t, err)
	assert.True(t, back.Equal(v6))
}

func TestBigIntCopySemantics(t *testing.T) {
	addr := MustParse("10.0.0.1")
	n := addr.ToBigInt()
	n.SetInt64(0)
	// 修改返回值不影响缓存
	assert.Equal(t, "167772161", addr.ToBigInt().String())
}

func TestFromBigIntErrors(t *testing.T) {
	_, err := FromBigInt(V4, nil)
	assert.ErrorIs(t, err, ErrInvalidBigInt)

	_, err = FromBigInt(V4, big.NewInt(-1))
	assert.ErrorIs(t, err, ErrInvalidBigInt)

	// 2^32 超出 V4 位宽
	_, err = FromBigInt(V4, new(big.Int).Lsh(big.NewInt(1), 32))
	assert.ErrorIs(t, err, ErrInvalidBigInt)

	// 2^128 超出 V6 位宽
	_, err = FromBigInt(V6, new(big.Int).Lsh(big.NewInt(1), 128))
	assert.ErrorIs(t, err, ErrInvalidBigInt)

	_, err = FromBigInt(V0, big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidVersion)

	// 2^32 - 1 恰好在 V4 位宽内
	addr, err := FromBigInt(V4, big.NewInt(4294967295))
	require.NoError(t, err)
	assert.Equal(t, "255.255.255.255", addr.String())
}

func TestNetipRoundTrip(t *testing.T) {
	tests := []string{
		"192.168.1.1",
		"2001:db8::1",
		"::",
		"fe80::1%eth0",
	}
	for _, s := range tests {
		addr := MustParse(s)
		ap, err := addr.ToNetip()
		require.NoError(t, err, s)
		assert.Equal(t, addr.Zone(), ap.Zone(), s)

		back, err := FromNetip(ap)
		require.NoError(t, err, s)
		assert.True(t, back.Equal(addr), s)
		assert.Equal(t, addr.Zone(), back.Zone(), s)
	}
}

func TestNetip4In6(t *testing.T) {
	// netip 的 4-in-6 保留完整 128 位，不折叠回 V4
	ap := netip.MustParseAddr("::ffff:192.168.1.1")
	addr, err := FromNetip(ap)
	require.NoError(t, err)
	assert.Equal(t, V6, addr.Version())
	assert.Equal(t, "::ffff:c0a8:101", addr.String())
	assert.True(t, addr.Equal(MustParse("::ffff:192.168.1.1")))
}

func TestNetipInvalid(t *testing.T) {
	var zero Addr
	_, err := zero.ToNetip()
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = FromNetip(netip.Addr{})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
