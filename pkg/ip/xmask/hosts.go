package xmask

import (
	"fmt"
	"math/big"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Size 返回掩码覆盖的地址空间容量（2^(位宽-前缀长度)）。
// 返回的是副本，调用方可自由修改。无效掩码返回 nil。
func (m Mask) Size() *big.Int {
	if !m.IsValid() {
		return nil
	}
	return new(big.Int).Set(cidrSize(m.ver, int(m.bits)))
}

// SizeUint64 返回容量的 uint64 形式。
// 容量超出 uint64 可表示范围（V6 前缀长度 ≤ 64）时返回 ok=false。
func (m Mask) SizeUint64() (uint64, bool) {
	if !m.IsValid() {
		return 0, false
	}
	shift := m.ver.TotalBits() - int(m.bits)
	if shift >= 64 {
		return 0, false
	}
	return uint64(1) << shift, true
}

// Hosts 返回掩码下的可用主机数。
//
// V4 为容量减 2（网络地址与广播地址不可用），特例 /32 为 1、/31 为 2；
// V6 为容量减 1（subnet-router anycast 不可用），特例 /128 为 1、/127 为 0。
// 返回的是副本。无效掩码返回 nil。
func (m Mask) Hosts() *big.Int {
	if !m.IsValid() {
		return nil
	}
	size := cidrSize(m.ver, int(m.bits))
	if m.ver == xaddr.V4 {
		switch m.bits {
		case 32:
			return big.NewInt(1)
		case 31:
			return big.NewInt(2)
		}
		return new(big.Int).Sub(size, bigTwo)
	}
	switch m.bits {
	case 128:
		return big.NewInt(1)
	case 127:
		return big.NewInt(0)
	}
	return new(big.Int).Sub(size, bigOne)
}

// HostsUint64 返回可用主机数的 uint64 形式。
// 超出 uint64 可表示范围时返回 ok=false。
func (m Mask) HostsUint64() (uint64, bool) {
	h := m.Hosts()
	if h == nil || !h.IsUint64() {
		return 0, false
	}
	return h.Uint64(), true
}

// FromHosts 返回能容纳 n 台主机的最长前缀（最小子网）掩码。
// 见 [FromHostsBig]。
func FromHosts(ver xaddr.Version, n uint64) (Mask, error) {
	return FromHostsBig(ver, new(big.Int).SetUint64(n))
}

// FromHostsBig 返回能容纳 n 台主机的最长前缀（最小子网）掩码。
//
// 搜索从位宽向 0 递减，每档可用主机数统一按容量减去固定开销计算
// （V4 减 2，V6 减 1，无特例），第一个满足的前缀长度即为结果。
// n 为负、为 nil、超出地址空间或超出可达上限时返回 [ErrHostCountRange]。
func FromHostsBig(ver xaddr.Version, n *big.Int) (Mask, error) {
	if !ver.IsValid() {
		return Mask{}, fmt.Errorf("%w: %s", ErrInvalidVersion, ver)
	}
	if n == nil {
		return Mask{}, fmt.Errorf("%w: nil host count", ErrHostCountRange)
	}
	if n.Sign() < 0 {
		return Mask{}, fmt.Errorf("%w: negative host count %s", ErrHostCountRange, n)
	}
	if n.Cmp(cidrSize(ver, 0)) > 0 {
		return Mask{}, fmt.Errorf("%w: %s exceeds %s address space", ErrHostCountRange, n, ver)
	}

	diff := bigOne
	if ver == xaddr.V4 {
		diff = bigTwo
	}
	avail := new(big.Int)
	for cidr := ver.TotalBits(); cidr >= 0; cidr-- {
		avail.Sub(cidrSize(ver, cidr), diff)
		if avail.Cmp(n) >= 0 {
			return Mask{ver: ver, bits: uint8(cidr)}, nil
		}
	}
	return Mask{}, fmt.Errorf("%w: %s hosts do not fit in %s space", ErrHostCountRange, n, ver)
}
