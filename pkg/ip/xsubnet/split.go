package xsubnet

import (
	"fmt"
	"math/big"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xmask"
)

// maxSplitDepth 限制一次切分的前缀加深量，防止子网数爆炸。
// 2^14 = 16384 个子网。
const maxSplitDepth = 14

// Split 把子网切分为前缀长度 newCIDR 的等宽子网，按地址升序返回。
//
// newCIDR 必须严格长于当前前缀且不超过版本位宽，且加深量不超过 14
// （最多 16384 个子网），否则返回 [ErrBadSplit]。
func (s *Subnet) Split(newCIDR int) ([]*Subnet, error) {
	if !s.IsValid() {
		return nil, ErrInvalidSubnet
	}
	total := s.Version().TotalBits()
	if newCIDR <= s.CIDR() || newCIDR > total {
		return nil, fmt.Errorf("%w: /%d does not subdivide /%d", ErrBadSplit, newCIDR, s.CIDR())
	}
	depth := newCIDR - s.CIDR()
	if depth > maxSplitDepth {
		return nil, fmt.Errorf("%w: /%d from /%d yields 2^%d subnets, cap 2^%d",
			ErrBadSplit, newCIDR, s.CIDR(), depth, maxSplitDepth)
	}

	childMask := xmask.MustCIDR(s.Version(), newCIDR)
	step := new(big.Int).Lsh(big.NewInt(1), uint(total-newCIDR))
	cur := s.Network().ToBigInt()

	out := make([]*Subnet, 0, 1<<depth)
	for range 1 << depth {
		a, err := xaddr.FromBigInt(s.Version(), cur)
		if err != nil {
			return nil, err
		}
		child, err := New(a, childMask)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
		cur.Add(cur, step)
	}
	return out, nil
}

// Next 返回同掩码的下一个相邻子网。
// 越过地址空间末端返回 [ErrSubnetOverflow]。
func (s *Subnet) Next() (*Subnet, error) {
	if !s.IsValid() {
		return nil, ErrInvalidSubnet
	}
	next, err := s.LastAddress().Next()
	if err != nil {
		return nil, fmt.Errorf("%w: past the end of %s space", ErrSubnetOverflow, s.Version())
	}
	return New(next, s.mask)
}

// Prev 返回同掩码的上一个相邻子网。
// 越过地址空间起点返回 [ErrSubnetOverflow]。
func (s *Subnet) Prev() (*Subnet, error) {
	if !s.IsValid() {
		return nil, ErrInvalidSubnet
	}
	below, err := s.Network().Prev()
	if err != nil {
		return nil, fmt.Errorf("%w: before the start of %s space", ErrSubnetOverflow, s.Version())
	}
	prevNetwork, err := xaddr.And(below, s.mask.Addr())
	if err != nil {
		return nil, err
	}
	return New(prevNetwork, s.mask)
}
