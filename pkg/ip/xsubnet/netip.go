package xsubnet

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Prefix 返回子网的标准库 [netip.Prefix] 视图（网络地址 + 前缀长度）。
// 无效子网返回 ok=false。zone id 不进入前缀。
func (s *Subnet) Prefix() (netip.Prefix, bool) {
	if !s.IsValid() {
		return netip.Prefix{}, false
	}
	na, err := s.Network().StripZone().ToNetip()
	if err != nil {
		return netip.Prefix{}, false
	}
	return netip.PrefixFrom(na, s.CIDR()), true
}

// Range 返回子网的 [netipx.IPRange] 视图：[网络地址, 最末地址]。
// 无效子网返回 ok=false。
func (s *Subnet) Range() (netipx.IPRange, bool) {
	if !s.IsValid() {
		return netipx.IPRange{}, false
	}
	from, err := s.Network().StripZone().ToNetip()
	if err != nil {
		return netipx.IPRange{}, false
	}
	to, err := s.LastAddress().StripZone().ToNetip()
	if err != nil {
		return netipx.IPRange{}, false
	}
	r := netipx.IPRangeFrom(from, to)
	return r, r.IsValid()
}

// SubnetsToIPSet 把一组子网合并为 [netipx.IPSet]，
// 供重叠检测与包含查询等集合运算使用。
// 列表中出现 nil 或无效子网返回 [ErrInvalidSubnet]。
func SubnetsToIPSet(subnets []*Subnet) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for i, sn := range subnets {
		p, ok := sn.Prefix()
		if !ok {
			return nil, fmt.Errorf("%w: subnets[%d]", ErrInvalidSubnet, i)
		}
		b.AddPrefix(p)
	}
	return b.IPSet()
}
