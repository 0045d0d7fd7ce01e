package xsubnet

import (
	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// Includes 报告地址 a 是否落在子网内：a AND mask == network。
// 版本不一致、无效地址或无效子网一律返回 false。
func (s *Subnet) Includes(a xaddr.Addr) bool {
	if !s.IsValid() || !a.IsValid() || a.Version() != s.Version() {
		return false
	}
	masked, err := xaddr.And(a, s.mask.Addr())
	if err != nil {
		return false
	}
	return masked.Equal(s.Network())
}

// IsHost 报告地址 a 是否为子网内的主机地址：
// firstHost <= a <= lastHost，按数值区间判定
// （大端字数组的逐字比较即数值比较）。
// 主机区间为空（/31、/32 等退化前缀）时恒为 false。
func (s *Subnet) IsHost(a xaddr.Addr) bool {
	if !s.IsValid() || !a.IsValid() || a.Version() != s.Version() {
		return false
	}
	return a.Compare(s.FirstHost()) >= 0 && a.Compare(s.LastHost()) <= 0
}
