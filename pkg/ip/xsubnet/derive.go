package xsubnet

import (
	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// 派生地址全部只依赖 (addr, mask)，每项用独立的 sync.Once 惰性求值。
// 构造函数已保证地址与掩码有效且同版本，位运算不会失败。

// Network 返回网络地址：addr AND mask。zone id 不保留。
func (s *Subnet) Network() xaddr.Addr {
	if !s.IsValid() {
		return xaddr.Addr{}
	}
	s.networkOnce.Do(func() {
		s.network, _ = xaddr.And(s.addr, s.mask.Addr())
	})
	return s.network
}

// LastAddress 返回子网内的最末地址：addr OR NOT mask。两个版本都有定义。
func (s *Subnet) LastAddress() xaddr.Addr {
	if !s.IsValid() {
		return xaddr.Addr{}
	}
	s.lastOnce.Do(func() {
		s.last, _ = xaddr.Or(s.addr, s.mask.Wildcard())
	})
	return s.last
}

// Broadcast 返回 V4 子网的广播地址（即最末地址）。
// V6 没有广播语义，返回 ok=false。
func (s *Subnet) Broadcast() (xaddr.Addr, bool) {
	if !s.IsValid() || s.Version() != xaddr.V4 {
		return xaddr.Addr{}, false
	}
	return s.LastAddress(), true
}

// FirstHost 返回首个主机地址：网络地址 + 1。
// 递增越出地址空间时夹紧在网络地址本身。
// /31、/32（及 V6 对应端点）下主机区间可能为空或倒置，
// 此时 [Subnet.IsHost] 对任何地址都为 false，不做特判。
func (s *Subnet) FirstHost() xaddr.Addr {
	if !s.IsValid() {
		return xaddr.Addr{}
	}
	s.firstHostOnce.Do(func() {
		network := s.Network()
		next, err := network.Next()
		if err != nil {
			s.firstHost = network
			return
		}
		s.firstHost = next
	})
	return s.firstHost
}

// LastHost 返回最末主机地址。
// V4 为广播地址 - 1（递减越界时夹紧在广播地址）；V6 为最末地址本身。
func (s *Subnet) LastHost() xaddr.Addr {
	if !s.IsValid() {
		return xaddr.Addr{}
	}
	s.lastHostOnce.Do(func() {
		last := s.LastAddress()
		if s.Version() == xaddr.V6 {
			s.lastHost = last
			return
		}
		prev, err := last.Prev()
		if err != nil {
			s.lastHost = last
			return
		}
		s.lastHost = prev
	})
	return s.lastHost
}
