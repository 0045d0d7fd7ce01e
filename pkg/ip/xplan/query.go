package xplan

import (
	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xsubnet"
)

// Networks 返回计划内所有网络名（按字典序排序的副本）。
func (p *Plan) Networks() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Get 返回指定名字的网络。
func (p *Plan) Get(name string) (*xsubnet.Subnet, bool) {
	sn, ok := p.networks[name]
	return sn, ok
}

// Lookup 返回包含地址 a 的网络名。
// 计划允许重叠时取前缀最长（最精确）的网络，平局取字典序最先的名字。
func (p *Plan) Lookup(a xaddr.Addr) (string, bool) {
	na, err := a.StripZone().ToNetip()
	if err != nil {
		return "", false
	}
	best := ""
	bestCIDR := -1
	for _, name := range p.names {
		sn := p.networks[name]
		pfx, _ := sn.Prefix()
		if pfx.Contains(na) && sn.CIDR() > bestCIDR {
			best, bestCIDR = name, sn.CIDR()
		}
	}
	return best, best != ""
}

// Contains 报告地址是否落在计划的任一网络内。
// 走合并后的 [netipx.IPSet]，不区分具体网络（要网络名用 [Plan.Lookup]）。
func (p *Plan) Contains(a xaddr.Addr) bool {
	na, err := a.StripZone().ToNetip()
	if err != nil {
		return false
	}
	return p.set.Contains(na)
}

// Set 返回计划内全部网络的合并地址集。
// [netipx.IPSet] 不可变，调用方可直接做集合运算。
func (p *Plan) Set() *netipx.IPSet {
	return p.set
}
