package xaddr

import (
	"net/netip"

	"github.com/omeyang/ipkit/internal/ipcore"
)

// FromNetip 从标准库 netip.Addr 构造地址。
// 4-in-6 形式保留完整 128 位，不折叠回 V4；zone 原样携带。
func FromNetip(ap netip.Addr) (Addr, error) {
	if !ap.IsValid() {
		return Addr{}, ErrInvalidAddress
	}
	if ap.Is4() {
		b := ap.As4()
		w, _ := ipcore.FromBytes(ipcore.Desc4, b[:])
		return newAddr(V4, w), nil
	}
	b := ap.As16()
	w, _ := ipcore.FromBytes(ipcore.Desc6, b[:])
	return newAddrZone(V6, w, ap.Zone()), nil
}

// ToNetip 返回地址的标准库 netip.Addr 形式，zone 原样携带。
func (a Addr) ToNetip() (netip.Addr, error) {
	if !a.IsValid() {
		return netip.Addr{}, ErrInvalidAddress
	}
	if a.version == V4 {
		var b [4]byte
		ipcore.AppendBytes(ipcore.Desc4, b[:0], a.words)
		return netip.AddrFrom4(b), nil
	}
	var b [16]byte
	ipcore.AppendBytes(ipcore.Desc6, b[:0], a.words)
	ap := netip.AddrFrom16(b)
	if a.zone != "" {
		ap = ap.WithZone(a.zone)
	}
	return ap, nil
}
