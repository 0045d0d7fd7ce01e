package xtunnel

import (
	"fmt"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// 各模式在 V6 字数组中的签名字。
const (
	mappedMarker    = 0xFFFF // mapped: word[5]
	sixToFourPrefix = 0x2002 // 6to4: word[0]
	teredoPrefix    = 0x2001 // teredo: word[0]（word[1] 必须为 0）
)

// Is 报告 a 是否符合模式 m 的隧道布局。
// 非 V6 地址、无效地址与无效模式一律返回 false。zone id 不参与判定。
func Is(a xaddr.Addr, m Mode) bool {
	if !a.IsValid() || a.Version() != xaddr.V6 {
		return false
	}
	switch m {
	case Mapped:
		for i := range 5 {
			if a.Word(i) != 0 {
				return false
			}
		}
		return a.Word(5) == mappedMarker
	case SixToFour:
		return a.Word(0) == sixToFourPrefix
	case Teredo:
		return a.Word(0) == teredoPrefix && a.Word(1) == 0
	default:
		return false
	}
}

// ToIPv6 把 V4 地址按模式 m 嵌入 V6 地址。
//
// Mapped 与 SixToFour 不需要额外参数（多余的 params 被忽略）。
// Teredo 要求恰好一个 [TeredoParams]，v4 实参是客户端地址；
// 缺少参数返回 [ErrInvalidMode]。
func ToIPv6(v4 xaddr.Addr, m Mode, params ...TeredoParams) (xaddr.Addr, error) {
	if !v4.IsValid() || v4.Version() != xaddr.V4 {
		return xaddr.Addr{}, fmt.Errorf("%w: got %s", ErrNeedV4, v4.Version())
	}
	hi, lo := packV4(v4)
	switch m {
	case Mapped:
		return xaddr.MustFromWords(xaddr.V6, []uint16{0, 0, 0, 0, 0, mappedMarker, hi, lo}), nil
	case SixToFour:
		return xaddr.MustFromWords(xaddr.V6, []uint16{sixToFourPrefix, hi, lo, 0, 0, 0, 0, 0}), nil
	case Teredo:
		if len(params) == 0 {
			return xaddr.Addr{}, fmt.Errorf("%w: teredo embedding requires TeredoParams", ErrInvalidMode)
		}
		return teredoEmbed(v4, params[0])
	default:
		return xaddr.Addr{}, fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}
}

// ToIPv4 从符合模式 m 布局的 V6 地址中提取 V4 地址。
// Teredo 模式提取的是去混淆后的客户端地址。
// 布局不匹配返回 [ErrNotTunneled]。
func ToIPv4(v6 xaddr.Addr, m Mode) (xaddr.Addr, error) {
	if !m.IsValid() {
		return xaddr.Addr{}, fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}
	if !v6.IsValid() || v6.Version() != xaddr.V6 {
		return xaddr.Addr{}, fmt.Errorf("%w: got %s", ErrNeedV6, v6.Version())
	}
	if !Is(v6, m) {
		return xaddr.Addr{}, fmt.Errorf("%w: %s is not %s", ErrNotTunneled, v6, m)
	}
	switch m {
	case Mapped:
		return unpackV4(v6.Word(6), v6.Word(7)), nil
	case SixToFour:
		return unpackV4(v6.Word(1), v6.Word(2)), nil
	default: // Teredo
		return unpackV4(v6.Word(6)^obfuscation, v6.Word(7)^obfuscation), nil
	}
}

// packV4 把 V4 地址的 4 个字节装进两个 16 位字。
func packV4(a xaddr.Addr) (hi, lo uint16) {
	return a.Word(0)<<8 | a.Word(1), a.Word(2)<<8 | a.Word(3)
}

// unpackV4 把两个 16 位字还原为 V4 地址。
func unpackV4(hi, lo uint16) xaddr.Addr {
	return xaddr.MustFromWords(xaddr.V4, []uint16{hi >> 8, hi & 0xFF, lo >> 8, lo & 0xFF})
}
