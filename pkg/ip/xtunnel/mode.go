package xtunnel

import (
	"fmt"
	"strings"
)

// Mode 表示 V4-in-V6 隧道编码模式。
type Mode uint8

const (
	// ModeNone 是无效模式（零值）。
	ModeNone Mode = iota
	// Mapped 是 IPv4-mapped 布局：::ffff:a.b.c.d。
	Mapped
	// SixToFour 是 6to4 布局：2002:V4 高 16 位:V4 低 16 位::/48。
	SixToFour
	// Teredo 是 Teredo 布局：2001:0:服务器:标志:混淆端口:混淆客户端/32。
	Teredo
)

// String 返回模式的文本名。无效模式返回 "unknown"。
func (m Mode) String() string {
	switch m {
	case Mapped:
		return "mapped"
	case SixToFour:
		return "6to4"
	case Teredo:
		return "teredo"
	default:
		return "unknown"
	}
}

// IsValid 报告模式是否为已定义的隧道模式。
func (m Mode) IsValid() bool {
	switch m {
	case Mapped, SixToFour, Teredo:
		return true
	default:
		return false
	}
}

// ParseMode 把模式文本解析为 [Mode]，大小写不敏感。
// 可识别 "mapped"、"6to4"、"teredo"，其余输入返回 [ErrInvalidMode]。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "mapped":
		return Mapped, nil
	case "6to4":
		return SixToFour, nil
	case "teredo":
		return Teredo, nil
	default:
		return ModeNone, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}
