package xsubnet

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xmask"
)

// invalidString 是无效子网的字符串表示。
const invalidString = "invalid subnet"

// Subnet 表示一个网络上下文：地址 + 同版本掩码。
//
// 派生地址（网络地址、末地址、首/末主机）按需惰性计算并缓存，
// 因此 Subnet 以指针形式使用，不可拷贝。
// 通过构造函数获得的 Subnet 保证地址与掩码有效且版本一致。
type Subnet struct {
	addr xaddr.Addr
	mask xmask.Mask

	networkOnce sync.Once
	network     xaddr.Addr

	lastOnce sync.Once
	last     xaddr.Addr

	firstHostOnce sync.Once
	firstHost     xaddr.Addr

	lastHostOnce sync.Once
	lastHost     xaddr.Addr
}

// New 由地址与掩码构造子网。
// 任一无效返回 [ErrInvalidSubnet]，版本不一致返回 [ErrVersionMismatch]。
func New(addr xaddr.Addr, mask xmask.Mask) (*Subnet, error) {
	if !addr.IsValid() || !mask.IsValid() {
		return nil, fmt.Errorf("%w: zero address or mask", ErrInvalidSubnet)
	}
	if addr.Version() != mask.Version() {
		return nil, fmt.Errorf("%w: %s address with %s mask", ErrVersionMismatch, addr.Version(), mask.Version())
	}
	return &Subnet{addr: addr, mask: mask}, nil
}

// Parse 解析 "addr/cidr" 或裸 "addr" 文本。
//
// 带 "/" 时斜杠后必须是十进制前缀长度。
// 裸 V4 地址按类别取缺省掩码（A /8、B /16、C /24；D/E 类返回
// [xmask.ErrNoClassMask]）；裸 V6 地址没有类别体系，返回 [ErrMissingMask]。
func Parse(s string) (*Subnet, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		addr, err := xaddr.Parse(s[:i])
		if err != nil {
			return nil, err
		}
		cidr, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", xmask.ErrInvalidCIDR, s[i+1:])
		}
		mask, err := xmask.FromCIDR(addr.Version(), cidr)
		if err != nil {
			return nil, err
		}
		return New(addr, mask)
	}

	addr, err := xaddr.Parse(s)
	if err != nil {
		return nil, err
	}
	if addr.Version() == xaddr.V6 {
		return nil, fmt.Errorf("%w: %q", ErrMissingMask, s)
	}
	mask, err := xmask.DefaultFor(addr)
	if err != nil {
		return nil, err
	}
	return New(addr, mask)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) *Subnet {
	sn, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xsubnet.MustParse(%q): %v", s, err))
	}
	return sn
}

// ParseWithMask 由地址文本与掩码文本构造子网。
// 掩码文本为 V4 点分十进制或 V6 冒号十六进制（经 [xmask.Parse]）。
func ParseWithMask(addrText, maskText string) (*Subnet, error) {
	addr, err := xaddr.Parse(addrText)
	if err != nil {
		return nil, err
	}
	mask, err := xmask.Parse(maskText)
	if err != nil {
		return nil, err
	}
	return New(addr, mask)
}

// WithHosts 由地址文本与主机数构造子网，掩码经 [xmask.FromHosts] 推导
// （最小能容纳 hosts 台主机的子网）。
func WithHosts(addrText string, hosts uint64) (*Subnet, error) {
	addr, err := xaddr.Parse(addrText)
	if err != nil {
		return nil, err
	}
	mask, err := xmask.FromHosts(addr.Version(), hosts)
	if err != nil {
		return nil, err
	}
	return New(addr, mask)
}

// IsValid 报告子网是否有效。nil 与手工构造的零值 Subnet 无效。
func (s *Subnet) IsValid() bool {
	return s != nil && s.addr.IsValid() && s.mask.IsValid() &&
		s.addr.Version() == s.mask.Version()
}

// Addr 返回构造时的原始地址（zone id 保留，未做网络对齐）。
func (s *Subnet) Addr() xaddr.Addr {
	if !s.IsValid() {
		return xaddr.Addr{}
	}
	return s.addr
}

// Mask 返回子网掩码。
func (s *Subnet) Mask() xmask.Mask {
	if !s.IsValid() {
		return xmask.Mask{}
	}
	return s.mask
}

// CIDR 返回前缀长度。无效子网返回 -1。
func (s *Subnet) CIDR() int {
	if !s.IsValid() {
		return -1
	}
	return s.mask.CIDR()
}

// Version 返回子网的 IP 版本。无效子网返回 [xaddr.V0]。
func (s *Subnet) Version() xaddr.Version {
	if !s.IsValid() {
		return xaddr.V0
	}
	return s.addr.Version()
}

// Size 返回子网的地址空间容量。无效子网返回 nil。
func (s *Subnet) Size() *big.Int {
	if !s.IsValid() {
		return nil
	}
	return s.mask.Size()
}

// Hosts 返回子网的可用主机数（规则见 [xmask.Mask.Hosts]）。
// 无效子网返回 nil。
func (s *Subnet) Hosts() *big.Int {
	if !s.IsValid() {
		return nil
	}
	return s.mask.Hosts()
}

// Class 返回 V4 子网的地址类别。非 V4 或无效子网返回 ok=false。
func (s *Subnet) Class() (xaddr.Class, bool) {
	if !s.IsValid() {
		return 0, false
	}
	return s.addr.Class()
}

// String 返回 "网络地址/前缀长度" 文本，如 "192.168.1.0/24"。
// 无效子网返回 "invalid subnet"。
func (s *Subnet) String() string {
	if !s.IsValid() {
		return invalidString
	}
	return s.Network().String() + "/" + strconv.Itoa(s.mask.CIDR())
}
