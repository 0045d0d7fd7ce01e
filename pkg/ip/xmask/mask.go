package xmask

import (
	"fmt"
	"math/big"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// invalidString 是无效掩码的字符串表示。
const invalidString = "invalid mask"

// Mask 表示一个子网掩码：版本 + 前缀长度。
//
// 合法掩码必然是"前缀形"：高位连续 1，低位连续 0，因此 (版本, 前缀长度)
// 即可完全确定掩码，字形式与容量按需查表派生。
//
// Mask 是小型值类型，可比较、可作 map 键，按值传递。
// 零值 Mask{} 无效，IsValid 返回 false。
type Mask struct {
	ver  xaddr.Version
	bits uint8
}

// FromCIDR 由版本与前缀长度构造掩码。
// 前缀长度超出 [0, 位宽] 返回 [ErrInvalidCIDR]。
func FromCIDR(ver xaddr.Version, cidr int) (Mask, error) {
	if !ver.IsValid() {
		return Mask{}, fmt.Errorf("%w: %s", ErrInvalidVersion, ver)
	}
	if cidr < 0 || cidr > ver.TotalBits() {
		return Mask{}, fmt.Errorf("%w: %d not in [0, %d] for %s", ErrInvalidCIDR, cidr, ver.TotalBits(), ver)
	}
	return Mask{ver: ver, bits: uint8(cidr)}, nil
}

// MustCIDR 与 [FromCIDR] 相同，但出错时 panic。
// 用于测试与静态表构造。
func MustCIDR(ver xaddr.Version, cidr int) Mask {
	m, err := FromCIDR(ver, cidr)
	if err != nil {
		panic(fmt.Sprintf("xmask.MustCIDR(%s, %d): %v", ver, cidr, err))
	}
	return m
}

// FromAddr 把地址按掩码语义解释，校验其为前缀形。
//
// 扫描规则：前导若干全 1 字，至多一个取值合法的边界字，其余必须全 0。
// 边界字取值不合法（如 170 = 0b10101010）返回 [ErrInvalidMask]；
// 零位之后再出现置位（如 255.0.255.0）返回 [ErrNonContiguous]。
// zone id 被忽略。
func FromAddr(a xaddr.Addr) (Mask, error) {
	if !a.IsValid() {
		return Mask{}, fmt.Errorf("%w: zero address value", ErrInvalidMask)
	}
	ver := a.Version()
	allOnes := ver.WordMax()

	i, cidr := 0, 0
	for i < ver.WordCount() && a.Word(i) == allOnes {
		cidr += ver.WordBits()
		i++
	}
	if i < ver.WordCount() {
		b, ok := partialBits(ver, a.Word(i))
		if !ok {
			return Mask{}, fmt.Errorf("%w: word %d has value %#x", ErrInvalidMask, i, a.Word(i))
		}
		cidr += b
		i++
	}
	for ; i < ver.WordCount(); i++ {
		if a.Word(i) != 0 {
			return Mask{}, fmt.Errorf("%w: set bit after zero at word %d", ErrNonContiguous, i)
		}
	}
	return Mask{ver: ver, bits: uint8(cidr)}, nil
}

// Parse 把掩码文本解析为掩码：V4 点分十进制，V6 冒号十六进制。
// 先按地址解析，再经 [FromAddr] 校验前缀形；地址解析错误原样透出。
func Parse(s string) (Mask, error) {
	a, err := xaddr.Parse(s)
	if err != nil {
		return Mask{}, err
	}
	return FromAddr(a)
}

// ParseV4 仅接受 V4 点分十进制掩码文本。
func ParseV4(s string) (Mask, error) {
	a, err := xaddr.ParseV4(s)
	if err != nil {
		return Mask{}, err
	}
	return FromAddr(a)
}

// ParseV6 仅接受 V6 冒号十六进制掩码文本。
func ParseV6(s string) (Mask, error) {
	a, err := xaddr.ParseV6(s)
	if err != nil {
		return Mask{}, err
	}
	return FromAddr(a)
}

// FromBytes 由大端字节序列构造掩码：4 字节 V4，16 字节 V6。
func FromBytes(b []byte) (Mask, error) {
	a, err := xaddr.FromBytes(b)
	if err != nil {
		return Mask{}, err
	}
	return FromAddr(a)
}

// FromUint32 由 32 位整数构造 V4 掩码。
func FromUint32(v uint32) (Mask, error) {
	return FromAddr(xaddr.FromUint32(v))
}

// FromBigInt 由无符号大整数构造指定版本的掩码。
func FromBigInt(ver xaddr.Version, n *big.Int) (Mask, error) {
	a, err := xaddr.FromBigInt(ver, n)
	if err != nil {
		return Mask{}, err
	}
	return FromAddr(a)
}

// FromWords 由字序列构造掩码：V4 为 4 个字节值，V6 为 8 个 16 位组。
func FromWords(ver xaddr.Version, words []uint16) (Mask, error) {
	a, err := xaddr.FromWords(ver, words)
	if err != nil {
		return Mask{}, err
	}
	return FromAddr(a)
}

// FromBinaryString 由定长二进制串构造掩码：32 位 V4，128 位 V6。
func FromBinaryString(s string) (Mask, error) {
	a, err := xaddr.FromBinaryString(s)
	if err != nil {
		return Mask{}, err
	}
	return FromAddr(a)
}

// FromHexString 由定长十六进制串构造掩码：8 位 V4，32 位 V6。
func FromHexString(s string) (Mask, error) {
	a, err := xaddr.FromHexString(s)
	if err != nil {
		return Mask{}, err
	}
	return FromAddr(a)
}

// FromClass 返回 V4 地址类的默认掩码：A /8，B /16，C /24。
// D、E 类无默认掩码，返回 ok=false。
func FromClass(c xaddr.Class) (Mask, bool) {
	switch c {
	case xaddr.ClassA:
		return Mask{ver: xaddr.V4, bits: 8}, true
	case xaddr.ClassB:
		return Mask{ver: xaddr.V4, bits: 16}, true
	case xaddr.ClassC:
		return Mask{ver: xaddr.V4, bits: 24}, true
	default:
		return Mask{}, false
	}
}

// DefaultFor 返回地址所属 V4 类的默认掩码。
// 非 V4 地址或 D、E 类地址没有类默认，返回 [ErrNoClassMask]。
func DefaultFor(a xaddr.Addr) (Mask, error) {
	c, ok := a.Class()
	if !ok {
		return Mask{}, fmt.Errorf("%w: %s has no address class", ErrNoClassMask, a.Version())
	}
	m, ok := FromClass(c)
	if !ok {
		return Mask{}, fmt.Errorf("%w: class %s", ErrNoClassMask, c)
	}
	return m, nil
}

// IsValid 报告掩码是否有效。零值 Mask{} 无效。
func (m Mask) IsValid() bool {
	return m.ver.IsValid()
}

// Version 返回掩码的 IP 版本。无效掩码返回 [xaddr.V0]。
func (m Mask) Version() xaddr.Version {
	return m.ver
}

// CIDR 返回前缀长度。无效掩码返回 -1。
func (m Mask) CIDR() int {
	if !m.IsValid() {
		return -1
	}
	return int(m.bits)
}

// Words 返回掩码的字形式副本：V4 为 4 个字节值，V6 为 8 个 16 位组。
// 无效掩码返回 nil。
func (m Mask) Words() []uint16 {
	if !m.IsValid() {
		return nil
	}
	w := cidrWords(m.ver, int(m.bits))
	out := make([]uint16, m.ver.WordCount())
	copy(out, w[:m.ver.WordCount()])
	return out
}

// Addr 返回掩码的地址形式，由此免费获得全部地址侧格式化与转换。
// 无效掩码返回零值地址。
func (m Mask) Addr() xaddr.Addr {
	if !m.IsValid() {
		return xaddr.Addr{}
	}
	return xaddr.MustFromWords(m.ver, m.Words())
}

// Wildcard 返回掩码的按位取反（通配符掩码 / hostmask）。
// 无效掩码返回零值地址。
func (m Mask) Wildcard() xaddr.Addr {
	if !m.IsValid() {
		return xaddr.Addr{}
	}
	w, err := xaddr.Not(m.Addr())
	if err != nil {
		return xaddr.Addr{}
	}
	return w
}

// String 返回掩码文本：V4 点分十进制，V6 压缩冒号十六进制。
// 无效掩码返回 "invalid mask"。
func (m Mask) String() string {
	if !m.IsValid() {
		return invalidString
	}
	return m.Addr().String()
}

// Equal 报告两个掩码是否相等：版本与前缀长度都相同。
func (m Mask) Equal(b Mask) bool {
	return m == b
}

// Compare 比较两个掩码。
// 先按版本排序（无效 < V4 < V6），再按前缀长度比较。
// 返回值：-1 (m < b), 0 (m == b), 1 (m > b)。
func (m Mask) Compare(b Mask) int {
	if m.ver != b.ver {
		if m.ver < b.ver {
			return -1
		}
		return 1
	}
	if m.bits != b.bits {
		if m.bits < b.bits {
			return -1
		}
		return 1
	}
	return 0
}
