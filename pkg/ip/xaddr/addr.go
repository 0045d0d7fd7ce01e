package xaddr

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/omeyang/ipkit/internal/ipcore"
)

// Addr 表示一个 IPv4 或 IPv6 地址。
//
// Addr 是不可变值对象：版本标签 + 大端序字数组 + 可选的 IPv6 zone id。
//   - V4 使用 words[0..3]，每字一个八位段（0..255）
//   - V6 使用 words[0..7]，每字一个 16 位组（0..65535）
//   - word[0] 为最高位字（网络字节序）
//
// 零值 Addr{} 无效，IsValid() 返回 false。有效地址只能由工厂函数
// （[Parse]、[FromUint32]、[FromBytes] 等）构造，构造时完成全部校验，
// 此后任何方法调用都不会因内部状态而失败。
//
// 注意：Addr 内含派生表示缓存的内部指针，严禁用 == 比较，
// 请使用 [Addr.Equal] 与 [Addr.Compare]。
type Addr struct {
	version Version
	words   ipcore.Words
	zone    string
	memo    *memo
}

// newAddr 构造携带缓存的地址值。仅供包内工厂使用，words 必须已校验。
func newAddr(ver Version, w ipcore.Words) Addr {
	return Addr{version: ver, words: w, memo: &memo{}}
}

// newAddrZone 构造携带 zone 的 V6 地址值。
func newAddrZone(ver Version, w ipcore.Words, zone string) Addr {
	return Addr{version: ver, words: w, zone: zone, memo: &memo{}}
}

// Version 返回地址的 IP 版本。零值返回 V0。
func (a Addr) Version() Version {
	return a.version
}

// IsValid 报告 a 是否为有效地址。零值 Addr{} 返回 false。
func (a Addr) IsValid() bool {
	return a.version.IsValid()
}

// Words 返回地址的字数组副本（V4 长度 4，V6 长度 8）。
// 无效地址返回 nil。
func (a Addr) Words() []uint16 {
	if !a.IsValid() {
		return nil
	}
	n := a.version.WordCount()
	out := make([]uint16, n)
	copy(out, a.words[:n])
	return out
}

// Word 返回第 i 个字（0 为最高位字）。
// i 超出 [0, WordCount) 时 panic：这是调用方的编程错误。
func (a Addr) Word(i int) uint16 {
	if i < 0 || i >= a.version.WordCount() {
		panic(fmt.Sprintf("xaddr: word index %d out of range for %s", i, a.version))
	}
	return a.words[i]
}

// Zone 返回 IPv6 zone id，未设置或 V4 地址返回空字符串。
func (a Addr) Zone() string {
	return a.zone
}

// WithZone 返回设置了指定 zone id 的地址副本。
// zone 为空串表示清除。V4 与无效地址原样返回（zone 仅对 V6 有意义）。
// 本方法不校验 token 语法；解析路径（[Parse]）会校验。
func (a Addr) WithZone(zone string) Addr {
	if a.version != V6 {
		return a
	}
	if a.zone == zone {
		return a
	}
	return newAddrZone(V6, a.words, zone)
}

// StripZone 返回去除 zone id 的地址副本。
func (a Addr) StripZone() Addr {
	return a.WithZone("")
}

// Equal 报告两个地址是否相等：版本相同且逐字相等。
// 不同版本恒为 false。zone id 不参与相等性判断。
func (a Addr) Equal(b Addr) bool {
	return a.version == b.version && a.words == b.words
}

// Compare 比较两个地址。
// 先按版本排序（无效 < V4 < V6），再按大端字序数值比较。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。zone id 不参与比较。
func (a Addr) Compare(b Addr) int {
	if a.version != b.version {
		if a.version < b.version {
			return -1
		}
		return 1
	}
	if !a.version.IsValid() {
		return 0
	}
	return ipcore.Compare(a.version.desc(), a.words, b.words)
}

// Hash64 返回地址的 64 位稳定哈希（xxhash），跨进程一致。
// 哈希域为版本标签 + 大端字节表示，zone id 不参与。
// 无效地址返回 0。
func (a Addr) Hash64() uint64 {
	if !a.IsValid() {
		return 0
	}
	var buf [17]byte
	buf[0] = byte(a.version)
	b := ipcore.AppendBytes(a.version.desc(), buf[:1], a.words)
	return xxhash.Sum64(b)
}

// Next 返回下一个地址（当前地址 +1），zone id 保留。
// 地址空间最大值（全 1）返回 [ErrOverflow]。
func (a Addr) Next() (Addr, error) {
	if !a.IsValid() {
		return Addr{}, ErrInvalidAddress
	}
	w, wrapped := ipcore.Inc(a.version.desc(), a.words)
	if wrapped {
		return Addr{}, ErrOverflow
	}
	return newAddrZone(a.version, w, a.zone), nil
}

// Prev 返回前一个地址（当前地址 -1），zone id 保留。
// 全零地址返回 [ErrUnderflow]。
func (a Addr) Prev() (Addr, error) {
	if !a.IsValid() {
		return Addr{}, ErrInvalidAddress
	}
	w, wrapped := ipcore.Dec(a.version.desc(), a.words)
	if wrapped {
		return Addr{}, ErrUnderflow
	}
	return newAddrZone(a.version, w, a.zone), nil
}
