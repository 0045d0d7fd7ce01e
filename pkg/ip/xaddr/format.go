package xaddr

import (
	"fmt"
	"strconv"

	"github.com/omeyang/ipkit/internal/ipcore"
)

// invalidString 是无效地址的统一文本表示。
const invalidString = "invalid IP"

const hexLower = "0123456789abcdef"

// String 返回地址的标准文本形式。
//
// V4 为点分十进制。V6 为小写冒号十六进制，最长的全零 word 连续段压缩为
// ::（平局取最早的一段；长度为 1 的段同样压缩），全零地址输出 "::"。
// link-local 地址自动携带 %zone 后缀，其余地址的 zone 不进入默认输出
// （需要时用 [Addr.StringWithZone]）。无效地址返回 "invalid IP"。
//
// 结果在首次计算后缓存，后续调用零分配。
func (a Addr) String() string {
	if !a.IsValid() {
		return invalidString
	}
	return loadString(a.memo, &a.memo.str, a.render)
}

// StringWithZone 返回带 %zone 后缀的文本形式（zone 非空时无条件追加）。
// 无 zone 或 V4 地址等价于 [Addr.String]。
func (a Addr) StringWithZone() string {
	if !a.IsValid() {
		return invalidString
	}
	if a.zone == "" || a.version != V6 {
		return a.String()
	}
	if a.IsLinkLocal() {
		// String 对 link-local 已带 zone，直接复用缓存
		return a.String()
	}
	b := appendCompressed(make([]byte, 0, 48), a.words)
	b = append(b, '%')
	b = append(b, a.zone...)
	return string(b)
}

// Expanded 返回完全展开形式：V6 为 8 组各 4 位十六进制（无压缩、无 zone），
// V4 与标准点分十进制一致。无效地址返回 "invalid IP"。
func (a Addr) Expanded() string {
	if !a.IsValid() {
		return invalidString
	}
	return loadString(a.memo, &a.memo.expanded, func() string {
		if a.version == V4 {
			return string(appendDotted(make([]byte, 0, 15), a.words))
		}
		b := make([]byte, 0, 39)
		for i := range 8 {
			if i > 0 {
				b = append(b, ':')
			}
			b = appendHexWordFull(b, a.words[i])
		}
		return string(b)
	})
}

// AppendTo 把标准文本形式追加到 b 并返回扩展后的切片。
// 输出与 [Addr.String] 一致，但不读写 memo 缓存，适合复用缓冲区的场景。
func (a Addr) AppendTo(b []byte) []byte {
	if !a.IsValid() {
		return append(b, invalidString...)
	}
	if a.version == V4 {
		return appendDotted(b, a.words)
	}
	b = appendCompressed(b, a.words)
	if a.zone != "" && a.IsLinkLocal() {
		b = append(b, '%')
		b = append(b, a.zone...)
	}
	return b
}

// ToIP6Arpa 返回 ip6.arpa 反向 DNS 名（不含结尾根点）。
// 仅适用于 V6 地址。
func (a Addr) ToIP6Arpa() (string, error) {
	if !a.IsValid() {
		return "", ErrInvalidAddress
	}
	if a.version != V6 {
		return "", fmt.Errorf("%w: ToIP6Arpa needs IPv6, got %s", ErrInvalidVersion, a.version)
	}
	b := make([]byte, 0, 72)
	// 输出顺序与地址位序相反：最低位 nibble 在最前
	for j := 31; j >= 0; j-- {
		d := a.words[j/4] >> uint(12-4*(j%4)) & 0xF
		b = append(b, hexLower[d], '.')
	}
	b = append(b, "ip6.arpa"...)
	return string(b), nil
}

// render 计算默认文本形式，结果进入 memo。
func (a Addr) render() string {
	return string(a.AppendTo(make([]byte, 0, 48)))
}

// appendDotted 追加 V4 点分十进制文本。
func appendDotted(b []byte, w ipcore.Words) []byte {
	for i := range 4 {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(w[i]), 10)
	}
	return b
}

// appendCompressed 追加 V6 压缩冒号十六进制文本。
func appendCompressed(b []byte, w ipcore.Words) []byte {
	start, length := zeroRun(w)
	if length == 8 {
		return append(b, ':', ':')
	}
	for i := 0; i < 8; i++ {
		if i == start && length > 0 {
			b = append(b, ':', ':')
			i += length - 1
			continue
		}
		if i > 0 && i != start+length {
			b = append(b, ':')
		}
		b = appendHexWord(b, w[i])
	}
	return b
}

// zeroRun 返回最长全零 word 连续段的起点与长度，平局取最早的一段。
// 无零 word 时长度为 0。
func zeroRun(w ipcore.Words) (start, length int) {
	start, length = -1, 0
	for i := 0; i < len(w); {
		if w[i] != 0 {
			i++
			continue
		}
		j := i
		for j < len(w) && w[j] == 0 {
			j++
		}
		if j-i > length {
			start, length = i, j-i
		}
		i = j
	}
	return start, length
}

// appendHexWord 追加不带前导零的小写十六进制 word。
func appendHexWord(b []byte, v uint16) []byte {
	if v == 0 {
		return append(b, '0')
	}
	started := false
	for shift := 12; shift >= 0; shift -= 4 {
		d := v >> uint(shift) & 0xF
		if d == 0 && !started {
			continue
		}
		started = true
		b = append(b, hexLower[d])
	}
	return b
}

// appendHexWordFull 追加固定 4 位的小写十六进制 word。
func appendHexWordFull(b []byte, v uint16) []byte {
	return append(b,
		hexLower[v>>12&0xF],
		hexLower[v>>8&0xF],
		hexLower[v>>4&0xF],
		hexLower[v&0xF])
}
