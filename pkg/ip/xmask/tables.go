package xmask

import (
	"math/big"

	"github.com/omeyang/ipkit/internal/ipcore"
	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// 掩码完全由 (版本, 前缀长度) 决定，字形式与容量在进程启动时一次性
// 建表，之后所有派生访问都是查表。
var (
	// 前缀长度 → 字数组
	wordsByCIDR4 [33]ipcore.Words
	wordsByCIDR6 [129]ipcore.Words

	// 前缀长度 → 地址空间容量（2^(位宽-前缀长度)）。
	// 表中实例不得修改，对外一律拷贝。
	sizeByCIDR4 [33]*big.Int
	sizeByCIDR6 [129]*big.Int

	// 合法的边界字取值 → 该字内的置位数。
	// V4 为 9 个 8 位值 {0, 128, 192, ..., 255}，V6 为 17 个 16 位值。
	partialBits4 map[uint16]int
	partialBits6 map[uint16]int
)

func init() {
	for cidr := range 33 {
		wordsByCIDR4[cidr] = prefixWords(ipcore.Desc4, cidr)
		sizeByCIDR4[cidr] = new(big.Int).Lsh(big.NewInt(1), uint(32-cidr))
	}
	for cidr := range 129 {
		wordsByCIDR6[cidr] = prefixWords(ipcore.Desc6, cidr)
		sizeByCIDR6[cidr] = new(big.Int).Lsh(big.NewInt(1), uint(128-cidr))
	}

	partialBits4 = make(map[uint16]int, 9)
	for b := 0; b <= 8; b++ {
		partialBits4[partialValue(ipcore.Desc4, b)] = b
	}
	partialBits6 = make(map[uint16]int, 17)
	for b := 0; b <= 16; b++ {
		partialBits6[partialValue(ipcore.Desc6, b)] = b
	}
}

// prefixWords 构造前 cidr 位全 1、其余全 0 的字数组。
func prefixWords(d ipcore.Desc, cidr int) ipcore.Words {
	var w ipcore.Words
	for i := range d.WordCount {
		bits := cidr - i*int(d.WordBits)
		if bits <= 0 {
			break
		}
		if bits > int(d.WordBits) {
			bits = int(d.WordBits)
		}
		w[i] = partialValue(d, bits)
	}
	return w
}

// partialValue 返回高 bits 位为 1 的单字取值。
func partialValue(d ipcore.Desc, bits int) uint16 {
	if bits <= 0 {
		return 0
	}
	return d.WordMax << uint(int(d.WordBits)-bits) & d.WordMax
}

// cidrWords 按版本查前缀字数组表。
func cidrWords(ver xaddr.Version, cidr int) ipcore.Words {
	if ver == xaddr.V4 {
		return wordsByCIDR4[cidr]
	}
	return wordsByCIDR6[cidr]
}

// cidrSize 按版本查容量表。返回表内实例，调用方负责拷贝。
func cidrSize(ver xaddr.Version, cidr int) *big.Int {
	if ver == xaddr.V4 {
		return sizeByCIDR4[cidr]
	}
	return sizeByCIDR6[cidr]
}

// partialBits 查边界字取值表，返回该字的置位数。
// 非法取值（不构成前缀段）返回 ok=false。
func partialBits(ver xaddr.Version, v uint16) (int, bool) {
	var b int
	var ok bool
	if ver == xaddr.V4 {
		b, ok = partialBits4[v]
	} else {
		b, ok = partialBits6[v]
	}
	return b, ok
}
