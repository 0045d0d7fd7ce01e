package xaddr

import (
	"fmt"
	"math/big"

	"github.com/omeyang/ipkit/internal/ipcore"
)

// FromUint32 从 32 位无符号整数构造 V4 地址（网络字节序）。
// 任意 uint32 都对应一个合法 V4 地址，不会失败。
func FromUint32(v uint32) Addr {
	return newAddr(V4, ipcore.FromUint32(v))
}

// ToUint32 返回 V4 地址的 32 位无符号整数形式（网络字节序）。
// 仅适用于 V4 地址。
func (a Addr) ToUint32() (uint32, error) {
	if !a.IsValid() {
		return 0, ErrInvalidAddress
	}
	if a.version != V4 {
		return 0, fmt.Errorf("%w: ToUint32 needs IPv4, got %s", ErrInvalidVersion, a.version)
	}
	return ipcore.ToUint32(a.words), nil
}

// FromWords 从字数组构造地址。
// V4 需要 4 个元素且每个 ≤ 255，V6 需要 8 个元素；切片被拷贝，调用方可复用。
func FromWords(ver Version, words []uint16) (Addr, error) {
	d := ver.desc()
	if d.WordCount == 0 {
		return Addr{}, fmt.Errorf("%w: %s", ErrInvalidVersion, ver)
	}
	if len(words) != d.WordCount {
		return Addr{}, fmt.Errorf("%w: got %d words, want %d for %s", ErrInvalidLength, len(words), d.WordCount, ver)
	}
	var w ipcore.Words
	for i, v := range words {
		if v > d.WordMax {
			return Addr{}, fmt.Errorf("%w: word[%d]=%d exceeds %d", ErrAddressItem, i, v, d.WordMax)
		}
		w[i] = v
	}
	return newAddr(ver, w), nil
}

// MustFromWords 类似 [FromWords]，但构造失败时 panic。
// 仅用于包级变量初始化或测试。
func MustFromWords(ver Version, words []uint16) Addr {
	addr, err := FromWords(ver, words)
	if err != nil {
		panic(fmt.Sprintf("xaddr.MustFromWords(%s, %v): %v", ver, words, err))
	}
	return addr
}

// FromBytes 从大端字节切片构造地址：4 字节为 V4，16 字节为 V6。
func FromBytes(b []byte) (Addr, error) {
	switch len(b) {
	case ipcore.Desc4.ByteLen:
		w, _ := ipcore.FromBytes(ipcore.Desc4, b)
		return newAddr(V4, w), nil
	case ipcore.Desc6.ByteLen:
		w, _ := ipcore.FromBytes(ipcore.Desc6, b)
		return newAddr(V6, w), nil
	default:
		return Addr{}, fmt.Errorf("%w: got %d bytes, want 4 or 16", ErrInvalidLength, len(b))
	}
}

// Bytes 返回地址的大端字节表示（V4 为 4 字节，V6 为 16 字节）。
// 每次调用返回新切片；无效地址返回 nil。
func (a Addr) Bytes() []byte {
	if !a.IsValid() {
		return nil
	}
	return ipcore.ToBytes(a.version.desc(), a.words)
}

// As4 返回 V4 地址的 4 字节数组形式。非 V4 地址返回 ok=false。
func (a Addr) As4() ([4]byte, bool) {
	if a.version != V4 {
		return [4]byte{}, false
	}
	var b [4]byte
	for i := range 4 {
		b[i] = byte(a.words[i])
	}
	return b, true
}

// As16 返回 V6 地址的 16 字节数组形式。非 V6 地址返回 ok=false。
func (a Addr) As16() ([16]byte, bool) {
	if a.version != V6 {
		return [16]byte{}, false
	}
	var b [16]byte
	for i := range 8 {
		b[2*i] = byte(a.words[i] >> 8)
		b[2*i+1] = byte(a.words[i])
	}
	return b, true
}

// FromBigInt 从无符号大整数构造指定版本的地址。
// n 为 nil、负数或超出版本位宽时返回 [ErrInvalidBigInt]。
func FromBigInt(ver Version, n *big.Int) (Addr, error) {
	d := ver.desc()
	if d.WordCount == 0 {
		return Addr{}, fmt.Errorf("%w: %s", ErrInvalidVersion, ver)
	}
	w, ok := ipcore.FromBig(d, n)
	if !ok {
		return Addr{}, fmt.Errorf("%w: value out of %d-bit range", ErrInvalidBigInt, d.TotalBits)
	}
	return newAddr(ver, w), nil
}

// ToBigInt 返回地址的无符号大整数形式。
// 每次调用返回独立副本，调用方可自由修改；无效地址返回 nil。
// 结果在首次计算后缓存。
func (a Addr) ToBigInt() *big.Int {
	if !a.IsValid() {
		return nil
	}
	return loadBig(a.memo, func() *big.Int {
		return ipcore.ToBig(a.version.desc(), a.words)
	})
}
