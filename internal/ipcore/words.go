package ipcore

import "math/big"

// Words 是地址的字数组表示，大端序，word[0] 为最高位字。
//
// 使用固定大小数组而非切片：
// 1. 值语义，可比较，可作为 map key
// 2. 栈分配，零堆开销
// 3. 编译期大小检查
//
// IPv4 仅使用前 4 个元素，其余必须为零。
type Words [8]uint16

// And 对两个字数组做逐字按位与。
func And(d Desc, a, b Words) Words {
	var out Words
	for i := range d.WordCount {
		out[i] = a[i] & b[i]
	}
	return out
}

// Or 对两个字数组做逐字按位或。
func Or(d Desc, a, b Words) Words {
	var out Words
	for i := range d.WordCount {
		out[i] = a[i] | b[i]
	}
	return out
}

// Not 对字数组做逐字按位取反。
// 每个字是独立的固定宽度 lane，取反后按 WordMax 截断，不跨字进位。
func Not(d Desc, a Words) Words {
	var out Words
	for i := range d.WordCount {
		out[i] = ^a[i] & d.WordMax
	}
	return out
}

// Compare 按大端字序比较两个字数组。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
// 大端定长数组的逐字比较即数值比较。
func Compare(d Desc, a, b Words) int {
	for i := range d.WordCount {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Inc 返回 a + 1。第二个返回值在回绕（全 1 加一变全 0）时为 true。
func Inc(d Desc, a Words) (Words, bool) {
	var out Words
	carry := uint32(1)
	for i := d.WordCount - 1; i >= 0; i-- {
		sum := uint32(a[i]) + carry
		out[i] = uint16(sum) & d.WordMax
		carry = sum >> d.WordBits
	}
	return out, carry != 0
}

// Dec 返回 a - 1。第二个返回值在回绕（全 0 减一变全 1）时为 true。
func Dec(d Desc, a Words) (Words, bool) {
	var out Words
	borrow := uint32(1)
	for i := d.WordCount - 1; i >= 0; i-- {
		// 借助 uint32 避免下溢：0 - 1 取低位后即为正确的借位结果
		diff := uint32(a[i]) - borrow
		out[i] = uint16(diff) & d.WordMax
		if uint32(a[i]) < borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	return out, borrow != 0
}

// ToUint32 将 IPv4 字数组打包为 uint32（网络字节序）。
// 仅对 Desc4 布局有意义。
func ToUint32(a Words) uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

// FromUint32 将 uint32 拆解为 IPv4 字数组（网络字节序）。
func FromUint32(v uint32) Words {
	var out Words
	out[0] = uint16(v >> 24)
	out[1] = uint16(v>>16) & 0xFF
	out[2] = uint16(v>>8) & 0xFF
	out[3] = uint16(v) & 0xFF
	return out
}

// ToBytes 将字数组转换为大端字节切片（长度为 d.ByteLen）。
func ToBytes(d Desc, a Words) []byte {
	out := make([]byte, 0, d.ByteLen)
	return AppendBytes(d, out, a)
}

// AppendBytes 将字数组的大端字节表示追加到 dst。
func AppendBytes(d Desc, dst []byte, a Words) []byte {
	if d.bytesPerWord() == 1 {
		for i := range d.WordCount {
			dst = append(dst, byte(a[i]))
		}
		return dst
	}
	for i := range d.WordCount {
		dst = append(dst, byte(a[i]>>8), byte(a[i]))
	}
	return dst
}

// FromBytes 从大端字节切片构建字数组。
// 切片长度必须等于 d.ByteLen，否则返回 false。
func FromBytes(d Desc, b []byte) (Words, bool) {
	var out Words
	if len(b) != d.ByteLen {
		return out, false
	}
	if d.bytesPerWord() == 1 {
		for i := range d.WordCount {
			out[i] = uint16(b[i])
		}
		return out, true
	}
	for i := range d.WordCount {
		out[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return out, true
}

// ToBig 将字数组打包为大端无符号 big.Int。
// 每次调用返回新实例，调用方可自由修改。
func ToBig(d Desc, a Words) *big.Int {
	var buf [16]byte
	return new(big.Int).SetBytes(AppendBytes(d, buf[:0], a))
}

// FromBig 从 big.Int 构建字数组。
// v 为负数或超出 d.TotalBits 位宽时返回 false。
func FromBig(d Desc, v *big.Int) (Words, bool) {
	var out Words
	if v == nil || v.Sign() < 0 || v.BitLen() > d.TotalBits {
		return out, false
	}
	var buf [16]byte
	raw := v.Bytes()
	copy(buf[d.ByteLen-len(raw):d.ByteLen], raw)
	return FromBytes(d, buf[:d.ByteLen])
}
