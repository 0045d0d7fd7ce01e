package ipcore

// 十六进制字符表（小写输出）。
const hexLower = "0123456789abcdef"

// HexValue 返回十六进制字符的数值，无效字符返回 -1。
func HexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}

// AppendBinary 将字数组的二进制表示（定宽，共 d.TotalBits 个字符）追加到 dst。
func AppendBinary(d Desc, dst []byte, a Words) []byte {
	for i := range d.WordCount {
		for bit := int(d.WordBits) - 1; bit >= 0; bit-- {
			dst = append(dst, '0'+byte(a[i]>>uint(bit)&1))
		}
	}
	return dst
}

// ParseBinary 解析定宽二进制字符串为字数组。
// 长度必须恰好为 d.TotalBits，且仅含 '0'/'1'，否则返回 false。
func ParseBinary(d Desc, s string) (Words, bool) {
	var out Words
	if len(s) != d.TotalBits {
		return out, false
	}
	pos := 0
	for i := range d.WordCount {
		var w uint16
		for range d.WordBits {
			c := s[pos]
			pos++
			if c != '0' && c != '1' {
				return Words{}, false
			}
			w = w<<1 | uint16(c-'0')
		}
		out[i] = w
	}
	return out, true
}

// AppendHex 将字数组的十六进制表示（定宽小写，共 d.NibbleLen 个字符）追加到 dst。
func AppendHex(d Desc, dst []byte, a Words) []byte {
	nibbles := d.WordBits / 4
	for i := range d.WordCount {
		for n := int(nibbles) - 1; n >= 0; n-- {
			dst = append(dst, hexLower[a[i]>>uint(4*n)&0xF])
		}
	}
	return dst
}

// ParseHex 解析定宽十六进制字符串为字数组。
// 长度必须恰好为 d.NibbleLen，大小写不敏感，否则返回 false。
func ParseHex(d Desc, s string) (Words, bool) {
	var out Words
	if len(s) != d.NibbleLen {
		return out, false
	}
	nibbles := int(d.WordBits / 4)
	pos := 0
	for i := range d.WordCount {
		var w uint16
		for range nibbles {
			v := HexValue(s[pos])
			pos++
			if v < 0 {
				return Words{}, false
			}
			w = w<<4 | uint16(v)
		}
		out[i] = w
	}
	return out, true
}
