package xaddr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/ipkit/internal/ipcore"
)

// mappedPrefix 是 IPv4-mapped IPv6 文本的固定字面前缀。
const mappedPrefix = "::ffff:"

// arpaSuffix 是反向 DNS 形式的固定字面后缀。
const arpaSuffix = ".ip6.arpa"

// Parse 解析 IP 地址字符串，自动识别格式。
//
// 识别顺序（固定的谓词链，格式自描述）：
//  1. ip6.arpa 反向形式（32 个点分 nibble + "ip6.arpa" 后缀）
//  2. 含 "." 且不含 ":" 的文本按 IPv4 点分十进制解析
//  3. 其余走 IPv6 链：拆出 %zone 后缀 → IPv4-mapped（"::ffff:a.b.c.d"）→ 冒号十六进制
//
// 支持的格式：
//   - IPv4 点分十进制：192.168.1.1（仅十进制，前导零无八进制含义）
//   - IPv6 冒号十六进制：2001:db8::1，大小写不敏感，:: 至多一次
//   - IPv6 zone id 后缀：fe80::1%eth0（token 仅限字母数字，携带不解析）
//   - IPv4-mapped：::ffff:192.168.1.1
//   - ip6.arpa：1.0.0.0....ip6.arpa（容忍结尾根点）
func Parse(s string) (Addr, error) {
	if s == "" {
		return Addr{}, ErrEmpty
	}
	if hasArpaSuffix(s) {
		return parseArpa(s)
	}
	if strings.IndexByte(s, '.') >= 0 && strings.IndexByte(s, ':') < 0 {
		return ParseV4(s)
	}
	return ParseV6(s)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xaddr.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseV4 按 IPv4 点分十进制严格解析。
// 必须恰好 4 个点分段，每段为 [0,255] 的十进制整数。
// 仅十进制：前导零不触发八进制解释（"010" 即 10）。
func ParseV4(s string) (Addr, error) {
	if s == "" {
		return Addr{}, ErrEmpty
	}
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return Addr{}, fmt.Errorf("%w: %q has %d octets, want 4", ErrInvalidAddress, s, len(parts))
	}
	var w ipcore.Words
	for i, p := range parts {
		if p == "" {
			return Addr{}, fmt.Errorf("%w: empty octet in %q", ErrInvalidAddress, s)
		}
		// strconv.ParseUint 不接受 +/- 前缀与空白，严格十进制
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Addr{}, fmt.Errorf("%w: octet %q in %q", ErrInvalidAddress, p, s)
		}
		if v > 255 {
			return Addr{}, fmt.Errorf("%w: octet %q in %q exceeds 255", ErrAddressItem, p, s)
		}
		w[i] = uint16(v)
	}
	return newAddr(V4, w), nil
}

// ParseV6 按 IPv6 链解析：ip6.arpa → %zone 拆分 → IPv4-mapped → 冒号十六进制。
func ParseV6(s string) (Addr, error) {
	if s == "" {
		return Addr{}, ErrEmpty
	}
	if hasArpaSuffix(s) {
		return parseArpa(s)
	}
	body, zone, err := splitZone(s)
	if err != nil {
		return Addr{}, err
	}
	var w ipcore.Words
	if isMappedShape(body) {
		w, err = parseMapped(body)
	} else {
		w, err = parseColonHex(body)
	}
	if err != nil {
		return Addr{}, err
	}
	return newAddrZone(V6, w, zone), nil
}

// FromIP6Arpa 解析 ip6.arpa 反向 DNS 形式。
// 要求恰好 32 个点分十六进制 nibble 加 "ip6.arpa" 后缀（容忍结尾根点），
// nibble 顺序与地址相反：第一个 label 是最低位 nibble。
func FromIP6Arpa(s string) (Addr, error) {
	if s == "" {
		return Addr{}, ErrEmpty
	}
	if !hasArpaSuffix(s) {
		return Addr{}, fmt.Errorf("%w: %q missing %s suffix", ErrInvalidAddress, s, arpaSuffix[1:])
	}
	return parseArpa(s)
}

// IsValidIP 报告 s 是否为可解析的 IP 地址（任意版本）。
// [Parse] 的非抛错包装。
func IsValidIP(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// IsValidIPv4 报告 s 是否为合法的 IPv4 点分十进制文本。
func IsValidIPv4(s string) bool {
	_, err := ParseV4(s)
	return err == nil
}

// IsValidIPv6 报告 s 是否为合法的 IPv6 文本（含 mapped 与 ip6.arpa 形式）。
func IsValidIPv6(s string) bool {
	_, err := ParseV6(s)
	return err == nil
}

// splitZone 拆出可选的 %zone 后缀并校验 token 语法。
// token 必须是非空的字母数字串；zone 只携带，不做语义解析。
func splitZone(s string) (body, zone string, err error) {
	i := strings.LastIndexByte(s, '%')
	if i < 0 {
		return s, "", nil
	}
	body, zone = s[:i], s[i+1:]
	if zone == "" || !isAlnum(zone) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidZone, s[i:])
	}
	return body, zone, nil
}

// isAlnum 报告 s 是否仅由 ASCII 字母和数字构成。
func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		default:
			return false
		}
	}
	return true
}

// isMappedShape 报告 s 是否形如 "::ffff:a.b.c.d"（前缀大小写不敏感）。
func isMappedShape(s string) bool {
	if len(s) <= len(mappedPrefix) {
		return false
	}
	return strings.EqualFold(s[:len(mappedPrefix)], mappedPrefix) &&
		strings.IndexByte(s[len(mappedPrefix):], '.') >= 0
}

// parseMapped 解析 IPv4-mapped 形式：点分部分委托给 V4 解析器后嵌入。
// V4 解析错误原样向上传递。
func parseMapped(s string) (ipcore.Words, error) {
	v4, err := ParseV4(s[len(mappedPrefix):])
	if err != nil {
		return ipcore.Words{}, err
	}
	var w ipcore.Words
	w[5] = 0xFFFF
	w[6] = v4.words[0]<<8 | v4.words[1]
	w[7] = v4.words[2]<<8 | v4.words[3]
	return w, nil
}

// parseColonHex 解析冒号十六进制形式（不含 zone）。
//
// 语法规则：
//   - 至多 8 个冒号分隔组，每组 1-4 个十六进制字符
//   - :: 至多出现一次，代表一段长度 ≥ 1 的全零组
//   - 省略组数推断为 8 - 显式组数
//   - 无 :: 时必须恰好 8 组
func parseColonHex(s string) (ipcore.Words, error) {
	var w ipcore.Words
	if s == "" {
		return w, fmt.Errorf("%w: empty IPv6 text", ErrInvalidAddress)
	}
	if s == "::" {
		return w, nil
	}

	i := strings.Index(s, "::")
	if i < 0 {
		groups := strings.Split(s, ":")
		if len(groups) != 8 {
			return w, fmt.Errorf("%w: %q has %d groups, want 8", ErrInvalidAddress, s, len(groups))
		}
		for gi, g := range groups {
			v, err := parseHexGroup(g)
			if err != nil {
				return ipcore.Words{}, err
			}
			w[gi] = v
		}
		return w, nil
	}

	// 第二个 ::（含 ::: 重叠形式）即压缩过多
	if strings.Contains(s[i+1:], "::") {
		return w, fmt.Errorf("%w: %q", ErrTooManyShortcuts, s)
	}

	var left, right []string
	if l := s[:i]; l != "" {
		left = strings.Split(l, ":")
	}
	if r := s[i+2:]; r != "" {
		right = strings.Split(r, ":")
	}
	// :: 两侧的空组意味着嵌套压缩（如 "1::2:" 或 ":1::2"）
	for _, g := range append(append([]string{}, left...), right...) {
		if g == "" {
			return w, fmt.Errorf("%w: %q", ErrTooManyShortcuts, s)
		}
	}
	if len(left)+len(right) >= 8 {
		return w, fmt.Errorf("%w: %q leaves no zero group for ::", ErrInvalidAddress, s)
	}

	for gi, g := range left {
		v, err := parseHexGroup(g)
		if err != nil {
			return ipcore.Words{}, err
		}
		w[gi] = v
	}
	base := 8 - len(right)
	for gi, g := range right {
		v, err := parseHexGroup(g)
		if err != nil {
			return ipcore.Words{}, err
		}
		w[base+gi] = v
	}
	return w, nil
}

// parseHexGroup 解析单个 1-4 字符的十六进制组。
func parseHexGroup(g string) (uint16, error) {
	if g == "" {
		return 0, fmt.Errorf("%w: empty group", ErrInvalidAddress)
	}
	if len(g) > 4 {
		return 0, fmt.Errorf("%w: group %q exceeds 16 bits", ErrAddressItem, g)
	}
	var v uint32
	for i := 0; i < len(g); i++ {
		hv := ipcore.HexValue(g[i])
		if hv < 0 {
			return 0, fmt.Errorf("%w: invalid hex group %q", ErrInvalidAddress, g)
		}
		v = v<<4 | uint32(hv)
	}
	return uint16(v), nil
}

// hasArpaSuffix 报告 s 是否以 ip6.arpa 后缀结尾（容忍结尾根点，大小写不敏感）。
func hasArpaSuffix(s string) bool {
	t := strings.TrimSuffix(s, ".")
	return len(t) > len(arpaSuffix) && strings.EqualFold(t[len(t)-len(arpaSuffix):], arpaSuffix)
}

// parseArpa 解析 ip6.arpa 反向形式，重建 128 位地址。
func parseArpa(s string) (Addr, error) {
	t := strings.TrimSuffix(s, ".")
	body := t[:len(t)-len(arpaSuffix)]
	labels := strings.Split(body, ".")
	if len(labels) != 32 {
		return Addr{}, fmt.Errorf("%w: %q has %d nibbles, want 32", ErrInvalidAddress, s, len(labels))
	}
	var w ipcore.Words
	for i, lab := range labels {
		if len(lab) != 1 {
			return Addr{}, fmt.Errorf("%w: nibble %q in %q", ErrInvalidAddress, lab, s)
		}
		v := ipcore.HexValue(lab[0])
		if v < 0 {
			return Addr{}, fmt.Errorf("%w: nibble %q in %q", ErrInvalidAddress, lab, s)
		}
		// 第一个 label 是最低位 nibble：反向重建
		j := 31 - i
		w[j/4] |= uint16(v) << uint(12-4*(j%4))
	}
	return newAddr(V6, w), nil
}
