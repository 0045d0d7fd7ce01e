package xurladdr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// invalidString 是无效提取结果的字符串表示。
const invalidString = "invalid URL"

// urlPattern 匹配 IP 字面量 URL 的整体结构：[scheme://] host [:port] [path]。
//
//   - scheme：字母开头，后续为字母/数字/+/-/.（RFC 3986 形式）
//   - host：方括号内的 V6 文本，或裸的点分十进制 V4
//   - port：十进制数字串，范围校验在正则之外
//   - path：以 / ? # 之一起始的剩余部分，查询与片段一并保留
//
// host 的字符集刻意放宽：地址合法性交给 xaddr 校验，
// 地址语法只有一份实现，两处不会出现判定不一致。
var urlPattern = regexp.MustCompile(
	`^(?:([a-zA-Z][a-zA-Z0-9+.-]*)://)?` + // scheme
		`(?:\[([^\]]+)\]|([0-9.]+))` + // host：带括号的 V6 或裸 V4
		`(?::([0-9]+))?` + // port
		`([/?#].*)?$`) // path/query/fragment

// URLAddress 是从 URL 形文本中提取出的地址及周边要素。
type URLAddress struct {
	Scheme string // 无 scheme 时为空串
	Addr   xaddr.Addr
	Port   int    // 无端口时为 -1
	Path   string // 含查询与片段；无路径时为空串
}

// Extract 从 URL 形文本中提取 scheme、地址、端口与路径。
//
// V6 host 必须置于方括号内（可携带 %zone 后缀），V4 host 为裸点分
// 十进制；域名形式的 host 不在本包范围内。scheme、端口、路径均可省略。
//
// 结构不合法（包括出现第二个 "://"）返回 [ErrInvalidURL]；
// 端口超出 [0, 65535] 返回 [ErrInvalidPort]；
// host 文本本身的问题原样返回 xaddr 的解析错误。
func Extract(s string) (URLAddress, error) {
	if s == "" {
		return URLAddress{}, fmt.Errorf("%w: empty input", ErrInvalidURL)
	}
	if i := strings.Index(s, "://"); i >= 0 && strings.Contains(s[i+3:], "://") {
		return URLAddress{}, fmt.Errorf("%w: second %q in %q", ErrInvalidURL, "://", s)
	}
	m := urlPattern.FindStringSubmatch(s)
	if m == nil {
		return URLAddress{}, fmt.Errorf("%w: %q", ErrInvalidURL, s)
	}

	var (
		addr xaddr.Addr
		err  error
	)
	if m[2] != "" {
		addr, err = xaddr.ParseV6(m[2])
	} else {
		addr, err = xaddr.ParseV4(m[3])
	}
	if err != nil {
		return URLAddress{}, err
	}

	port := -1
	if m[4] != "" {
		port, err = strconv.Atoi(m[4])
		if err != nil || port > 65535 {
			return URLAddress{}, fmt.Errorf("%w: %q not in [0, 65535]", ErrInvalidPort, m[4])
		}
	}

	return URLAddress{Scheme: m[1], Addr: addr, Port: port, Path: m[5]}, nil
}

// ExtractV4 类似 [Extract]，但要求提取出的地址为 IPv4，
// 否则返回 [ErrWrongVersion]。
func ExtractV4(s string) (URLAddress, error) {
	u, err := Extract(s)
	if err != nil {
		return URLAddress{}, err
	}
	if u.Addr.Version() != xaddr.V4 {
		return URLAddress{}, fmt.Errorf("%w: want IPv4, got %s", ErrWrongVersion, u.Addr.Version())
	}
	return u, nil
}

// ExtractV6 类似 [Extract]，但要求提取出的地址为 IPv6，
// 否则返回 [ErrWrongVersion]。
func ExtractV6(s string) (URLAddress, error) {
	u, err := Extract(s)
	if err != nil {
		return URLAddress{}, err
	}
	if u.Addr.Version() != xaddr.V6 {
		return URLAddress{}, fmt.Errorf("%w: want IPv6, got %s", ErrWrongVersion, u.Addr.Version())
	}
	return u, nil
}

// IsValid 报告提取结果是否有效（即地址有效）。
func (u URLAddress) IsValid() bool {
	return u.Addr.IsValid()
}

// String 重组 URL 文本：V6 地址加方括号（zone 保留），
// 端口与路径按提取结果追加。无效结果返回 "invalid URL"。
func (u URLAddress) String() string {
	if !u.IsValid() {
		return invalidString
	}
	var b strings.Builder
	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteString("://")
	}
	if u.Addr.Version() == xaddr.V6 {
		b.WriteByte('[')
		b.WriteString(u.Addr.StringWithZone())
		b.WriteByte(']')
	} else {
		b.WriteString(u.Addr.String())
	}
	if u.Port >= 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.Port))
	}
	b.WriteString(u.Path)
	return b.String()
}
