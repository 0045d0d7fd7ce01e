package xurladdr

import "errors"

// 包级哨兵错误。URL 的结构问题与地址本身的问题分属两类：
// host 文本解析失败时原样返回 xaddr 的错误，可用 errors.Is 区分。
var (
	// ErrInvalidURL 表示文本不符合 [scheme://]host[:port][path] 结构。
	ErrInvalidURL = errors.New("xurladdr: malformed URL")

	// ErrInvalidPort 表示端口超出 [0, 65535] 范围。
	ErrInvalidPort = errors.New("xurladdr: port out of range")

	// ErrWrongVersion 表示版本钉定的提取得到了另一版本的地址。
	ErrWrongVersion = errors.New("xurladdr: wrong IP version")
)
