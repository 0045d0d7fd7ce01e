package xtunnel

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidMode 表示隧道模式无效，或模式与调用参数不匹配。
	ErrInvalidMode = errors.New("xtunnel: invalid tunnel mode")

	// ErrNeedV4 表示该位置需要一个有效的 IPv4 地址。
	ErrNeedV4 = errors.New("xtunnel: IPv4 address required")

	// ErrNeedV6 表示该位置需要一个有效的 IPv6 地址。
	ErrNeedV6 = errors.New("xtunnel: IPv6 address required")

	// ErrNotTunneled 表示 V6 地址不符合所选模式的布局。
	ErrNotTunneled = errors.New("xtunnel: address does not match tunnel layout")

	// ErrFlagsRange 表示 Teredo 标志超出 [0, 65535]。
	ErrFlagsRange = errors.New("xtunnel: teredo flags out of range")

	// ErrPortRange 表示 Teredo 端口超出 [0, 65535]。
	ErrPortRange = errors.New("xtunnel: teredo port out of range")
)
