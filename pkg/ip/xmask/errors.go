package xmask

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidVersion 表示无效的 IP 版本。
	ErrInvalidVersion = errors.New("xmask: invalid IP version")

	// ErrInvalidCIDR 表示前缀长度超出版本允许范围。
	ErrInvalidCIDR = errors.New("xmask: CIDR prefix length out of range")

	// ErrInvalidMask 表示字值不构成合法的前缀掩码。
	ErrInvalidMask = errors.New("xmask: invalid mask")

	// ErrNonContiguous 表示掩码在零位之后又出现置位（非连续）。
	ErrNonContiguous = errors.New("xmask: non-contiguous mask")

	// ErrHostCountRange 表示主机数超出该版本地址空间可容纳的范围。
	ErrHostCountRange = errors.New("xmask: host count out of range")

	// ErrNoClassMask 表示地址没有类别缺省掩码（D/E 类或非 V4 地址）。
	ErrNoClassMask = errors.New("xmask: no class default mask")

	// ErrNilReceiver 表示在 nil 接收者上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmask: nil receiver")
)
