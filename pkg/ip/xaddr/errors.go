package xaddr

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xaddr: empty input")

	// ErrInvalidAddress 表示无效的 IP 地址格式。
	ErrInvalidAddress = errors.New("xaddr: invalid IP address")

	// ErrAddressItem 表示地址分段超出取值范围。
	ErrAddressItem = errors.New("xaddr: address item out of range")

	// ErrTooManyShortcuts 表示 IPv6 文本中出现多于一次的 :: 压缩。
	ErrTooManyShortcuts = errors.New("xaddr: too many :: shortcuts")

	// ErrInvalidZone 表示 zone id 不是合法的字母数字 token。
	ErrInvalidZone = errors.New("xaddr: invalid zone id")

	// ErrInvalidLength 表示字节/二进制/十六进制表示的长度与版本位宽不符。
	ErrInvalidLength = errors.New("xaddr: invalid length")

	// ErrInvalidVersion 表示无效的 IP 版本。
	ErrInvalidVersion = errors.New("xaddr: invalid IP version")

	// ErrVersionMismatch 表示参与运算的地址版本不一致。
	ErrVersionMismatch = errors.New("xaddr: version mismatch")

	// ErrInvalidBigInt 表示 big.Int 值超出地址位宽范围。
	ErrInvalidBigInt = errors.New("xaddr: big.Int value out of range for IP address")

	// ErrOverflow 表示地址运算上溢（超过地址空间最大值）。
	ErrOverflow = errors.New("xaddr: address overflow")

	// ErrUnderflow 表示地址运算下溢（低于全零地址）。
	ErrUnderflow = errors.New("xaddr: address underflow")

	// ErrNilReceiver 表示对 nil 接收者调用反序列化方法。
	ErrNilReceiver = errors.New("xaddr: nil receiver")
)

// 解析缓存相关错误。
var (
	// ErrInvalidSize 表示缓存容量必须大于 0。
	ErrInvalidSize = errors.New("xaddr: cache size must be positive")

	// ErrSizeExceedsMax 表示缓存容量超过上限。
	ErrSizeExceedsMax = errors.New("xaddr: cache size exceeds maximum")

	// ErrInvalidTTL 表示缓存 TTL 不允许为负值。
	ErrInvalidTTL = errors.New("xaddr: cache TTL must be non-negative")
)
