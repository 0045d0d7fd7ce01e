package xsubnet

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidSubnet 表示地址或掩码无效（含 nil/零值输入）。
	ErrInvalidSubnet = errors.New("xsubnet: invalid subnet")

	// ErrVersionMismatch 表示地址与掩码的 IP 版本不一致。
	ErrVersionMismatch = errors.New("xsubnet: address and mask version mismatch")

	// ErrMissingMask 表示 V6 地址文本缺少掩码信息（V6 没有类别缺省）。
	ErrMissingMask = errors.New("xsubnet: V6 subnet requires an explicit mask")

	// ErrBadSplit 表示切分参数无效：前缀不比当前更长、越界或子网数超出上限。
	ErrBadSplit = errors.New("xsubnet: bad split")

	// ErrSubnetOverflow 表示相邻子网越过了地址空间边界。
	ErrSubnetOverflow = errors.New("xsubnet: subnet out of address space")
)
