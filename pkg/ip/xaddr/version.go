package xaddr

import "github.com/omeyang/ipkit/internal/ipcore"

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// IsValid 报告 v 是否为 V4 或 V6。
func (v Version) IsValid() bool {
	return v == V4 || v == V6
}

// WordCount 返回该版本的字数（V4: 4，V6: 8）。
// 无效版本返回 0。
func (v Version) WordCount() int {
	return v.desc().WordCount
}

// WordBits 返回该版本每字的位宽（V4: 8，V6: 16）。
// 无效版本返回 0。
func (v Version) WordBits() int {
	return int(v.desc().WordBits)
}

// WordMax 返回该版本单字的最大取值（V4: 255，V6: 65535）。
// 无效版本返回 0。
func (v Version) WordMax() uint16 {
	return v.desc().WordMax
}

// TotalBits 返回该版本的地址总位宽（V4: 32，V6: 128）。
// 无效版本返回 0。
func (v Version) TotalBits() int {
	return v.desc().TotalBits
}

// ByteLen 返回该版本地址的字节长度（V4: 4，V6: 16）。
// 无效版本返回 0。
func (v Version) ByteLen() int {
	return v.desc().ByteLen
}

// NibbleLen 返回该版本十六进制表示的字符数（V4: 8，V6: 32）。
// 无效版本返回 0。
func (v Version) NibbleLen() int {
	return v.desc().NibbleLen
}

// desc 返回版本对应的 ipcore 描述符。
// 无效版本返回零值描述符，调用方需先经 IsValid 把关。
func (v Version) desc() ipcore.Desc {
	switch v {
	case V4:
		return ipcore.Desc4
	case V6:
		return ipcore.Desc6
	default:
		return ipcore.Desc{}
	}
}
