package xaddr

import "github.com/omeyang/ipkit/internal/ipcore"

// Class 是 V4 地址的传统分类，由首字节决定。
type Class uint8

const (
	ClassA Class = iota // 0.0.0.0 - 127.255.255.255
	ClassB              // 128.0.0.0 - 191.255.255.255
	ClassC              // 192.0.0.0 - 223.255.255.255
	ClassD              // 224.0.0.0 - 239.255.255.255，组播
	ClassE              // 240.0.0.0 - 255.255.255.255，保留
)

// String 返回分类字母。
func (c Class) String() string {
	switch c {
	case ClassA:
		return "A"
	case ClassB:
		return "B"
	case ClassC:
		return "C"
	case ClassD:
		return "D"
	case ClassE:
		return "E"
	default:
		return "unknown"
	}
}

// AddrType 是 V6 地址的归类标签。
type AddrType uint8

const (
	TypeNone        AddrType = iota // 未落入任何已知归类
	TypeLinkLocal                   // fe80::/10
	TypeUnicast                     // 2000::/3
	TypeReserved                    // 最高字节 0x00
	TypeLoopback                    // ::1
	TypeUniqueLocal                 // fd00::/8
	TypeMulticast                   // ff00::/8
)

// String 返回归类的稳定标签。
func (t AddrType) String() string {
	switch t {
	case TypeLinkLocal:
		return "link-local"
	case TypeUnicast:
		return "unicast"
	case TypeReserved:
		return "reserved"
	case TypeLoopback:
		return "loopback"
	case TypeUniqueLocal:
		return "unique-local"
	case TypeMulticast:
		return "multicast"
	default:
		return "none"
	}
}

// Class 返回 V4 地址的传统分类。V6 与无效地址返回 ok=false。
func (a Addr) Class() (Class, bool) {
	if a.version != V4 {
		return 0, false
	}
	switch o := a.words[0]; {
	case o < 128:
		return ClassA, true
	case o < 192:
		return ClassB, true
	case o < 224:
		return ClassC, true
	case o < 240:
		return ClassD, true
	default:
		return ClassE, true
	}
}

// IsPrivate 报告是否为 V4 私有地址：
// 10.0.0.0/8、172.16.0.0/12、192.168.0.0/16。V6 返回 false。
func (a Addr) IsPrivate() bool {
	if a.version != V4 {
		return false
	}
	switch {
	case a.words[0] == 10:
		return true
	case a.words[0] == 172 && a.words[1] >= 16 && a.words[1] <= 31:
		return true
	case a.words[0] == 192 && a.words[1] == 168:
		return true
	}
	return false
}

// IsMulticast 报告是否为组播地址：V4 为 224.0.0.0/4，V6 为 ff00::/8。
func (a Addr) IsMulticast() bool {
	switch a.version {
	case V4:
		return a.words[0] >= 224 && a.words[0] <= 239
	case V6:
		return a.words[0]>>8 == 0xFF
	}
	return false
}

// IsLoopback 报告是否为回环地址。
// V4 仅匹配 127.0.0.1 这一个地址（不含整个 127/8），V6 仅匹配 ::1。
func (a Addr) IsLoopback() bool {
	switch a.version {
	case V4:
		return ipcore.ToUint32(a.words) == 2130706433
	case V6:
		for i := range 7 {
			if a.words[i] != 0 {
				return false
			}
		}
		return a.words[7] == 1
	}
	return false
}

// IsLinkLocal 报告是否为 V6 link-local 地址（fe80::/10）。V4 返回 false。
func (a Addr) IsLinkLocal() bool {
	return a.version == V6 && a.words[0]&0xFFC0 == 0xFE80
}

// IsUniqueLocal 报告是否为 V6 unique-local 地址（fd00::/8）。V4 返回 false。
func (a Addr) IsUniqueLocal() bool {
	return a.version == V6 && a.words[0]>>8 == 0xFD
}

// IsUnicast 报告是否为 V6 全球单播地址（2000::/3）。V4 返回 false。
func (a Addr) IsUnicast() bool {
	return a.version == V6 && a.words[0]&0xE000 == 0x2000
}

// IsReserved 报告是否落在 V6 最高字节为零的保留段。V4 返回 false。
func (a Addr) IsReserved() bool {
	return a.version == V6 && a.words[0]>>8 == 0
}

// Type 按固定优先级归类 V6 地址。V4 与无效地址返回 ok=false。
//
// 判定顺序是契约的一部分：link-local → unicast → reserved → loopback →
// unique-local → multicast，都不命中则为 [TypeNone]。::1 的最高字节为零，
// 因此先命中 reserved 而非 loopback。
func (a Addr) Type() (AddrType, bool) {
	if a.version != V6 {
		return TypeNone, false
	}
	switch {
	case a.IsLinkLocal():
		return TypeLinkLocal, true
	case a.IsUnicast():
		return TypeUnicast, true
	case a.IsReserved():
		return TypeReserved, true
	case a.IsLoopback():
		return TypeLoopback, true
	case a.IsUniqueLocal():
		return TypeUniqueLocal, true
	case a.IsMulticast():
		return TypeMulticast, true
	}
	return TypeNone, true
}
