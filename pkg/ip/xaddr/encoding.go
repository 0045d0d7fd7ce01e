package xaddr

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/omeyang/ipkit/internal/ipcore"
)

// BinaryString 返回定宽二进制位串：V4 为 32 个字符，V6 为 128 个字符。
// 无效地址返回空串。结果在首次计算后缓存。
func (a Addr) BinaryString() string {
	if !a.IsValid() {
		return ""
	}
	return loadString(a.memo, &a.memo.binary, func() string {
		d := a.version.desc()
		return string(ipcore.AppendBinary(d, make([]byte, 0, d.TotalBits), a.words))
	})
}

// FromBinaryString 从定宽二进制位串构造地址。
// 32 位为 V4，128 位为 V6，其余长度或含非 '0'/'1' 字符时报错。
func FromBinaryString(s string) (Addr, error) {
	var ver Version
	switch len(s) {
	case ipcore.Desc4.TotalBits:
		ver = V4
	case ipcore.Desc6.TotalBits:
		ver = V6
	default:
		return Addr{}, fmt.Errorf("%w: got %d binary digits, want 32 or 128", ErrInvalidLength, len(s))
	}
	w, ok := ipcore.ParseBinary(ver.desc(), s)
	if !ok {
		return Addr{}, fmt.Errorf("%w: binary string %q", ErrInvalidAddress, s)
	}
	return newAddr(ver, w), nil
}

// HexString 返回定宽小写十六进制串：V4 为 8 个字符，V6 为 32 个字符。
// 无效地址返回空串。结果在首次计算后缓存。
func (a Addr) HexString() string {
	if !a.IsValid() {
		return ""
	}
	return loadString(a.memo, &a.memo.hex, func() string {
		d := a.version.desc()
		return string(ipcore.AppendHex(d, make([]byte, 0, d.NibbleLen), a.words))
	})
}

// FromHexString 从定宽十六进制串构造地址（大小写不敏感）。
// 8 个 nibble 为 V4，32 个为 V6，其余长度或含无效字符时报错。
func FromHexString(s string) (Addr, error) {
	var ver Version
	switch len(s) {
	case ipcore.Desc4.NibbleLen:
		ver = V4
	case ipcore.Desc6.NibbleLen:
		ver = V6
	default:
		return Addr{}, fmt.Errorf("%w: got %d hex digits, want 8 or 32", ErrInvalidLength, len(s))
	}
	w, ok := ipcore.ParseHex(ver.desc(), s)
	if !ok {
		return Addr{}, fmt.Errorf("%w: hex string %q", ErrInvalidAddress, s)
	}
	return newAddr(ver, w), nil
}

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出标准文本形式，zone 非空时无条件携带（保证往返保真）。
// 无效地址输出空字节切片。
func (a Addr) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return []byte{}, nil
	}
	return []byte(a.StringWithZone()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的格式。
// 空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的标准文本字符串，无效地址输出空字符串（""）。
//
// 地址文本仅含 [0-9a-f:.%] 与字母数字 zone 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	if !a.IsValid() {
		return []byte(`""`), nil
	}
	s := a.StringWithZone()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 支持所有 [Parse] 支持的格式。
// 空字符串或 null 设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
//
// 此方法应通过 [json.Unmarshal] 间接调用，不建议直接调用。
// 直接调用时 null 匹配为精确字节比较（不去除空白），
// 这与 Go 标准库 [time.Time.UnmarshalJSON] 的行为一致。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	// 处理 null
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if s == "" {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]。
// 用于 SQL 数据库写入。
// 输出标准文本字符串（含 zone），无效地址返回 nil（SQL NULL）。
func (a Addr) Value() (driver.Value, error) {
	if !a.IsValid() {
		return nil, nil
	}
	return a.StringWithZone(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 用于 SQL 数据库读取。
// 支持 string、[]byte（字符串或 4/16 字节二进制）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		if v == "" {
			*a = Addr{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*a = Addr{}
			return nil
		}
		// 最短合法文本 "::1" 只有 3 字符，4/16 字节的二进制表示与文本
		// 存在长度重叠（部分驱动对 VARCHAR 列也返回 []byte）。
		// 先按文本解析，失败且长度恰为 4/16 时再按二进制解释。
		if parsed, err := Parse(string(v)); err == nil {
			*a = parsed
			return nil
		}
		if len(v) == 4 || len(v) == 16 {
			parsed, err := FromBytes(v)
			if err != nil {
				return err
			}
			*a = parsed
			return nil
		}
		return fmt.Errorf("%w: %q", ErrInvalidAddress, v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidAddress, src)
	}
}
