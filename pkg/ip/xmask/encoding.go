package xmask

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出掩码文本（V4 点分十进制，V6 压缩冒号十六进制）。
// 无效掩码输出空字节切片。
func (m Mask) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return []byte{}, nil
	}
	return []byte(m.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的掩码文本。
// 空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (m *Mask) UnmarshalText(text []byte) error {
	if m == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*m = Mask{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的掩码文本，无效掩码输出空字符串（""）。
//
// 掩码文本仅含 [0-9a-f:.]，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (m Mask) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return []byte(`""`), nil
	}
	s := m.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 支持所有 [Parse] 支持的掩码文本。
// 空字符串或 null 设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (m *Mask) UnmarshalJSON(data []byte) error {
	if m == nil {
		return ErrNilReceiver
	}
	// 处理 null
	if string(data) == "null" {
		*m = Mask{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMask, err)
	}
	if s == "" {
		*m = Mask{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]。
// 用于 SQL 数据库写入。
// 输出掩码文本，无效掩码返回 nil（SQL NULL）。
func (m Mask) Value() (driver.Value, error) {
	if !m.IsValid() {
		return nil, nil
	}
	return m.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 用于 SQL 数据库读取。
// 支持 string、[]byte（掩码文本或 4/16 字节二进制）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (m *Mask) Scan(src any) error {
	if m == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*m = Mask{}
		return nil
	case string:
		if v == "" {
			*m = Mask{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*m = Mask{}
			return nil
		}
		// 与地址一致：先按文本解析，失败且长度恰为 4/16 时再按二进制解释。
		if parsed, err := Parse(string(v)); err == nil {
			*m = parsed
			return nil
		}
		if len(v) == 4 || len(v) == 16 {
			parsed, err := FromBytes(v)
			if err != nil {
				return err
			}
			*m = parsed
			return nil
		}
		return fmt.Errorf("%w: %q", ErrInvalidMask, v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidMask, src)
	}
}
