package xaddr

import "github.com/omeyang/ipkit/internal/ipcore"

// And 返回两个同版本地址的逐字按位与。
// 版本不一致返回 [ErrVersionMismatch]，任一地址无效返回 [ErrInvalidAddress]。
// 结果不携带 zone id（派生地址是纯数值）。
func And(a, b Addr) (Addr, error) {
	d, err := commonDesc(a, b)
	if err != nil {
		return Addr{}, err
	}
	return newAddr(a.version, ipcore.And(d, a.words, b.words)), nil
}

// Or 返回两个同版本地址的逐字按位或。
// 版本不一致返回 [ErrVersionMismatch]，任一地址无效返回 [ErrInvalidAddress]。
// 结果不携带 zone id。
func Or(a, b Addr) (Addr, error) {
	d, err := commonDesc(a, b)
	if err != nil {
		return Addr{}, err
	}
	return newAddr(a.version, ipcore.Or(d, a.words, b.words)), nil
}

// Not 返回地址的逐字按位取反。
// 每个字是独立的固定宽度 lane，不跨字进位。
// 无效地址返回 [ErrInvalidAddress]。结果不携带 zone id。
func Not(a Addr) (Addr, error) {
	if !a.IsValid() {
		return Addr{}, ErrInvalidAddress
	}
	return newAddr(a.version, ipcore.Not(a.version.desc(), a.words)), nil
}

// commonDesc 校验两个地址有效且版本一致，返回公共描述符。
func commonDesc(a, b Addr) (ipcore.Desc, error) {
	if !a.IsValid() || !b.IsValid() {
		return ipcore.Desc{}, ErrInvalidAddress
	}
	if a.version != b.version {
		return ipcore.Desc{}, ErrVersionMismatch
	}
	return a.version.desc(), nil
}
