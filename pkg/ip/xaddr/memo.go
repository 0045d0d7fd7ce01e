package xaddr

import (
	"math/big"
	"sync/atomic"
)

// memo 保存地址派生表示的惰性缓存。
//
// 设计决策: 派生表示（规范字符串、展开字符串、big.Int、二进制、十六进制）
// 均为不可变字值的纯函数，首次访问时计算并通过 atomic.Pointer 发布。
// 并发首次访问可能重复计算，但结果恒等、相互覆盖无害，因此无需加锁。
// 缓存经由指针在副本间共享：复制 Addr 复制的是同一逻辑值，共享缓存是安全的。
type memo struct {
	str      atomic.Pointer[string]
	expanded atomic.Pointer[string]
	bigint   atomic.Pointer[big.Int]
	binary   atomic.Pointer[string]
	hex      atomic.Pointer[string]
}

// loadString 读取或计算一个字符串缓存槽。
// m 为 nil（零值 Addr 等非工厂路径）时直接计算不缓存。
func loadString(m *memo, slot *atomic.Pointer[string], compute func() string) string {
	if m == nil {
		return compute()
	}
	if p := slot.Load(); p != nil {
		return *p
	}
	s := compute()
	slot.Store(&s)
	return s
}

// loadBig 读取或计算 big.Int 缓存槽。
// 返回副本，调用方可自由修改。
func loadBig(m *memo, compute func() *big.Int) *big.Int {
	if m == nil {
		return compute()
	}
	if p := m.bigint.Load(); p != nil {
		return new(big.Int).Set(p)
	}
	v := compute()
	m.bigint.Store(v)
	return new(big.Int).Set(v)
}
