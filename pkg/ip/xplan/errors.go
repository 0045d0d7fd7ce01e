package xplan

import "errors"

// 包级哨兵错误。
var (
	// ErrUnknownFormat 表示不支持的计划文档格式。
	ErrUnknownFormat = errors.New("xplan: unknown plan format")

	// ErrBadPlan 表示计划文档不合法：语法错误、结构错误，
	// 或某条网络定义无法构造（内层地址/掩码错误一并包裹）。
	ErrBadPlan = errors.New("xplan: bad plan")

	// ErrAmbiguousMask 表示网络条目没有恰好指定 cidr/mask/hosts 之一。
	ErrAmbiguousMask = errors.New("xplan: ambiguous mask specification")

	// ErrOverlap 表示 forbid-overlap 计划中两个网络的地址范围重叠。
	ErrOverlap = errors.New("xplan: networks overlap")
)
