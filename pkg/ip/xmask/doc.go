// Package xmask 提供子网掩码的构造、校验与容量计算。
//
// 合法掩码是"前缀形"：高位连续 1，低位连续 0。[Mask] 因此只存
// 版本与前缀长度两个字节，可比较、可作 map 键；字形式与地址空间
// 容量在进程启动时一次性建表，之后全部按表派生：
//
//   - 多来源构造（CIDR 数值、掩码文本、地址值、字节/整数/位串）
//   - 前缀形校验（区分"字值非法"与"零位后再置位"两类错误）
//   - 容量与可用主机数（big.Int 精确值与 uint64 快捷形式）
//   - 按主机数反推最小子网（[FromHosts]）
//   - V4 类别缺省掩码（A /8、B /16、C /24）
//   - 通配符掩码（[Mask.Wildcard]）
//   - JSON/Text/SQL 序列化支持
//
// # 快速示例
//
// 构造与派生：
//
//	m, err := xmask.Parse("255.255.255.0")
//	m.CIDR()        // 24
//	m.Hosts()       // 254
//	m.Wildcard()    // 0.0.0.255
//
// 按主机数选掩码：
//
//	m, err := xmask.FromHosts(xaddr.V4, 300)
//	m.String()      // 255.255.254.0 （/23，最小能容纳 300 台主机的子网）
//
// # 设计决策
//
//   - 掩码不承载字数组，只存 (版本, 前缀长度)：前缀形掩码与前缀长度
//     一一对应，查表派生让 Mask 保持两字节的可比较值类型
//   - 可用主机数的访问器带边界特例（V4 /32 为 1、/31 为 2；V6 /128 为 1、
//     /127 为 0），而 [FromHosts] 的搜索统一用"容量减固定开销"且无特例。
//     两套规则是沿用已久的链条语义，各自按契约保留
//   - [Mask.Addr] 把掩码升格为地址值，格式化、转换与位运算全部复用
//     [github.com/omeyang/ipkit/pkg/ip/xaddr] 的实现
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xmask.Parse("255.0.255.0")
//	if errors.Is(err, xmask.ErrNonContiguous) {
//	    // 零位之后再出现置位
//	}
package xmask
