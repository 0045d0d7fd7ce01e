// Package xsubnet 提供地址 + 掩码的网络上下文与子网运算。
//
// [Subnet] 把一个地址和同版本掩码配对，在此之上派生与判定：
//
//   - 派生地址：网络地址、最末地址/广播地址、首/末主机（惰性计算并缓存）
//   - 成员判定：[Subnet.Includes]（掩码与运算）、[Subnet.IsHost]（数值区间）
//   - 子网运算：[Subnet.Split] 等宽切分、[Subnet.Next]/[Subnet.Prev] 相邻子网
//   - 标准库互操作：[Subnet.Prefix]、[Subnet.Range]、[SubnetsToIPSet]
//
// # 快速示例
//
// 解析与派生：
//
//	sn, err := xsubnet.Parse("192.168.1.25/24")
//	fmt.Println(sn)              // 192.168.1.0/24
//	fmt.Println(sn.FirstHost())  // 192.168.1.1
//	b, _ := sn.Broadcast()
//	fmt.Println(b)               // 192.168.1.255
//
// 裸 V4 地址按类别取缺省掩码：
//
//	sn, _ = xsubnet.Parse("192.168.1.25")  // C 类，等价 /24
//	fmt.Println(sn.Hosts())                // 254
//
// 成员判定：
//
//	sn.Includes(xaddr.MustParse("192.168.1.77"))  // true
//	sn.IsHost(xaddr.MustParse("192.168.1.0"))     // false（网络地址不是主机）
//
// # 设计决策
//
//   - 派生字段逐项用 sync.Once 惰性求值：只取 Network 不付出主机区间的成本；
//     Subnet 因此以指针使用、不可拷贝
//   - IsHost 用数值区间（首主机 <= a <= 末主机）判定，大端字数组的逐字
//     比较就是数值比较；掩码很宽时逐字独立比较会错判内部地址
//     （如 10.0.17.0 在 10.0.0.0/16 中），数值区间没有这个问题
//   - 首/末主机在地址空间边缘做夹紧而非回绕：/32 于 255.255.255.255 回绕
//     会把首主机卷到 0.0.0.0，使区间判定覆盖几乎整个空间；夹紧后区间
//     倒置为空，退化前缀自然得到"没有主机"的答案
//   - 判定方法（Includes/IsHost）对版本不一致返回 false 而非报错，
//     与 netip 的谓词习惯一致；构造函数则显式报 [ErrVersionMismatch]
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xsubnet.Parse("2001:db8::1")
//	if errors.Is(err, xsubnet.ErrMissingMask) {
//	    // V6 必须显式给掩码
//	}
package xsubnet
