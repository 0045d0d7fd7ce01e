// Package xplan 加载并校验声明式的子网规划文档。
//
// 一份计划是一组命名网络，每个网络给出地址和三种掩码写法之一
// （cidr 前缀长度、mask 点分文本、hosts 主机数），可选地要求
// 网络之间互不重叠：
//
//	networks:
//	  office: { address: 192.168.1.0, cidr: 24 }
//	  lab:    { address: 10.4.0.0, mask: 255.255.0.0 }
//	  guests: { address: 172.16.4.0, hosts: 500 }
//	options:
//	  forbid-overlap: true
//
// # 快速示例
//
//	plan, err := xplan.Load(data, xplan.FormatYAML)
//	if err != nil {
//		return err
//	}
//	plan.Networks()                          // ["guests", "lab", "office"]
//	name, ok := plan.Lookup(xaddr.MustParse("192.168.1.40"))
//	// name == "office", ok == true
//
// # 设计决策
//
// 只接受原始字节：读文件是调用方（CLI、ConfigMap 挂载等）的事，
// 库内保持纯数据变换，koanf 的 rawbytes provider 正好是这个形态。
//
// cidr 与 hosts 在结构上用指针承载：0 对两者都是合法取值
// （/0 前缀、0 台主机），必须与「未给出」区分开。
//
// Lookup 在网络重叠时取前缀最长的匹配，与路由表的最长前缀
// 匹配习惯一致；只问「在不在计划内」用 Contains（合并集合查询）。
//
// 网络名不要含 "."：koanf 以 "." 作层级分隔符，带点的名字会被
// 展平成嵌套结构。
//
// # 错误处理
//
// 结构性错误用本包哨兵承载，网络定义的内层错误原样包裹：
//
//	_, err := xplan.Load(data, xplan.FormatYAML)
//	errors.Is(err, xplan.ErrAmbiguousMask) // 一条网络给了 cidr 又给了 mask
//	errors.Is(err, xmask.ErrInvalidCIDR)   // 内层错误保持可判定
package xplan
