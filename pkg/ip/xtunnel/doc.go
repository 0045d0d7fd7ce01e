// Package xtunnel 提供 V4-in-V6 隧道地址的编解码。
//
// 支持三种布局（[Mode]）：
//
//   - [Mapped]: ::ffff:a.b.c.d，V4 在 word[6..7]
//   - [SixToFour]: 2002::/16，V4 在 word[1..2]
//   - [Teredo]: 2001:0::/32，服务器在 word[2..3]，标志在 word[4]，
//     端口在 word[5]（XOR 0xFFFF 混淆），客户端在 word[6..7]（逐字节取反混淆）
//
// # 快速示例
//
// 嵌入与提取：
//
//	client := xaddr.MustParse("192.168.1.25")
//	v6, _ := xtunnel.ToIPv6(client, xtunnel.SixToFour)
//	fmt.Println(v6)  // 2002:c0a8:119::
//
//	back, _ := xtunnel.ToIPv4(v6, xtunnel.SixToFour)
//	fmt.Println(back)  // 192.168.1.25
//
// Teredo 完整解码：
//
//	info, _ := xtunnel.ParseTeredo(xaddr.MustParse("2001:0:4136:e378:8000:63bf:3fff:fdd2"))
//	// info.Server = 65.54.227.120, info.Port = 40000, info.Client = 192.0.2.45
//
// # 设计决策
//
//   - [TeredoParams] 的 Flags 与 Port 用 uint16 承载，越界取值在类型层面
//     不可表示；[NewTeredoParams] 为从整数域（CLI 标志等）出发的调用方
//     提供带 [ErrFlagsRange]/[ErrPortRange] 的显式校验入口
//   - 提取与判定只读字数组，zone id 不参与；所有模式满足
//     ToIPv4(ToIPv6(v4, m), m) == v4 的往返恒等
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xtunnel.ToIPv4(xaddr.MustParse("2001:db8::1"), xtunnel.Teredo)
//	if errors.Is(err, xtunnel.ErrNotTunneled) {
//	    // 不符合 teredo 布局
//	}
package xtunnel
