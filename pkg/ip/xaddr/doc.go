// Package xaddr 提供精确位级语义的 IP 地址值类型。
//
// xaddr 以定长字数组表示地址：V4 为 4 个 8 位字，V6 为 8 个 16 位字，
// 大端序，word[0] 为最高位字。在此之上提供解析、格式化、分类与运算：
//
//   - 多格式解析（点分十进制、冒号十六进制、IPv4-mapped、ip6.arpa、%zone 后缀）
//   - 多形式输出（压缩、完全展开、二进制位串、定宽十六进制、反向 DNS 名）
//   - 地址分类（V4 类别 A-E 与私有/组播/回环判定，V6 类型归类）
//   - 数值转换（uint32、大端字节、big.Int、[net/netip.Addr] 互转）
//   - JSON/Text/SQL 序列化支持
//   - 地址运算（And/Or/Not、Next/Prev、全序比较与 64 位哈希）
//   - 带 TTL 的解析结果 LRU 缓存（[Cache]）
//
// # 快速示例
//
// 解析和格式化：
//
//	addr, err := xaddr.Parse("2001:0DB8::0001")
//	fmt.Println(addr.String())    // 2001:db8::1
//	fmt.Println(addr.Expanded())  // 2001:0db8:0000:0000:0000:0000:0000:0001
//
// 分类判断：
//
//	v4 := xaddr.MustParse("192.168.1.25")
//	v4.IsPrivate()  // true
//	c, _ := v4.Class()
//	fmt.Println(c)  // C
//
// JSON 序列化：
//
//	type Endpoint struct {
//	    IP xaddr.Addr `json:"ip"`
//	}
//	json.Marshal(Endpoint{IP: addr})  // {"ip":"2001:db8::1"}
//
// # 设计决策
//
//   - 使用定长字数组而非 4/16 字节数组：位运算、掩码推导与格式化都以字为
//     单位，字数组让这些路径免去打包拆包
//   - 零值表示无效地址，受 [net/netip.Addr] 零值语义启发
//   - V6 文本压缩取最长全零字段（平局取最早），长度为 1 的段同样压缩，
//     全零输出 "::"。RFC 5952 不压缩单个零组，本包压缩：这是测试锁定的
//     稳定契约
//   - V4 回环判定仅匹配 127.0.0.1 这一个地址而非整个 127/8；V6 类型归类
//     顺序固定，::1 因最高字节为零判为 reserved 而非 loopback。两者都是
//     沿用已久的链条语义，按契约保留
//   - JSON 序列化：无效地址输出 ""（空字符串），保证 JSON 往返一致性；
//     SQL 序列化：无效地址输出 nil（SQL NULL）。如需 JSON null，使用指针类型 *Addr
//
// # 相等性与比较
//
// Addr 内部携带惰性求值的文本缓存指针，因此 == 比较的是指针身份而非
// 地址值，结果没有意义。一律使用语义方法：
//
//	a.Equal(b)    // 版本与字数组相等（zone 不参与）
//	a.Compare(b)  // 全序：V4 < V6，同版本按数值
//	a.Hash64()    // 与 Equal 一致的 64 位哈希，可作 map key 的替代
//
// 需要把地址当 map key 时，用 a.Hash64() 或 a.String() 作键。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	addr, err := xaddr.Parse("300.1.2.3")
//	if errors.Is(err, xaddr.ErrAddressItem) {
//	    // 分量越界
//	}
//
// # 平台要求
//
// xaddr 使用 Go 1.25+ 的语言特性（范围整数迭代、泛型原子指针）。
// 最低要求 Go 1.25（与项目 go.mod 一致）。
package xaddr
