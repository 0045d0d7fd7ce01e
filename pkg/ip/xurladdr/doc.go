// Package xurladdr 从 URL 形文本中提取 IP 地址及周边要素。
//
// 面向以 IP 字面量为 host 的 URL（日志行、探活目标、配置值等）：
//   - 一次提取 scheme、地址、端口、路径（查询与片段一并保留）
//   - V6 host 要求方括号包裹，可携带 %zone；V4 host 为裸点分十进制
//   - ExtractV4 / ExtractV6 钉定版本，拿到另一版本时报错
//
// # 快速示例
//
//	u, err := xurladdr.Extract("http://[2001:db8::1]:8080/health?probe=1")
//	if err != nil {
//		return err
//	}
//	u.Scheme        // "http"
//	u.Addr.String() // "2001:db8::1"
//	u.Port          // 8080
//	u.Path          // "/health?probe=1"
//
// # 设计决策
//
// 正则只负责切出 URL 的骨架，host 文本的合法性完全交给 xaddr：
// 地址语法在整个模块里只有一份实现。因此方括号内放了非 V6 文本
// （如 "[1.2.3.4]"）得到的是 xaddr 的地址错误而非 URL 结构错误。
//
// 域名形式的 host 不在本包范围内：只认 IP 字面量，
// "http://example.com/" 是 ErrInvalidURL。
//
// # 错误处理
//
// 结构问题与地址问题分层：
//
//	_, err := xurladdr.Extract("http://10.0.0.1:99999/")
//	errors.Is(err, xurladdr.ErrInvalidPort) // true
//
//	_, err = xurladdr.Extract("http://300.0.0.1/")
//	errors.Is(err, xaddr.ErrAddressItem) // true，地址错误原样透出
package xurladdr
