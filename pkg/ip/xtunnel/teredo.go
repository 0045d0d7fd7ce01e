package xtunnel

import (
	"fmt"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
)

// obfuscation 是 Teredo 端口与客户端地址的混淆掩码：
// 端口按字、客户端按字节全部与 1 异或，效果都等价于字级 XOR 0xFFFF。
const obfuscation = 0xFFFF

// TeredoParams 是 Teredo 嵌入所需的参数。
// Server 必须是有效的 V4 地址；Flags 与 Port 为 uint16，
// 超范围取值在类型层面即不可表示。
type TeredoParams struct {
	Server xaddr.Addr
	Flags  uint16
	Port   uint16
}

// NewTeredoParams 从整数域构造 [TeredoParams] 并做范围校验。
// 供 CLI 等从文本/整数输入出发的调用方使用：
// flags 或 port 超出 [0, 65535] 分别返回 [ErrFlagsRange]、[ErrPortRange]。
func NewTeredoParams(server xaddr.Addr, flags, port int) (TeredoParams, error) {
	if !server.IsValid() || server.Version() != xaddr.V4 {
		return TeredoParams{}, fmt.Errorf("%w: teredo server, got %s", ErrNeedV4, server.Version())
	}
	if flags < 0 || flags > 0xFFFF {
		return TeredoParams{}, fmt.Errorf("%w: %d", ErrFlagsRange, flags)
	}
	if port < 0 || port > 0xFFFF {
		return TeredoParams{}, fmt.Errorf("%w: %d", ErrPortRange, port)
	}
	return TeredoParams{Server: server, Flags: uint16(flags), Port: uint16(port)}, nil
}

// TeredoInfo 是 Teredo 地址的完整解码结果。
// Port 与 Client 均为去混淆后的真实值。
type TeredoInfo struct {
	Server xaddr.Addr
	Client xaddr.Addr
	Flags  uint16
	Port   uint16
}

// ParseTeredo 完整解码一个 Teredo 地址：
// 服务器（明文）、标志（明文）、端口（去混淆）、客户端（去混淆）。
// 布局不匹配返回 [ErrNotTunneled]。
func ParseTeredo(v6 xaddr.Addr) (TeredoInfo, error) {
	if !v6.IsValid() || v6.Version() != xaddr.V6 {
		return TeredoInfo{}, fmt.Errorf("%w: got %s", ErrNeedV6, v6.Version())
	}
	if !Is(v6, Teredo) {
		return TeredoInfo{}, fmt.Errorf("%w: %s is not teredo", ErrNotTunneled, v6)
	}
	return TeredoInfo{
		Server: unpackV4(v6.Word(2), v6.Word(3)),
		Client: unpackV4(v6.Word(6)^obfuscation, v6.Word(7)^obfuscation),
		Flags:  v6.Word(4),
		Port:   v6.Word(5) ^ obfuscation,
	}, nil
}

// teredoEmbed 按 Teredo 布局组装 V6 地址。
func teredoEmbed(client xaddr.Addr, p TeredoParams) (xaddr.Addr, error) {
	if !p.Server.IsValid() || p.Server.Version() != xaddr.V4 {
		return xaddr.Addr{}, fmt.Errorf("%w: teredo server, got %s", ErrNeedV4, p.Server.Version())
	}
	serverHi, serverLo := packV4(p.Server)
	clientHi, clientLo := packV4(client)
	return xaddr.MustFromWords(xaddr.V6, []uint16{
		teredoPrefix, 0,
		serverHi, serverLo,
		p.Flags,
		p.Port ^ obfuscation,
		clientHi ^ obfuscation, clientLo ^ obfuscation,
	}), nil
}
