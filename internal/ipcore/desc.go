package ipcore

// Desc 描述一个 IP 版本的固定宽度参数。
// 所有字段在进程启动时确定，只读。
type Desc struct {
	// WordCount 字数（IPv4: 4，IPv6: 8）。
	WordCount int
	// WordBits 每字位宽（IPv4: 8，IPv6: 16）。
	WordBits uint
	// WordMax 单字最大值（IPv4: 0xFF，IPv6: 0xFFFF）。
	WordMax uint16
	// TotalBits 地址总位宽（IPv4: 32，IPv6: 128）。
	TotalBits int
	// ByteLen 字节表示长度（IPv4: 4，IPv6: 16）。
	ByteLen int
	// NibbleLen 十六进制表示的 nibble 数（IPv4: 8，IPv6: 32）。
	NibbleLen int
}

// 预定义的版本描述符。
var (
	// Desc4 IPv4 描述符：4 字 × 8 位。
	Desc4 = Desc{WordCount: 4, WordBits: 8, WordMax: 0xFF, TotalBits: 32, ByteLen: 4, NibbleLen: 8}

	// Desc6 IPv6 描述符：8 字 × 16 位。
	Desc6 = Desc{WordCount: 8, WordBits: 16, WordMax: 0xFFFF, TotalBits: 128, ByteLen: 16, NibbleLen: 32}
)

// bytesPerWord 每字占用的字节数。
func (d Desc) bytesPerWord() int {
	return d.ByteLen / d.WordCount
}
