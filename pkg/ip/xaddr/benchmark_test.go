package xaddr

import (
	"net/netip"
	"testing"
)

// =============================================================================
// 解析基准测试
// =============================================================================

func BenchmarkParse(b *testing.B) {
	b.Run("V4", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse("192.168.1.25")
		}
	})
	b.Run("V6", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse("2001:db8:85a3::8a2e:370:7334")
		}
	})
	b.Run("V6-mapped", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse("::ffff:192.168.1.1")
		}
	})
	b.Run("ip6.arpa", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse("1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa")
		}
	})
	// 对照：标准库解析同样的文本
	b.Run("netip.ParseAddr-V6", func(b *testing.B) {
		for b.Loop() {
			_, _ = netip.ParseAddr("2001:db8:85a3::8a2e:370:7334")
		}
	})
}

func BenchmarkCacheParse(b *testing.B) {
	c, err := NewCache(CacheConfig{Size: 1024})
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()
	// 预热
	_, _ = c.Parse("2001:db8:85a3::8a2e:370:7334")

	b.Run("hit", func(b *testing.B) {
		for b.Loop() {
			_, _ = c.Parse("2001:db8:85a3::8a2e:370:7334")
		}
	})
	b.Run("direct", func(b *testing.B) {
		for b.Loop() {
			_, _ = Parse("2001:db8:85a3::8a2e:370:7334")
		}
	})
}

// =============================================================================
// 格式化基准测试
// =============================================================================

func BenchmarkString(b *testing.B) {
	b.Run("memoized", func(b *testing.B) {
		addr := MustParse("2001:db8:85a3::8a2e:370:7334")
		_ = addr.String()
		b.ReportAllocs()
		for b.Loop() {
			_ = addr.String()
		}
	})
	b.Run("fresh", func(b *testing.B) {
		b.ReportAllocs()
		var n uint32
		for b.Loop() {
			n++
			_ = FromUint32(n).String()
		}
	})
	b.Run("netip.Addr.String", func(b *testing.B) {
		addr := netip.MustParseAddr("2001:db8:85a3::8a2e:370:7334")
		b.ReportAllocs()
		for b.Loop() {
			_ = addr.String()
		}
	})
}

func BenchmarkExpanded(b *testing.B) {
	addr := MustParse("2001:db8::1")
	_ = addr.Expanded()
	b.ReportAllocs()
	for b.Loop() {
		_ = addr.Expanded()
	}
}

func BenchmarkToIP6Arpa(b *testing.B) {
	addr := MustParse("2001:db8::1")
	for b.Loop() {
		_, _ = addr.ToIP6Arpa()
	}
}

// =============================================================================
// 比较与哈希基准测试
// =============================================================================

func BenchmarkCompare(b *testing.B) {
	x := MustParse("2001:db8::1")
	y := MustParse("2001:db8::2")
	for b.Loop() {
		_ = x.Compare(y)
	}
}

func BenchmarkHash64(b *testing.B) {
	b.Run("V4", func(b *testing.B) {
		addr := MustParse("192.168.1.25")
		for b.Loop() {
			_ = addr.Hash64()
		}
	})
	b.Run("V6", func(b *testing.B) {
		addr := MustParse("2001:db8::1")
		for b.Loop() {
			_ = addr.Hash64()
		}
	})
}
