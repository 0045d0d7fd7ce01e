package xurladdr

import (
	"testing"
)

// =============================================================================
// 提取-重组往返模糊测试
// =============================================================================

func FuzzExtract(f *testing.F) {
	f.Add("http://192.168.1.1:8080/path")
	f.Add("https://[2001:db8::1]:443/a?b=c#d")
	f.Add("tcp://[fe80::1%eth0]")
	f.Add("10.0.0.1")
	f.Add("[::1]:80")
	f.Add("ldap://[2001:db8::7]/c=GB?objectClass?one")
	f.Add("http://1.2.3.4:99999")
	f.Add("a://b://c")
	f.Add("http://")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		u, err := Extract(s)
		if err != nil {
			if u.IsValid() {
				t.Errorf("Extract(%q) returned error with valid result", s)
			}
			return
		}
		if !u.IsValid() {
			t.Fatalf("Extract(%q) succeeded with invalid address", s)
		}
		if u.Port < -1 || u.Port > 65535 {
			t.Errorf("Extract(%q) port %d out of range", s, u.Port)
		}

		// 重组文本必须能再提取出同样的要素
		out := u.String()
		back, err := Extract(out)
		if err != nil {
			t.Fatalf("re-extract of %q failed: %v (from %q)", out, err, s)
		}
		if !back.Addr.Equal(u.Addr) {
			t.Errorf("address mismatch: %q → %q → %s", s, out, back.Addr)
		}
		if back.Scheme != u.Scheme || back.Port != u.Port || back.Path != u.Path {
			t.Errorf("component mismatch: %q → %q → %+v", s, out, back)
		}
	})
}
