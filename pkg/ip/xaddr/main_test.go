package xaddr

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// 解析缓存的 TTL 清理 goroutine 必须随 Close 退出
	goleak.VerifyTestMain(m)
}
