package xaddr

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// maxCacheSize 解析缓存最大条目数上限。
const maxCacheSize = 1 << 20 // 1,048,576

// CacheConfig 定义解析缓存配置。
type CacheConfig struct {
	// Size 缓存最大条目数。
	// 必须大于 0 且不超过 1,048,576。
	Size int

	// TTL 条目过期时间。
	// 0 表示永不过期，不允许负值。
	TTL time.Duration
}

// parseOutcome 是一次解析的完整结果。
// 失败结果同样入缓存：反复出现的非法输入不会重复走解析链。
type parseOutcome struct {
	addr Addr
	err  error
}

// Cache 是解析结果的 LRU 缓存，适合反复解析少量热点文本的场景
// （日志流、访问记录、配置重载）。
// 必须通过 [NewCache] 创建，零值不可用（方法调用会 panic）。
// 所有方法都是并发安全的。
// 调用 Close 后，[Cache.Parse] 退化为直接解析，不再读写缓存。
type Cache struct {
	lru       *expirable.LRU[string, parseOutcome]
	closed    atomic.Bool
	closeOnce sync.Once

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache 创建解析缓存。
// 如果 cfg.Size <= 0，返回 ErrInvalidSize。
// 如果 cfg.Size > 1,048,576，返回 ErrSizeExceedsMax。
// 如果 cfg.TTL < 0，返回 ErrInvalidTTL。
func NewCache(cfg CacheConfig) (*Cache, error) {
	if cfg.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if cfg.Size > maxCacheSize {
		return nil, ErrSizeExceedsMax
	}
	if cfg.TTL < 0 {
		return nil, ErrInvalidTTL
	}
	return &Cache{
		lru: expirable.NewLRU[string, parseOutcome](cfg.Size, nil, cfg.TTL),
	}, nil
}

// Parse 等价于包级 [Parse]，但结果（包括解析失败）进入 LRU 缓存。
//
// 两个 goroutine 同时未命中同一文本时会各自解析并先后写入，
// 解析是纯函数，重复写入结果一致，不需要额外互斥。
func (c *Cache) Parse(s string) (Addr, error) {
	if c.closed.Load() {
		return Parse(s)
	}
	if out, ok := c.lru.Get(s); ok {
		c.hits.Add(1)
		return out.addr, out.err
	}
	c.misses.Add(1)
	addr, err := Parse(s)
	c.lru.Add(s, parseOutcome{addr: addr, err: err})
	return addr, err
}

// Contains 检查文本是否已有缓存结果（不更新访问顺序，过滤已过期条目）。
// 如果缓存已关闭，返回 false。
func (c *Cache) Contains(s string) bool {
	if c.closed.Load() {
		return false
	}
	_, ok := c.lru.Peek(s)
	return ok
}

// Len 返回当前缓存条目数。
//
// 注意：返回值可能包含已过期但尚未被后台清理的条目。
// 如果缓存已关闭，返回 0。
func (c *Cache) Len() int {
	if c.closed.Load() {
		return 0
	}
	return c.lru.Len()
}

// Stats 返回命中与未命中的累计计数。
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Purge 清空所有缓存条目。命中计数不重置。
// 如果缓存已关闭，静默忽略。
func (c *Cache) Purge() {
	if c.closed.Load() {
		return
	}
	c.lru.Purge()
}

// Close 关闭缓存，释放资源。
// 该方法是幂等的：多次调用只会执行一次清理。
//
// Close 会清空所有缓存条目并停止 TTL 过期清理 goroutine。
// Close 后 [Cache.Parse] 退化为直接解析。
func (c *Cache) Close() {
	c.closed.Store(true)
	c.closeOnce.Do(func() {
		c.lru.Purge()
		stopCleanupGoroutine(c.lru)
	})
}

// stopCleanupGoroutine 停止 expirable.LRU 内部的清理 goroutine。
// 返回 true 表示成功停止，false 表示降级为无操作（上游结构变化或通道已关闭）。
//
// 设计决策: hashicorp/golang-lru/v2@v2.0.7 在 TTL > 0 时启动后台 goroutine
// 清理过期条目，但没有公开的停止入口（上游 Close() 被注释掉）。此函数通过
// reflect + unsafe 关闭内部 done 通道（类型 chan struct{}）使 goroutine 退出。
//
// 已知限制：
//   - 依赖上游未导出字段 "done" 的名称和类型，升级版本后应验证
//   - 如果上游结构变化，返回 false（goroutine 泄漏），泄漏检测测试会捕获
//   - 如果 done 已关闭，recover 捕获 panic，返回 false
//
// 维护须知: 升级 golang-lru 版本时，检查上游是否已实现公开的 Close() 方法。
// 若已实现，应移除此函数并直接调用上游 Close()。
func stopCleanupGoroutine(lru any) (stopped bool) {
	defer func() {
		// close(doneCh) 可能因通道已关闭而 panic，静默捕获并返回 false
		if r := recover(); r != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}

	doneField := v.Elem().FieldByName("done")
	if !doneField.IsValid() || doneField.IsNil() {
		return false
	}

	// 验证字段类型为 chan struct{}
	if doneField.Type() != reflect.TypeOf(make(chan struct{})) {
		return false
	}

	// 通过 unsafe 访问未导出字段值，关闭 done 通道使清理 goroutine 退出
	doneCh := *(*chan struct{})(unsafe.Pointer(doneField.UnsafeAddr())) //nolint:gosec // 有意使用 unsafe 访问内部字段
	close(doneCh)
	return true
}
