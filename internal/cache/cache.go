package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL 标题缓存的默认过期时间。
// 只依赖短 TTL 自然过期，不做主动失效，避免额外的删除逻辑。
const DefaultTTL = 5 * time.Minute

// HeadlineCache 用 Redis 缓存各来源最近一次抓取到的标题列表，
// 降低定时任务与手动触发叠加时对新闻站的请求压力。
// 缓存的只是抓取输入（标题文本），分析结果从不落盘。
type HeadlineCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New 创建缓存；addr 为空返回 nil，调用方一律按未命中处理。
// Redis ping 失败只告警不报错，服务降级为每轮都真实抓取。
func New(addr string, ttl time.Duration) *HeadlineCache {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &HeadlineCache{rdb: rdb, ttl: ttl}
}

func cacheKey(source string) string {
	return "headlines:" + source
}

// Get 读取某来源的缓存标题；未命中或缓存不可用时返回 false
func (c *HeadlineCache) Get(ctx context.Context, source string) ([]string, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	bs, err := c.rdb.Get(ctx, cacheKey(source)).Bytes()
	if err != nil {
		return nil, false
	}

	var headlines []string
	if err := json.Unmarshal(bs, &headlines); err != nil {
		return nil, false
	}
	return headlines, true
}

// Set 回写某来源的标题列表；写入失败只影响缓存命中率，直接忽略
func (c *HeadlineCache) Set(ctx context.Context, source string, headlines []string) {
	if c == nil || c.rdb == nil || len(headlines) == 0 {
		return
	}

	bs, err := json.Marshal(headlines)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, cacheKey(source), bs, c.ttl).Err()
}
