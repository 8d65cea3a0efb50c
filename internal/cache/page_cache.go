// Package cache implements the timed page cache fronting the index feed.
// Writes never invalidate entries; staleness lasts until the TTL expires
// or Clear is called explicitly.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yatube/yatube/pkg/logger"
)

type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewPageCache(client *redis.Client, ttl time.Duration, prefix string) *PageCache {
	if prefix == "" {
		prefix = "page"
	}
	return &PageCache{client: client, ttl: ttl, prefix: prefix}
}

// cachedPage is the stored rendering of one path+query.
type cachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

func (p *PageCache) key(c *gin.Context) string {
	// 分页页面各自独立缓存，key 带上 query
	return fmt.Sprintf("%s:%s?%s", p.prefix, c.Request.URL.Path, c.Request.URL.RawQuery)
}

// Middleware serves GET responses from redis when present and records
// fresh 200 responses on the way out.
func (p *PageCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := p.key(c)
		if data, err := p.client.Get(c.Request.Context(), key).Bytes(); err == nil {
			var page cachedPage
			if uErr := json.Unmarshal(data, &page); uErr == nil {
				c.Data(page.Status, page.ContentType, page.Body)
				c.Abort()
				return
			}
		}

		rec := &recorder{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = rec
		c.Next()

		if rec.Status() != http.StatusOK {
			return
		}
		page := cachedPage{
			Status:      rec.Status(),
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.buf.Bytes(),
		}
		payload, err := json.Marshal(page)
		if err != nil {
			return
		}
		if err := p.client.Set(c.Request.Context(), key, payload, p.ttl).Err(); err != nil {
			logger.Warn("page cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// Clear drops every cached page. The only way data mutations become
// visible before the TTL runs out.
func (p *PageCache) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := p.client.Scan(ctx, cursor, p.prefix+":*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := p.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

type recorder struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (r *recorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *recorder) WriteString(s string) (int, error) {
	r.buf.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
