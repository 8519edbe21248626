package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID tags every request with an id, reusing the caller's when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// visitorHasher turns client addresses into salted, truncated hashes so raw IPs never reach the logs.
// The salt lives only in memory; hashes are stable for the life of the process.
type visitorHasher struct {
	salt string
}

func newVisitorHasher() (*visitorHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generating hashing salt: %w", err)
	}
	return &visitorHasher{salt: hex.EncodeToString(b)}, nil
}

func (h *visitorHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// accessLog writes one line per request. Static assets are skipped and the
// visitor hash is omitted when the client sends DNT: 1.
func accessLog(logger *log.Logger, hasher *visitorHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		visitor := "-"
		if c.GetHeader("DNT") != "1" {
			visitor = hasher.hash(c.ClientIP())
		}
		logger.Printf("%s %s %d %s visitor=%s request_id=%s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start).Round(time.Microsecond),
			visitor, c.GetString(requestIDKey))
	}
}
