package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dhruvsolvzz/SHOPING-CART/internal/logging"
)

const bodyLogLimit = 8 * 1024 // 8KB each way

// secretFields are blanked before a body reaches the log file. Register and
// login carry plaintext passwords, so scrubbing is not optional.
var secretFields = map[string]struct{}{
	"password":      {},
	"password_hash": {},
	"authorization": {},
	"token":         {},
	"secret":        {},
}

type responseCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *responseCapture) Write(b []byte) (int, error) {
	if remain := bodyLogLimit - w.buf.Len(); remain > 0 {
		if len(b) > remain {
			w.buf.Write(b[:remain])
		} else {
			w.buf.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

func scrubSecrets(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return raw // not JSON, log as-is
	}
	var walk func(any) any
	walk = func(x any) any {
		switch v := x.(type) {
		case map[string]any:
			for k, val := range v {
				if _, secret := secretFields[strings.ToLower(k)]; secret {
					v[k] = "***redacted***"
					continue
				}
				v[k] = walk(val)
			}
			return v
		case []any:
			for i := range v {
				v[i] = walk(v[i])
			}
			return v
		default:
			return v
		}
	}
	out, err := json.Marshal(walk(doc))
	if err != nil {
		return raw
	}
	return out
}

// captureRequestBody reads up to the log limit and puts the bytes back on the
// request so handlers see them untouched. Oversized bodies pass through whole;
// only the logged copy is cut.
func captureRequestBody(c *gin.Context) string {
	if c.Request.Body == nil || !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		return ""
	}
	head := make([]byte, bodyLogLimit)
	n, _ := io.ReadFull(c.Request.Body, head)
	head = head[:n]

	rest := c.Request.Body
	c.Request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), rest), rest}

	logged := scrubSecrets(head)
	if n == bodyLogLimit {
		logged = append(logged, "...truncated..."...)
	}
	return string(logged)
}

// Logging logs request/response pairs and injects a request-scoped
// slog.Logger into the gin context.
func Logging(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
			c.Request.Header.Set("X-Request-Id", reqID)
		}
		c.Header("X-Request-Id", reqID)

		l := base.With(
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(), // may be empty if no route matched
			"remote", c.ClientIP(),
		)
		logging.With(c, l)

		reqBody := captureRequestBody(c)

		capture := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		status := c.Writer.Status()

		var respBody string
		if strings.Contains(c.Writer.Header().Get("Content-Type"), "application/json") {
			respBody = string(scrubSecrets(capture.buf.Bytes()))
			if capture.buf.Len() >= bodyLogLimit {
				respBody += "...truncated..."
			}
		}

		attrs := []any{
			"status", status,
			"dur_ms", time.Since(start).Milliseconds(),
			"resp_bytes", c.Writer.Size(),
		}
		if reqBody != "" {
			attrs = append(attrs, "req_body", reqBody)
		}
		if respBody != "" {
			attrs = append(attrs, "resp_body", respBody)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		if status >= http.StatusInternalServerError {
			l.Error("http_request", attrs...)
			return
		}
		l.Info("http_request", attrs...)
	}
}
