package middleware

import (
	"bytes"
	"io"
	"net/url"
	"time"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxLoggedBodyBytes = 4 << 10

// HTTPLogger writes a summary line per request to AppLogger and a full trace
// (query, request and response bodies) to HttpLogger.
func HTTPLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		reqBody := readBody(c.Request.Body)
		queryParams := c.Request.URL.Query()
		c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))

		blw := &bodyLogWriter{body: bytes.NewBuffer(nil), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		latency := time.Since(start)
		resStatus := c.Writer.Status()

		logEvent := logger.AppLogger.Info()
		if resStatus >= 500 {
			logEvent = logger.AppLogger.Error()
		}
		logEvent = logEvent.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", resStatus).
			Dur("latency_ms", latency).
			Str("client_ip", c.ClientIP())

		if len(c.Errors) > 0 {
			logEvent = logEvent.Strs("errors", c.Errors.Errors())
		}
		logEvent.Msg("request_processed")

		logger.HttpLogger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", resStatus).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("referrer", c.Request.Referer()).
			Dict("query_params", logDictFromValues(queryParams)).
			Str("request_body", truncate(reqBody)).
			Str("response_body", truncate(blw.body.Bytes())).
			Msg("http_trace")
	}
}

func readBody(body io.ReadCloser) []byte {
	if body == nil {
		return nil
	}
	b, _ := io.ReadAll(body)
	return b
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBodyBytes {
		return string(b[:maxLoggedBodyBytes]) + "...(truncated)"
	}
	return string(b)
}

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyLogWriter) Write(b []byte) (int, error) {
	if w.body != nil {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func logDictFromValues(values url.Values) *zerolog.Event {
	dict := zerolog.Dict()
	for k, v := range values {
		dict.Strs(k, v)
	}
	return dict
}
