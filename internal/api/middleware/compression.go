package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Content types that are already compressed
var incompressibleTypes = []string{
	"image/",
	"video/",
	"audio/",
}

// Compression gzips responses of at least minLength bytes for clients that
// accept it, and inflates gzip-encoded request bodies.
func Compression(minLength int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") == "gzip" {
			if err := inflateBody(c.Request); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid gzip body"})
				return
			}
		}

		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		w := &bufferedWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Header("Vary", "Accept-Encoding")

		c.Next()

		if err := w.flushTo(minLength); err != nil {
			_ = c.Error(err)
		}
	}
}

func inflateBody(r *http.Request) error {
	zr, err := gzip.NewReader(r.Body)
	if err != nil {
		return err
	}
	defer zr.Close()

	body, err := io.ReadAll(zr)
	if err != nil {
		return err
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	r.ContentLength = int64(len(body))
	r.Header.Del("Content-Encoding")
	return nil
}

// bufferedWriter holds the body back until the handler chain is done, so
// the encoding can be chosen from the full length.
type bufferedWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

// Flush is deferred to flushTo.
func (w *bufferedWriter) Flush() {}

func (w *bufferedWriter) Size() int {
	return w.buf.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.buf.Len() > 0 || w.ResponseWriter.Written()
}

func (w *bufferedWriter) flushTo(minLength int) error {
	if w.buf.Len() == 0 {
		return nil
	}

	if w.buf.Len() < minLength || !compressible(w.Header().Get("Content-Type")) {
		_, err := w.ResponseWriter.Write(w.buf.Bytes())
		return err
	}

	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")

	zw := gzip.NewWriter(w.ResponseWriter)
	if _, err := zw.Write(w.buf.Bytes()); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func compressible(contentType string) bool {
	for _, prefix := range incompressibleTypes {
		if strings.HasPrefix(contentType, prefix) {
			return false
		}
	}
	return true
}
