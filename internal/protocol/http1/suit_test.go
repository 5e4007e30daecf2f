package http1

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/kv"
	"github.com/indigo-web/webserv/router/inbuilt"
	"github.com/indigo-web/webserv/site"
	"github.com/indigo-web/webserv/transport/dummy"
	"github.com/stretchr/testify/require"
)

type logRecorder struct {
	lines []string
}

func (l *logRecorder) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

const indexPage = "<h1>Welcome</h1>"

func getConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Static.Root = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Static.Root, "index.html"), []byte(indexPage), 0o644))

	return cfg
}

func serve(cfg *config.Config, raw ...string) (*dummy.Client, *logRecorder) {
	data := make([][]byte, len(raw))
	for i, piece := range raw {
		data[i] = []byte(piece)
	}

	client := dummy.NewMockClient(data...)
	logger := new(logRecorder)
	request := http.NewRequest(cfg, http.NewResponse(), client.Remote(), kv.New())
	New(cfg, site.New(), client, request, logger).Serve()

	return client, logger
}

func statusLine(written string) string {
	line, _, _ := strings.Cut(written, "\r\n")
	return line
}

func TestSuit(t *testing.T) {
	cfg := getConfig(t)

	t.Run("hello", func(t *testing.T) {
		client, logger := serve(cfg, "GET /hello?name=Ada HTTP/1.1\r\n\r\n")
		written := client.Written()
		require.Equal(t, "HTTP/1.1 200 OK", statusLine(written))
		require.Contains(t, written, "Content-Type: text/html\r\n")
		require.Contains(t, written, "Connection: close\r\n")
		require.Contains(t, written, "Ada")
		require.Equal(t, []string{"127.0.0.1 - GET /hello?name=Ada 200 " + sizeOf(written)}, logger.lines)
	})

	t.Run("index", func(t *testing.T) {
		client, _ := serve(cfg, "GET / HTTP/1.1\r\n\r\n")
		written := client.Written()
		require.Equal(t, "HTTP/1.1 200 OK", statusLine(written))
		require.Contains(t, written, fmt.Sprintf("Content-Length: %d\r\n", len(indexPage)))
		require.True(t, strings.HasSuffix(written, "\r\n\r\n"+indexPage))
	})

	t.Run("idempotent static", func(t *testing.T) {
		first, _ := serve(cfg, "GET /index.html HTTP/1.1\r\n\r\n")
		second, _ := serve(cfg, "GET /index.html HTTP/1.1\r\n\r\n")
		require.Equal(t, first.Written(), second.Written())
	})

	t.Run("not found", func(t *testing.T) {
		client, _ := serve(cfg, "GET /nope.html HTTP/1.1\r\n\r\n")
		written := client.Written()
		require.Equal(t, "HTTP/1.1 404 Not Found", statusLine(written))
		require.Contains(t, written, "Content-Type: text/html\r\n")
		require.Contains(t, written, "404")
	})

	t.Run("unsupported method", func(t *testing.T) {
		client, logger := serve(cfg, "DELETE /index.html HTTP/1.1\r\n\r\n")
		require.Equal(t, "HTTP/1.1 400 Bad Request", statusLine(client.Written()))
		require.Len(t, logger.lines, 1)
		require.True(t, strings.HasPrefix(logger.lines[0], "127.0.0.1 - DELETE /index.html 400 "))
	})

	t.Run("malformed", func(t *testing.T) {
		client, logger := serve(cfg, "GARBAGE\r\n\r\n")
		require.Equal(t, "HTTP/1.1 400 Bad Request", statusLine(client.Written()))
		require.Contains(t, logger.lines[0], "malformed request")
	})

	t.Run("post echo", func(t *testing.T) {
		client, logger := serve(cfg, "POST /submit HTTP/1.1\r\nContent-Type: text/plain\r\n\r\nhello")
		written := client.Written()
		require.Equal(t, "HTTP/1.1 200 OK", statusLine(written))
		require.Contains(t, written, "hello")
		require.Contains(t, written, "text/plain")
		require.Len(t, logger.lines, 2)
		require.Equal(t, `127.0.0.1 - received 5 B of body: "hello"`, logger.lines[0])
		require.True(t, strings.HasPrefix(logger.lines[1], "127.0.0.1 - POST /submit 200 "))
	})

	t.Run("api", func(t *testing.T) {
		client, _ := serve(cfg, "GET /api/status?a=1&b=2 HTTP/1.1\r\n\r\n")
		written := client.Written()
		require.Contains(t, written, "Content-Type: application/json\r\n")
		require.True(t, strings.HasSuffix(written, `{"status":"ok","message":"GET request","params":2}`))
	})

	t.Run("nothing read", func(t *testing.T) {
		client, logger := serve(cfg)
		require.Empty(t, client.Written())
		require.Zero(t, client.Writes())
		require.Empty(t, logger.lines)

		client, logger = serve(cfg, "")
		require.Empty(t, client.Written())
		require.Empty(t, logger.lines)
	})

	t.Run("single read", func(t *testing.T) {
		client, _ := serve(cfg, "GET /hello?name=Ada HTTP/1.1\r\n\r\n", "GET /test HTTP/1.1\r\n\r\n")
		require.Equal(t, 1, strings.Count(client.Written(), "HTTP/1.1 200 OK"))
		require.NotContains(t, client.Written(), "Parameters received")
	})

	t.Run("write error is logged", func(t *testing.T) {
		client := dummy.NewMockClient([]byte("GET /index.html HTTP/1.1\r\n\r\n")).FailWrites(errBrokenPipe)
		logger := new(logRecorder)
		request := http.NewRequest(cfg, http.NewResponse(), client.Remote(), kv.New())
		New(cfg, site.New(), client, request, logger).Serve()
		require.Len(t, logger.lines, 2)
		require.Equal(t, "127.0.0.1 - write response: broken pipe", logger.lines[0])
	})

	t.Run("nil response", func(t *testing.T) {
		r := inbuilt.New().Get("/index.html", func(*http.Request) *http.Response {
			return nil
		})
		client := dummy.NewMockClient([]byte("GET / HTTP/1.1\r\n\r\n"))
		request := http.NewRequest(cfg, http.NewResponse(), client.Remote(), kv.New())
		New(cfg, r, client, request, new(logRecorder)).Serve()
		require.Equal(t, "HTTP/1.1 200 OK", statusLine(client.Written()))
	})
}

func sizeOf(written string) string {
	_, body, _ := strings.Cut(written, "\r\n\r\n")
	return humanize.Bytes(uint64(len(body)))
}
