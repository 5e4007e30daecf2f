package http1

import (
	"io"
	"strconv"

	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/status"
)

const protocol = "HTTP/1.1"

// Serializer renders a response into the writer: the headers block first, the body second,
// as two separate writes.
type Serializer struct {
	buff   []byte
	server string
	writer io.Writer
}

func NewSerializer(cfg *config.Config, writer io.Writer) *Serializer {
	return &Serializer{
		buff:   make([]byte, 0, cfg.NET.WriteBufferSize),
		server: cfg.Headers.Server,
		writer: writer,
	}
}

// Write serializes the response. Every write is repeated until all the bytes are out. If the
// writer stops accepting data without reporting an error, io.ErrShortWrite is returned.
func (s *Serializer) Write(response *http.Response) error {
	fields := response.Reveal()

	s.buff = append(s.buff[:0], protocol...)
	s.buff = append(s.buff, ' ')
	s.buff = strconv.AppendUint(s.buff, uint64(fields.Code), 10)
	s.buff = append(s.buff, ' ')
	s.buff = append(s.buff, status.Text(fields.Code)...)
	s.buff = append(s.buff, crlf...)
	s.header("Server", s.server)
	s.header("Content-Type", fields.ContentType)
	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendInt(s.buff, int64(len(fields.Body)), 10)
	s.buff = append(s.buff, crlf...)
	s.header("Connection", "close")
	s.buff = append(s.buff, crlf...)

	if err := writeAll(s.writer, s.buff); err != nil {
		return err
	}

	return writeAll(s.writer, fields.Body)
}

func (s *Serializer) header(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, ": "...)
	s.buff = append(s.buff, value...)
	s.buff = append(s.buff, crlf...)
}

func writeAll(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return err
		}

		if n == 0 {
			return io.ErrShortWrite
		}

		data = data[n:]
	}

	return nil
}
