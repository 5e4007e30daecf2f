package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/webserv/transport"
)

var _ transport.Client = new(Client)

// Client returns its pieces of data one by one on reads and io.EOF after them. It also tracks
// all the written data, making it thereby a universal mock suitable for most of the tests.
type Client struct {
	closed  bool
	pointer int
	writes  int
	limit   int
	fail    error
	written []byte
	data    [][]byte
	remote  net.Addr
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:   data,
		remote: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 54321},
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed || c.pointer >= len(c.data) {
		return nil, io.EOF
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

// Write journals the data. If a write limit is set, at most that number of bytes is accepted
// per call.
func (c *Client) Write(p []byte) (int, error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	c.writes++
	if c.fail != nil {
		return 0, c.fail
	}

	if c.limit > 0 && len(p) > c.limit {
		p = p[:c.limit]
	}

	c.written = append(c.written, p...)

	return len(p), nil
}

func (c *Client) Remote() net.Addr {
	return c.remote
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// WriteLimit makes every write accept at most n bytes.
func (c *Client) WriteLimit(n int) *Client {
	c.limit = n
	return c
}

// FailWrites makes every write fail with the error.
func (c *Client) FailWrites(err error) *Client {
	c.fail = err
	return c
}

// Written returns all the data written so far.
func (c *Client) Written() string {
	return string(c.written)
}

// Writes returns how many times Write was called.
func (c *Client) Writes() int {
	return c.writes
}
