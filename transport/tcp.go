package transport

import (
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/internal/timer"
)

type TCP struct {
	l      *net.TCPListener
	wg     *sync.WaitGroup
	stop   *atomic.Bool
	logger Logger
}

// NewTCP returns a TCP transport, serving every accepted connection in its own goroutine.
// Accept failures are reported to the logger and don't stop the transport.
func NewTCP(logger Logger) *TCP {
	return &TCP{
		wg:     new(sync.WaitGroup),
		stop:   new(atomic.Bool),
		logger: logger,
	}
}

func (t *TCP) Bind(addr string) error {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return err
	}

	t.l, err = net.ListenTCP("tcp", tcpaddr)
	return err
}

// Addr returns the address the transport is bound to.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen accepts connections until Stop is called. The connection is closed as soon as the
// callback returns.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		err := t.l.SetDeadline(timer.Deadline(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			switch {
			case errors.Is(err, os.ErrDeadlineExceeded):
			case errors.Is(err, net.ErrClosed):
				return nil
			default:
				t.logger.Printf("accept: %s", err)
				// don't spin on persistent failures, e.g. running out of file descriptors
				time.Sleep(5 * time.Millisecond)
			}

			continue
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()
			cb(conn)
			_ = conn.Close()
		}(conn)
	}

	return nil
}

func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}

func (t *TCP) Wait() {
	t.wg.Wait()
}
