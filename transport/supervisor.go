package transport

import (
	"context"
	"net"

	"github.com/indigo-web/webserv/config"
)

// Supervisor runs bound transports and takes all of them down as soon as one fails or the
// context is done.
type Supervisor struct {
	ts []boundTransport
}

func NewSupervisor() Supervisor {
	return Supervisor{}
}

// Add binds the transport to the address. If binding fails, all previously added transports
// are closed.
func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	err := transport.Bind(addr)
	if err != nil {
		s.close()
		return err
	}

	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Run blocks until either the context is done, which results in nil, or one of the transports
// returns, which results in its error. Either way all the transports are stopped, waited for
// until their connections are served and closed.
func (s *Supervisor) Run(ctx context.Context, cfg config.NET) error {
	if len(s.ts) == 0 {
		return nil
	}

	errch := make(chan error, len(s.ts))

	for _, t := range s.ts {
		go func(t boundTransport) {
			errch <- t.t.Listen(cfg, t.cb)
		}(t)
	}

	var err error

	select {
	case err = <-errch:
		s.stop()
		drain(errch, len(s.ts)-1)
	case <-ctx.Done():
		s.stop()
		drain(errch, len(s.ts))
	}

	// listeners are down at this point, so no new connections might appear while waiting
	for _, t := range s.ts {
		t.t.Wait()
	}

	return err
}

// stop interrupts all the accept loops. Closing the listeners unblocks pending Accept calls.
func (s *Supervisor) stop() {
	for _, t := range s.ts {
		t.t.Stop()
	}

	s.close()
}

func (s *Supervisor) close() {
	for _, t := range s.ts {
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func drain(ch <-chan error, n int) {
	for range n {
		<-ch
	}
}
