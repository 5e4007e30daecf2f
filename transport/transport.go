package transport

import (
	"net"

	"github.com/indigo-web/webserv/config"
)

type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}

type Logger interface {
	Printf(format string, v ...any)
}
