package webserv

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"sync"

	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/internal/protocol/http1"
	"github.com/indigo-web/webserv/kv"
	"github.com/indigo-web/webserv/router"
	"github.com/indigo-web/webserv/site"
	"github.com/indigo-web/webserv/transport"
)

// App is the server itself. It's bound to a single address and serves every connection in its
// own goroutine, answering exactly one request per connection.
type App struct {
	addr     string
	cfg      *config.Config
	logger   transport.Logger
	hooks    hooks
	tcp      *transport.TCP
	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a new App instance.
func New(addr string) *App {
	return &App{
		addr:   addr,
		cfg:    config.Default(),
		logger: log.New(os.Stdout, "", log.LstdFlags),
		stop:   make(chan struct{}),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, writing to stdout.
func (a *App) Logger(logger transport.Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is bound and the server
// is about to accept connections.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's guaranteed,
// that at the moment as the callback is called, the server isn't able to accept any new connections
// and all the clients are already disconnected
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the address the server is listening on. It's nil until the server is started.
func (a *App) Addr() net.Addr {
	if a.tcp == nil {
		return nil
	}

	return a.tcp.Addr()
}

// Serve binds the address and serves until the context is done or Stop is called. If nil is
// passed instead of a router, the site is served. Failing to bind the address is returned
// immediately.
func (a *App) Serve(ctx context.Context, r router.Router) error {
	if r == nil {
		r = site.New()
	}

	tcp := transport.NewTCP(a.logger)
	sup := transport.NewSupervisor()
	if err := sup.Add(a.addr, tcp, a.newConnCallback(r)); err != nil {
		return fmt.Errorf("bind %s: %w", a.addr, err)
	}

	a.tcp = tcp

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-a.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	a.logger.Printf("listening on %s, serving %s", tcp.Addr(), a.cfg.Static.Root)
	callIfNotNil(a.hooks.OnStart)
	err := sup.Run(ctx, a.cfg.NET)
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops the server. Connections being served are completed first.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// might be still working
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stop)
	})
}

func (a *App) newConnCallback(r router.Router) func(net.Conn) {
	return func(conn net.Conn) {
		client := transport.NewClient(conn, a.cfg.NET.ReadTimeout, make([]byte, a.cfg.NET.ReadBufferSize))
		request := http.NewRequest(
			a.cfg, http.NewResponse(), client.Remote(), kv.NewPrealloc(a.cfg.URI.MaxParams),
		)
		http1.New(a.cfg, r, client, request, a.logger).Serve()
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
