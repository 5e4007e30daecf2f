package http1

import (
	"net"

	"github.com/dustin/go-humanize"

	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/router"
	"github.com/indigo-web/webserv/transport"
)

// Suit serves a single connection: one request is read, routed and answered. Closing the
// connection is up to the transport.
type Suit struct {
	*Parser
	*Serializer
	router  router.Router
	client  transport.Client
	request *http.Request
	logger  transport.Logger
}

func New(
	cfg *config.Config,
	r router.Router,
	client transport.Client,
	request *http.Request,
	logger transport.Logger,
) *Suit {
	return &Suit{
		Parser:     NewParser(cfg),
		Serializer: NewSerializer(cfg, client),
		router:     r,
		client:     client,
		request:    request,
		logger:     logger,
	}
}

// Serve handles the request. If nothing could be read, the connection is left without any
// response. Otherwise, exactly one response is written, even if the request is malformed.
func (s *Suit) Serve() {
	data, _ := s.client.Read()
	if len(data) == 0 {
		// the client is gone or the read deadline exceeded
		return
	}

	request := s.request
	defer request.Reset()

	ip := remoteIP(s.client.Remote())

	var response *http.Response
	if err := s.Parse(data, request); err != nil {
		s.logger.Printf("%s - malformed request: %s", ip, err)
		response = notNil(request, s.router.OnError(request, err))
	} else {
		if request.Method == method.POST {
			s.logger.Printf(
				"%s - received %s of body: %q",
				ip, humanize.Bytes(uint64(len(request.Body))), request.Body,
			)
		}

		response = notNil(request, s.router.OnRequest(request))
	}

	if err := s.Write(response); err != nil {
		s.logger.Printf("%s - write response: %s", ip, err)
	}

	fields := response.Reveal()
	s.logger.Printf(
		"%s - %s %s %d %s",
		ip, request.MethodRaw, request.Target(), fields.Code, humanize.Bytes(uint64(len(fields.Body))),
	)
}

func notNil(request *http.Request, response *http.Response) *http.Response {
	if response != nil {
		return response
	}

	return http.Respond(request)
}

func remoteIP(addr net.Addr) string {
	if addr == nil {
		return "-"
	}

	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}

	return host
}
