package http1

import (
	"bytes"
	"strings"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"

	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/internal/buffer"
	"github.com/indigo-web/webserv/internal/query"
)

var (
	crlf      = []byte("\r\n")
	blankLine = []byte("\r\n\r\n")
)

// Parser turns the bytes of a single request into a http.Request. The request line tokens are
// copied into the parser's own bounded buffer, while the body references the passed data, so
// the data must not be modified as long as the request is in use.
type Parser struct {
	cfg       *config.Config
	startLine buffer.Buffer
}

func NewParser(cfg *config.Config) *Parser {
	uri := cfg.URI
	space := uri.MethodLength + uri.RequestTargetLength + uri.ProtoLength

	return &Parser{
		cfg:       cfg,
		startLine: buffer.New(space, space),
	}
}

// Parse fills the request. Only a malformed request line fails the parsing: a request line
// which doesn't consist of exactly three tokens, has a token exceeding its limit or a request
// target not starting with a slash. Everything else, like missing body or Content-Type, is
// tolerated.
//
// Strings of a previously parsed request become invalid.
func (p *Parser) Parse(data []byte, request *http.Request) error {
	p.startLine.Clear()

	line, rest, terminated := cutLine(data)
	if err := p.parseRequestLine(line, request); err != nil {
		return err
	}

	if request.Method != method.POST {
		return nil
	}

	headers := rest
	if blank := bytes.Index(data, blankLine); blank != -1 {
		body := data[blank+len(blankLine):]
		if len(body) > p.cfg.Body.MaxSize {
			body = body[:p.cfg.Body.MaxSize]
		}

		request.Body = body
		if terminated {
			// leave the CRLF of the last header, so every header line is terminated
			headers = data[len(data)-len(rest) : blank+len(crlf)]
		}
	}

	if terminated {
		p.parseContentType(headers, request)
	}

	return nil
}

func (p *Parser) parseRequestLine(line []byte, request *http.Request) error {
	tokens := bytes.Fields(line)
	if len(tokens) != 3 {
		return status.ErrBadRequest
	}

	uri := p.cfg.URI
	if len(tokens[0]) > uri.MethodLength ||
		len(tokens[1]) > uri.RequestTargetLength ||
		len(tokens[2]) > uri.ProtoLength {
		return status.ErrTooLongRequestLine
	}

	if tokens[1][0] != '/' {
		return status.ErrBadRequest
	}

	methodToken, ok := p.startLine.Segment(tokens[0])
	if !ok {
		return status.ErrTooLongRequestLine
	}

	target, ok := p.startLine.Segment(tokens[1])
	if !ok {
		return status.ErrTooLongRequestLine
	}

	proto, ok := p.startLine.Segment(tokens[2])
	if !ok {
		return status.ErrTooLongRequestLine
	}

	request.MethodRaw = uf.B2S(methodToken)
	request.Method = method.Parse(request.MethodRaw)
	request.Protocol = uf.B2S(proto)

	path, rawQuery, _ := strings.Cut(uf.B2S(target), "?")
	if path == "/" {
		path = uri.DefaultDocument
	}

	request.Path = path
	request.RawQuery = rawQuery
	query.Parse(rawQuery, request.Params, uri.MaxParams)

	return nil
}

// parseContentType looks for the Content-Type among CRLF-terminated header lines. Its value
// is stored with leading spaces trimmed, unless it exceeds the limit.
func (p *Parser) parseContentType(headers []byte, request *http.Request) {
	for {
		lf := bytes.Index(headers, crlf)
		if lf == -1 {
			return
		}

		line := headers[:lf]
		headers = headers[lf+len(crlf):]

		key, value, found := bytes.Cut(line, []byte(":"))
		if !found || !strcomp.EqualFold(uf.B2S(key), "content-type") {
			continue
		}

		value = bytes.TrimLeft(value, " ")
		if len(value) <= p.cfg.Headers.MaxContentTypeLength {
			request.ContentType = string(value)
		}

		return
	}
}

// cutLine returns the first line of data and what follows it. The line ends with the first CRLF
// or, lacking one, with the first LF. Data without any line terminator is a whole line.
func cutLine(data []byte) (line, rest []byte, terminated bool) {
	if end := bytes.Index(data, crlf); end != -1 {
		return data[:end], data[end+len(crlf):], true
	}

	if end := bytes.IndexByte(data, '\n'); end != -1 {
		return data[:end], data[end+1:], true
	}

	return data, nil, false
}
