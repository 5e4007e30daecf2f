// Package requestgen produces raw requests for tests and benchmarks.
package requestgen

import (
	"strconv"
	"strings"

	"github.com/dchest/uniuri"

	"github.com/indigo-web/webserv/kv"
)

// Headers returns n headers, the last one being Host.
func Headers(n int) *kv.Storage {
	hdrs := kv.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	return hdrs.Add("Host", "localhost")
}

func HeadersBlock(hdrs *kv.Storage) (buff []byte) {
	for key, value := range hdrs.Pairs() {
		buff = append(buff, key+": "+value+"\r\n"...)
	}

	return buff
}

// Params returns n pairs of random alphanumeric keys and values, so they never need any
// escaping.
func Params(n int) []kv.Pair {
	pairs := make([]kv.Pair, n)
	for i := range pairs {
		pairs[i] = kv.Pair{Key: uniuri.NewLen(8), Value: uniuri.NewLen(16)}
	}

	return pairs
}

// Query joins the pairs into a query string.
func Query(pairs []kv.Pair) string {
	fields := make([]string, len(pairs))
	for i, pair := range pairs {
		fields[i] = pair.Key + "=" + pair.Value
	}

	return strings.Join(fields, "&")
}

// Generate renders a request. The body is appended after the headers as is.
func Generate(method, target string, hdrs *kv.Storage, body string) (request []byte) {
	request = append(request, method+" "+target+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)
	request = append(request, '\r', '\n')

	return append(request, body...)
}
