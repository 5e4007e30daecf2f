package query

import (
	"strings"

	"github.com/indigo-web/webserv/internal/urlencoded"
	"github.com/indigo-web/webserv/kv"
)

// Parse splits the query into &-separated pairs and stores at most `max` of them into params,
// URL-decoding both keys and values. Pairs without an equal sign are ignored and don't occupy
// a seat. Everything after the limit is reached is silently discarded.
func Parse(raw string, params *kv.Storage, max int) {
	if len(raw) == 0 || max <= 0 {
		return
	}

	// decoded data is never longer than the source, so the buffer never grows and strings
	// taken from it stay valid.
	buff := make([]byte, 0, len(raw))

	for len(raw) > 0 && params.Len() < max {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")

		rawKey, rawValue, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		var key, value string
		key, buff = urlencoded.DecodeString(rawKey, buff)
		value, buff = urlencoded.DecodeString(rawValue, buff)
		params.Add(key, value)
	}
}
