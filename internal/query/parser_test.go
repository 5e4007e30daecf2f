package query

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/webserv/kv"
	"github.com/stretchr/testify/require"
)

const maxParams = 20

func parse(query string) *kv.Storage {
	params := kv.New()
	Parse(query, params, maxParams)

	return params
}

func TestParse(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		result := parse("hello=world")
		require.Equal(t, []kv.Pair{{"hello", "world"}}, result.Expose())
	})

	t.Run("two pairs", func(t *testing.T) {
		result := parse("hello=world&lorem=ipsum")
		require.Equal(t, []kv.Pair{{"hello", "world"}, {"lorem", "ipsum"}}, result.Expose())
	})

	t.Run("empty", func(t *testing.T) {
		require.True(t, parse("").Empty())
	})

	t.Run("empty value", func(t *testing.T) {
		result := parse("hello=&another=pair")
		require.True(t, result.Has("hello"))
		require.Empty(t, result.Value("hello"))
		require.Equal(t, "pair", result.Value("another"))
	})

	t.Run("split on the first equal sign", func(t *testing.T) {
		result := parse("expr=a=b")
		require.Equal(t, "a=b", result.Value("expr"))
	})

	t.Run("pairs without value are dropped", func(t *testing.T) {
		for _, query := range []string{
			"lorem&hello=world&foo=bar",
			"hello=world&lorem&foo=bar",
			"hello=world&foo=bar&lorem",
			"&hello=world&&foo=bar&",
		} {
			result := parse(query)
			require.Equal(t, []kv.Pair{{"hello", "world"}, {"foo", "bar"}}, result.Expose(), query)
		}
	})

	t.Run("decoding", func(t *testing.T) {
		result := parse("full+name=Ada%20Lovelace&sym=%26%3D&broken=100%")
		require.Equal(t, []kv.Pair{
			{"full name", "Ada Lovelace"},
			{"sym", "&="},
			{"broken", "100%"},
		}, result.Expose())
	})

	t.Run("duplicate keys", func(t *testing.T) {
		result := parse("name=Ada&name=Grace")
		require.Equal(t, 2, result.Len())
		require.Equal(t, "Ada", result.Value("name"))
	})

	t.Run("limit", func(t *testing.T) {
		var pairs []string
		for i := range maxParams + 5 {
			pairs = append(pairs, fmt.Sprintf("k%d=v%d", i, i))
		}

		result := parse(strings.Join(pairs, "&"))
		require.Equal(t, maxParams, result.Len())
		require.Equal(t, "v0", result.Value("k0"))
		require.Equal(t, fmt.Sprintf("v%d", maxParams-1), result.Value(fmt.Sprintf("k%d", maxParams-1)))
		require.False(t, result.Has(fmt.Sprintf("k%d", maxParams)))
	})

	t.Run("flags don't occupy seats", func(t *testing.T) {
		var pairs []string
		for i := range maxParams {
			pairs = append(pairs, "flag", fmt.Sprintf("k%d=v%d", i, i))
		}

		require.Equal(t, maxParams, parse(strings.Join(pairs, "&")).Len())
	})

	t.Run("round trip", func(t *testing.T) {
		for n := range maxParams + 1 {
			var (
				want    []kv.Pair
				encoded []string
			)

			for range n {
				key := uniuri.NewLenChars(8, []byte("abc &=+%/?"))
				value := uniuri.New()
				want = append(want, kv.Pair{Key: key, Value: value})
				encoded = append(encoded, url.QueryEscape(key)+"="+url.QueryEscape(value))
			}

			result := parse(strings.Join(encoded, "&"))
			require.Equal(t, len(want), result.Len())
			if n > 0 {
				require.Equal(t, want, result.Expose())
			}
		}
	})
}
