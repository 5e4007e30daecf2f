package kv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getParams := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("name", "Ada").
			Add("Lorem", "ipsum").
			Add("name", "Grace")
	}

	t.Run("first match wins", func(t *testing.T) {
		kv := getParams()
		value, found := kv.Get("name")
		require.True(t, found)
		require.Equal(t, "Ada", value)
		require.Equal(t, []string{"Ada", "Grace"}, slices.Collect(kv.Values("name")))
	})

	t.Run("case-sensitive keys", func(t *testing.T) {
		kv := getParams()
		require.False(t, kv.Has("NAME"))
		require.Equal(t, "Guest", kv.ValueOr("Name", "Guest"))
		require.Empty(t, kv.Value("foo"))
	})

	t.Run("insertion order", func(t *testing.T) {
		var keys []string
		for key := range getParams().Pairs() {
			keys = append(keys, key)
		}

		require.Equal(t, []string{"Foo", "name", "Lorem", "name"}, keys)
	})

	t.Run("clear", func(t *testing.T) {
		kv := getParams()
		require.Equal(t, 4, kv.Len())
		require.True(t, kv.Clear().Empty())
		require.False(t, kv.Has("Foo"))
	})
}
