package method

import (
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestMethod(t *testing.T) {
	t.Run("Catalog", func(t *testing.T) {
		require.Len(t, List, Count)

		var tokens []string
		for _, method := range List {
			tokens = append(tokens, method.String())
		}

		require.Equal(t, []string{"HEAD", "GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}, tokens)
	})

	t.Run("Parse", func(t *testing.T) {
		for _, method := range List {
			require.Equal(t, method, Parse(method.String()))
			require.Equal(t, method, ParseBytes([]byte(method.String())))
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		for _, str := range []string{"", "TRACE", "CONNECT", "get", "Post", "GE", "GETS", "OPTION", "DELETED"} {
			require.Equal(t, Unknown, Parse(str), str)
		}
	})

	t.Run("Random", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			// no method token is 8 bytes long or more
			str := strings.ToUpper(uniuri.NewLen(8 + i%8))
			require.Equal(t, Unknown, Parse(str), str)
		}
	})
}

func TestIs(t *testing.T) {
	require.True(t, GET.Is(GET))
	require.False(t, GET.Is(POST))

	for _, a := range List {
		for _, b := range List {
			require.Equal(t, a.String() == b.String(), a.Is(b))
		}
	}
}

func TestText(t *testing.T) {
	type Route struct {
		Method Method `json:"method"`
	}

	json := jsoniter.ConfigCompatibleWithStandardLibrary

	t.Run("Roundtrip", func(t *testing.T) {
		for _, method := range List {
			data, err := json.Marshal(Route{Method: method})
			require.NoError(t, err)
			require.Equal(t, `{"method":"`+method.String()+`"}`, string(data))

			var route Route
			require.NoError(t, json.Unmarshal(data, &route))
			require.True(t, method.Is(route.Method))
		}
	})

	t.Run("UnknownToken", func(t *testing.T) {
		var route Route
		err := json.Unmarshal([]byte(`{"method":"TRACE"}`), &route)
		require.Error(t, err)
		require.Contains(t, err.Error(), ErrUnknownMethod.Error())
		require.Equal(t, Unknown, route.Method)
	})

	t.Run("MarshalUnknown", func(t *testing.T) {
		_, err := Unknown.MarshalText()
		require.ErrorIs(t, err, ErrUnknownMethod)

		_, err = Method(Count + 1).MarshalText()
		require.ErrorIs(t, err, ErrUnknownMethod)
	})
}
