package bodymeta

import (
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t, "Content-Type", ContentType)
	require.Equal(t, "Content-Length", ContentLength)
	require.Equal(t, "Content-Language", ContentLanguage)
	require.Equal(t, "Content-Disposition", ContentDisposition)
	require.Equal(t, "Content-Encoding", ContentEncoding)
}

func TestCanonical(t *testing.T) {
	for _, name := range []string{ContentType, ContentLength, ContentLanguage, ContentDisposition, ContentEncoding} {
		require.Equal(t, textproto.CanonicalMIMEHeaderKey(name), name)
	}
}
