package store

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNetworkError_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want NetworkErrorSubtype
	}{
		{"nil cause", nil, NetworkErrorGeneral},
		{"refused", &url.Error{Op: "Get", URL: "http://x", Err: syscall.ECONNREFUSED}, NetworkErrorConnectionRefused},
		{"dns", &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{Name: "x", Err: "no such host"}}, NetworkErrorDNS},
		{"other", errors.New("weird"), NetworkErrorGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNetworkError("request failed", tt.err)
			assert.Equal(t, tt.want, err.Subtype)
			assert.True(t, IsNetworkError(err))
			assert.False(t, IsHTTPError(err))
		})
	}
}

func TestRemoteError_Wrapping(t *testing.T) {
	cause := errors.New("cause")
	err := fmt.Errorf("delivery: %w", NewParseError("bad body", cause))

	assert.True(t, IsParseError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "delivery: Parse Error: bad body (caused by: cause)", err.Error())
	assert.Equal(t, "Failed to parse record server response", ShortMessage(err))
}

func TestShortMessage(t *testing.T) {
	assert.Equal(t, "plain", ShortMessage(errors.New("plain")))
	assert.Equal(t, "Record server refused connection - is it running?",
		ShortMessage(NewNetworkError("x", syscall.ECONNREFUSED)))
	assert.Equal(t, "Cannot resolve record server hostname",
		ShortMessage(NewNetworkError("x", &net.DNSError{Name: "x"})))
	assert.Equal(t, "Network error - check connection",
		ShortMessage(NewNetworkError("x", errors.New("reset"))))
	assert.Equal(t, "Record server error (HTTP 404)",
		ShortMessage(NewHTTPError(404, "missing")))
}
