package request_test

import (
	"testing"

	"go-employee-api/internal/shared/request"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	tests := []struct {
		name   string
		header string
		ua     string
		want   request.ClientType
	}{
		{"explicit web header", "web", "", request.ClientWeb},
		{"explicit mobile header wins over browser ua", "MOBILE", "Mozilla/5.0", request.ClientMobile},
		{"browser user agent", "", "Mozilla/5.0 (X11; Linux x86_64)", request.ClientWeb},
		{"android client", "", "okhttp/4.12.0", request.ClientMobile},
		{"curl", "", "curl/8.5.0", request.ClientAPI},
		{"nothing at all", "", "", request.ClientAPI},
		{"unknown header falls back to ua", "desktop", "Mozilla/5.0", request.ClientWeb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, request.ResolveClientType(tt.header, tt.ua))
		})
	}

	assert.True(t, request.IsWebClient(request.ClientWeb))
	assert.False(t, request.IsWebClient(request.ClientAPI))
}
