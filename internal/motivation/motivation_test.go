package motivation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMessages_ReturnsACopy(t *testing.T) {
	messages := DefaultMessages()
	require.NotEmpty(t, messages)

	messages[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultMessages()[0])
}

func TestHTTPProvider_Messages(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		expected []string
		wantErr  bool
	}{
		{
			name: "remote list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`["¡Sigue!", "¡Casi!"]`))
			},
			expected: []string{"¡Sigue!", "¡Casi!"},
		},
		{
			name: "empty entries are dropped",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`["", "¡Sigue!", ""]`))
			},
			expected: []string{"¡Sigue!"},
		},
		{
			name: "empty response falls back to the defaults",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[]`))
			},
			expected: DefaultMessages(),
		},
		{
			name: "server error falls back to the defaults",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expected: DefaultMessages(),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			provider := NewHTTPProvider(server.URL)
			messages, err := provider.Messages(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, messages)
		})
	}
}

func TestHTTPProvider_Messages_UnreachableServer(t *testing.T) {
	provider := NewHTTPProvider("http://127.0.0.1:1")

	messages, err := provider.Messages(context.Background())
	assert.Error(t, err)
	assert.Equal(t, DefaultMessages(), messages, "callers still get a usable list")
}
