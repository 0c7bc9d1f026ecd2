package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		server   config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both transports", server: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", server: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc only", server: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "nothing configured", server: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.StructuredConfig{Server: tt.server}

			h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
