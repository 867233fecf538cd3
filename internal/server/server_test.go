package server

import (
	"testing"

	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/overlay"
)

func TestOptionsAddr(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"defaults", Options{}, "localhost:2222"},
		{"port only", Options{Port: 2323}, "localhost:2323"},
		{"all interfaces", Options{Host: "0.0.0.0", Port: 22}, "0.0.0.0:22"},
		{"ipv6", Options{Host: "::1", Port: 2222}, "[::1]:2222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSessionModel(t *testing.T) {
	m := NewSessionModel(config.DefaultConfig(), nil, 100, 30)
	if m.Width != 100 || m.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.Width, m.Height)
	}
	if m.Controller().State() != overlay.Enabled {
		t.Error("border should be enabled for a new session")
	}

	unsized := NewSessionModel(config.DefaultConfig(), nil, 0, 0)
	if unsized.Width != 0 || unsized.Height != 0 {
		t.Error("a missing pty size should leave the model unsized")
	}
}
