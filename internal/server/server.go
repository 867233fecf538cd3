// Package server serves the reference host over SSH, one host per session.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/Gaurav-Gosain/winborder/internal/app"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

const (
	// DefaultHost is the address the server binds to.
	DefaultHost = "localhost"
	// DefaultPort is the port the server listens on.
	DefaultPort = 2222

	shutdownTimeout = 5 * time.Second
	hostKeyRelPath  = "winborder/ssh_host_ed25519"
)

// Options configures the SSH server.
type Options struct {
	Host        string
	Port        int
	HostKeyPath string
	Config      *config.UserConfig
	Logger      *log.Logger
}

// Addr returns the listen address, filling in defaults.
func (o Options) Addr() string {
	host := o.Host
	if host == "" {
		host = DefaultHost
	}
	port := o.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Server serves a fresh reference host to every SSH session.
type Server struct {
	opts   Options
	logger *log.Logger
	srv    *ssh.Server
}

// New builds the server. The host key is generated on first use when it
// does not exist yet.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("ssh")

	if opts.HostKeyPath == "" {
		path, err := xdg.DataFile(hostKeyRelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve host key path: %w", err)
		}
		opts.HostKeyPath = path
	}

	s := &Server{opts: opts, logger: logger}
	srv, err := wish.NewServer(
		wish.WithAddress(opts.Addr()),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ssh server: %w", err)
	}
	s.srv = srv
	return s, nil
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr())
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shut down ssh server: %w", err)
	}
	return nil
}

func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
	logger.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

	m := NewSessionModel(s.opts.Config, logger, pty.Window.Width, pty.Window.Height)
	go func() {
		<-sess.Context().Done()
		logger.Info("session ended")
	}()
	return m, bubbletea.MakeOptions(sess)
}

// NewSessionModel builds a host already sized to the client's terminal.
func NewSessionModel(cfg *config.UserConfig, logger *log.Logger, width, height int) *app.Model {
	m := app.New(cfg, logger)
	if width > 0 && height > 0 {
		m.Resize(width, height)
	}
	return m
}
