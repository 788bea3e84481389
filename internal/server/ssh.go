// Package server serves the Copland desktop over SSH.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/ssh"

	"github.com/14ROVI/copland/internal/app"
	"github.com/14ROVI/copland/internal/config"
	"github.com/14ROVI/copland/internal/input"
	"github.com/14ROVI/copland/internal/theme"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string
	// Desktop is the template every session's desktop is built from.
	// Context, Pointer, Background and RemoteUser are filled per session.
	Desktop app.Options
	Logger  *log.Logger
}

// DefaultHostKeyPath is where the host key lives when none is given.
func DefaultHostKeyPath() (string, error) {
	return xdg.DataFile("copland/ssh_host_ed25519")
}

type sshServer struct {
	cfg        *SSHServerConfig
	logger     *log.Logger
	background *theme.Background
}

// StartSSHServer serves a desktop per SSH session until ctx is done.
// Every session shares one background, so changing it in one session
// shows up in all of them.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		p, err := DefaultHostKeyPath()
		if err != nil {
			return fmt.Errorf("failed to resolve host key path: %w", err)
		}
		hostKeyPath = p
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default().WithPrefix("ssh")
	}
	bg := cfg.Desktop.Background
	if bg == nil {
		start := 1
		if cfg.Desktop.Config != nil {
			start = cfg.Desktop.Config.Appearance.Background
		}
		bg = theme.NewBackground(start)
	}
	s := &sshServer{cfg: cfg, logger: logger, background: bg}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting SSH server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("SSH server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down SSH server")
	return srv.Shutdown(context.WithoutCancel(ctx))
}

// teaHandler creates a desktop for each SSH session.
func (s *sshServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sess.Pty()
	if !active {
		s.logger.Warn("rejecting session without a pty", "user", sess.User())
		return nil, nil
	}

	opts := s.cfg.Desktop
	opts.Context = sess.Context()
	opts.Pointer = input.NewRouter()
	opts.Background = s.background
	opts.RemoteUser = sess.User()
	opts.Logger = s.logger.With("user", sess.User())

	d := app.New(opts)
	d.Width, d.Height = pty.Window.Width, pty.Window.Height

	go func() {
		<-sess.Context().Done()
		d.Cleanup()
	}()

	return d, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
