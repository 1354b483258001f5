package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"canvas-invaders/content/config"
	"canvas-invaders/content/terminal"
)

func main() {
	settings := config.LoadSettings()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "invaders-ssh",
		ReportTimestamp: true,
	})
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	log.SetDefault(logger)

	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithHostKeyPath(settings.SSHHostKey),
		wish.WithMiddleware(
			gameMiddleware(logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// 关闭 Nagle，按键延迟更低
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	)
	if err != nil {
		logger.Fatal("create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "host", settings.SSHHost, "port", settings.SSHPort)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware 每个 SSH 会话运行一局独立的游戏
func gameMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			l := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			l.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			size := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					size.update(win.Width, win.Height)
				}
			}()

			game := terminal.NewSession(bufio.NewReader(sess), sess, terminal.Options{
				Size:   size.get,
				Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
				Logger: l,
			})
			if err := game.Run(sess.Context()); err != nil {
				l.Error("game error", "err", err)
			}
			terminal.ClearScreen(sess)

			l.Info("session ended")
			next(sess)
		}
	}
}

// sizeTracker 记录 SSH 窗口大小变化，游戏循环每帧读取
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) get() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ terminal.SizeFunc = (*sizeTracker)(nil).get
