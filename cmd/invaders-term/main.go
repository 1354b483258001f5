package main

import (
	"context"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"canvas-invaders/content/config"
	"canvas-invaders/content/terminal"
)

func main() {
	settings := config.LoadSettings()
	logger, closeLog := newLogger(settings)
	defer closeLog()
	log.SetDefault(logger)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Error("failed to enable raw mode", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	s := terminal.NewSession(os.Stdin, os.Stdout, terminal.Options{
		Size: func() (int, int, error) {
			return term.GetSize(int(os.Stdout.Fd()))
		},
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger: logger,
	})
	err = s.Run(ctx)
	stop()
	_ = term.Restore(fd, oldState)
	terminal.ClearScreen(os.Stdout)
	if err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

// newLogger 画面占满了终端，日志只在设置了 INVADERS_LOG_FILE 时输出
func newLogger(settings config.Settings) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			w = f
			closeFn = func() { _ = f.Close() }
		}
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "invaders",
		ReportTimestamp: true,
	})
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger, closeFn
}
