package terminal

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"canvas-invaders/content/config"
	"canvas-invaders/content/game"
)

// SizeFunc 返回终端的列数和行数
type SizeFunc func() (cols, rows int, err error)

type Options struct {
	Size   SizeFunc
	Rand   *rand.Rand
	Logger *log.Logger
	Sound  game.Sound // 终端默认用响铃
}

// Session 一个终端上的一局游戏，所有状态都只在 Run 的 goroutine 上访问
type Session struct {
	in     io.Reader
	out    io.Writer
	size   SizeFunc
	logger *log.Logger

	state   *game.State
	driver  *game.Driver
	spawner *game.Spawner
	grid    *Grid
	decoder *Decoder
}

func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Size == nil {
		opts.Size = func() (int, int, error) { return 80, 24, nil }
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Sound == nil {
		opts.Sound = bell{w: out}
	}

	s := &Session{
		in:      in,
		out:     out,
		size:    opts.Size,
		logger:  opts.Logger,
		decoder: NewDecoder(),
	}
	s.state = game.NewState(
		game.WithDisplay(display{}),
		game.WithKillSound(opts.Sound),
	)
	s.spawner = game.NewSpawner(config.SpawnPeriod(), opts.Rand)
	s.driver = game.NewDriver(s.state, s.spawner)
	s.grid = NewGrid(80, 24, s.state.Width, s.state.Height)
	return s
}

func (s *Session) State() *game.State {
	return s.state
}

// Run 运行游戏直到玩家按 q、输入结束或 ctx 被取消。
// 游戏结束后画面停在最后一帧，等待玩家退出。
func (s *Session) Run(ctx context.Context) error {
	keys := startStream(s.in)

	HideCursor(s.out)
	ClearScreen(s.out)
	defer ShowCursor(s.out)

	frame := time.NewTicker(time.Second / config.TPS)
	defer frame.Stop()
	spawn := time.NewTicker(s.spawner.Period())
	defer spawn.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-keys:
			if !ok {
				return nil
			}
			pressed, quit := s.decoder.Feed(b, time.Now())
			if quit {
				return nil
			}
			if !s.driver.Running() {
				continue
			}
			for _, k := range pressed {
				s.state.KeyDown(k)
			}
		case <-spawn.C:
			s.spawner.Spawn(s.state)
		case now := <-frame.C:
			for _, k := range s.decoder.Expire(now) {
				s.state.KeyUp(k)
			}
			if err := s.resize(); err != nil {
				return err
			}
			running := s.driver.Frame(s.grid, 0)
			if err := s.grid.Render(s.out); err != nil {
				return fmt.Errorf("render frame: %w", err)
			}
			if !running {
				frame.Stop()
				spawn.Stop()
				s.logger.Info("session finished", "score", s.state.Score, "missed", s.state.Missed)
				if _, err := io.WriteString(s.out, "\r\npress q to quit"); err != nil {
					return err
				}
			}
		}
	}
}

func (s *Session) resize() error {
	cols, rows, err := s.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	// 最后一行留给提示
	s.grid.Resize(cols, rows-1)
	return nil
}

// display 终端无法切换全屏，画布始终铺满终端
type display struct{}

func (display) Fullscreen() bool {
	return false
}

func (display) SetFullscreen(bool) error {
	return game.ErrFullscreenUnsupported
}

type bell struct {
	w io.Writer
}

func (b bell) Play() error {
	_, err := io.WriteString(b.w, "\a")
	return err
}
