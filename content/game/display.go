package game

import (
	"errors"

	"github.com/charmbracelet/log"

	"canvas-invaders/content/config"
)

var ErrFullscreenUnsupported = errors.New("fullscreen is not supported")

// Display 全屏相关的外部能力。全屏状态变化后由前端调用 FullscreenChanged。
type Display interface {
	Fullscreen() bool
	SetFullscreen(on bool) error
}

func (s *State) toggleFullscreen() {
	if s.display == nil {
		log.Warn("fullscreen request failed", "err", ErrFullscreenUnsupported)
		return
	}
	if !s.display.Fullscreen() {
		if err := s.display.SetFullscreen(true); err != nil {
			log.Warn("fullscreen request failed", "err", err)
		}
		return
	}
	if err := s.display.SetFullscreen(false); err != nil {
		log.Warn("exit fullscreen failed", "err", err)
	}
}

// FullscreenChanged 全屏时画布使用视口大小，退出全屏恢复默认大小
func (s *State) FullscreenChanged(active bool, viewportWidth, viewportHeight int) {
	if active {
		s.Resize(float64(viewportWidth), float64(viewportHeight))
		return
	}
	s.Resize(config.ScreenWidth, config.ScreenHeight)
}
