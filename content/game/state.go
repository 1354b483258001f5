package game

import (
	"canvas-invaders/content/config"
	"canvas-invaders/content/utils"
)

// Sound 击杀音效，每次播放前回到开头
type Sound interface {
	Play() error
}

// State 一局游戏的全部状态，只在一个 goroutine 上读写
type State struct {
	Width, Height float64

	Ship        Ship
	Projectiles []Projectile // 玩家子弹，不与入侵者碰撞
	Counters    []Projectile // 反击子弹，负责消灭入侵者
	Invaders    []Invader

	Score  int
	Missed int
	Mode   config.Mode

	input     Input
	display   Display
	killSound Sound
}

type Option func(s *State)

func WithDisplay(d Display) Option {
	return func(s *State) {
		s.display = d
	}
}

func WithKillSound(sound Sound) Option {
	return func(s *State) {
		s.killSound = sound
	}
}

// WithSize 指定初始画布大小，默认 800x600
func WithSize(width, height float64) Option {
	return func(s *State) {
		s.Width = width
		s.Height = height
	}
}

func NewState(options ...Option) *State {
	s := &State{
		Width:  config.ScreenWidth,
		Height: config.ScreenHeight,
		Mode:   config.ModeGame,
		input:  newInput(),
	}
	for _, option := range options {
		option(s)
	}
	s.Ship = newShip(s.Width, s.Height)
	return s
}

// Over 是否已经进入游戏结束状态，一旦为 true 不会再变回 false
func (s *State) Over() bool {
	return s.Mode == config.ModeGameOver
}

// Resize 修改画布大小。飞船重新贴到底部并限制在新的宽度内。
func (s *State) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Width = width
	s.Height = height
	s.Ship.Y = height - config.ShipBottomGap
	s.Ship.X = utils.Clamp(s.Ship.X, 0, width-s.Ship.W)
}

func (s *State) shoot() {
	s.Projectiles = append(s.Projectiles, newPlayerProjectile(&s.Ship))
}

func (s *State) shootCounter() {
	s.Counters = append(s.Counters, newCounterProjectile(&s.Ship))
}

func (s *State) addInvader(x float64) {
	s.Invaders = append(s.Invaders, newInvader(x))
}
