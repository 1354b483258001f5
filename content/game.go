package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"canvas-invaders/content/config"
	"canvas-invaders/content/game"
)

// 只处理这几个键，其它按键忽略
var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeySpace:      game.KeyFire,
	ebiten.KeyR:          game.KeyCounterFire,
	ebiten.KeyF:          game.KeyFullscreen,
}

type Game struct {
	state      *game.State
	driver     *game.Driver
	keys       []ebiten.Key
	fullscreen bool // 上一次 Layout 时的全屏状态
	viewW      int
	viewH      int
}

func NewGame(r *rand.Rand) *Game {
	g := &Game{}
	g.state = game.NewState(
		game.WithDisplay(windowDisplay{}),
		game.WithKillSound(killSound),
	)
	g.driver = game.NewDriver(g.state, game.NewSpawner(config.SpawnPeriod(), r))
	return g
}

func (g *Game) Update() error {
	switch g.state.Mode {
	case config.ModeGame:
		g.resolveKeys()
		g.driver.Step(time.Second / time.Duration(ebiten.TPS()))
	case config.ModeGameOver:
		// 结束状态是单向的，不再处理输入
	}
	return nil
}

// resolveKeys 把这一帧按下和松开的键放进输入队列
func (g *Game) resolveKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyMap[k]; ok {
			g.state.KeyDown(key)
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyMap[k]; ok {
			g.state.KeyUp(key)
		}
	}
}

// Draw 游戏结束后画完最后一帧就不再绘制，屏幕保留这一帧
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.driver.Running() {
		return
	}
	g.driver.Draw(&Surface{dst: screen})
}

// Layout 全屏时画布跟随视口大小，窗口模式使用默认大小
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fullscreen := ebiten.IsFullscreen()
	if fullscreen != g.fullscreen || (fullscreen && (outsideWidth != g.viewW || outsideHeight != g.viewH)) {
		g.fullscreen = fullscreen
		g.viewW, g.viewH = outsideWidth, outsideHeight
		g.state.FullscreenChanged(fullscreen, outsideWidth, outsideHeight)
	}
	return int(g.state.Width), int(g.state.Height)
}

// windowDisplay 通过 ebiten 切换全屏，状态变化在 Layout 中处理
type windowDisplay struct{}

func (windowDisplay) Fullscreen() bool {
	return ebiten.IsFullscreen()
}

func (windowDisplay) SetFullscreen(on bool) error {
	ebiten.SetFullscreen(on)
	return nil
}
