package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"canvas-invaders/content/config"
)

func Init(settings config.Settings) {
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.SetPrefix("invaders")
	log.SetReportTimestamp(true)

	InitImage(settings)
	InitFont()
	InitAudio(settings)
}

func main() {
	settings := config.LoadSettings()
	Init(settings)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Canvas Invaders")
	ebiten.SetTPS(config.TPS)
	// 游戏结束后不再绘制，保留最后一帧
	ebiten.SetScreenClearedEveryFrame(false)

	g := NewGame(rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("run game", "err", err)
	}
}
