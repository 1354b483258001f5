package game

import (
	"fmt"
	"image/color"

	"canvas-invaders/content/config"
)

type Sprite int

const (
	SpriteShip Sprite = iota
	SpriteInvader
)

// TextStyle 文字大小、颜色，Center 为 true 时 (x, y) 是文字的中心
type TextStyle struct {
	Size   float64
	Color  color.Color
	Center bool
}

// Surface 绘制目标。坐标都是画布坐标，文字的 y 是基线。
type Surface interface {
	Clear()
	FillRect(r Rect, c color.Color)
	DrawSprite(sprite Sprite, r Rect)
	DrawText(str string, x, y float64, style TextStyle)
}

var (
	ProjectileColor = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	CounterColor    = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	TextColor       = color.White
	GameOverColor   = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
)

// Render 根据当前状态重新绘制整个画面，不修改状态
func (s *State) Render(dst Surface) {
	dst.Clear()

	dst.DrawSprite(SpriteShip, s.Ship.Rect)

	for _, p := range s.Projectiles {
		dst.FillRect(p.Rect, ProjectileColor)
	}
	for _, p := range s.Counters {
		dst.FillRect(p.Rect, CounterColor)
	}
	for _, invader := range s.Invaders {
		dst.DrawSprite(SpriteInvader, invader.Rect)
	}

	hud := TextStyle{Size: config.FontSize, Color: TextColor}
	dst.DrawText(ScoreText(s.Score), 10, 20, hud)
	dst.DrawText(MissedText(s.Missed), 10, 50, hud)

	if s.Over() {
		dst.DrawText("GAME OVER", s.Width/2, s.Height/2, TextStyle{
			Size:   config.TitleFontSize,
			Color:  GameOverColor,
			Center: true,
		})
	}
}

func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func MissedText(missed int) string {
	return fmt.Sprintf("Missed: %d/%d", missed, config.MissLimit)
}
