// Package game 是游戏的核心：实体、输入、刷怪、更新和绘制，不依赖具体的渲染后端。
package game

import (
	"canvas-invaders/content/config"
	"canvas-invaders/content/utils"
)

// Rect 轴对齐的矩形，(X, Y) 为左上角
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Overlaps(o Rect) bool {
	return utils.Overlap(r.X, r.Y, r.W, r.H, o.X, o.Y, o.W, o.H)
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

type Ship struct {
	Rect
	DX    float64 // 当前水平速度
	Speed float64
}

func newShip(width, height float64) Ship {
	return Ship{
		Rect: Rect{
			X: width/2 - config.ShipWidth/2,
			Y: height - config.ShipBottomGap,
			W: config.ShipWidth,
			H: config.ShipHeight,
		},
		Speed: config.ShipSpeed,
	}
}

// Move 按当前速度移动，并限制在画布内
func (s *Ship) Move(canvasWidth float64) {
	s.X += s.DX
	s.X = utils.Clamp(s.X, 0, canvasWidth-s.W)
}

// muzzleX 子弹从飞船水平中心发射
func (s *Ship) muzzleX() float64 {
	return s.X + s.W/2 - config.ProjectileWidth/2.0
}

// Projectile 玩家子弹和反击子弹共用。Speed 带符号，y += Speed。
type Projectile struct {
	Rect
	Speed float64
}

func newPlayerProjectile(s *Ship) Projectile {
	return Projectile{
		Rect:  Rect{X: s.muzzleX(), Y: s.Y, W: config.ProjectileWidth, H: config.ProjectileHeight},
		Speed: -config.ProjectileSpeed,
	}
}

func newCounterProjectile(s *Ship) Projectile {
	return Projectile{
		Rect:  Rect{X: s.muzzleX(), Y: s.Y - config.CounterMuzzleOffset, W: config.ProjectileWidth, H: config.ProjectileHeight},
		Speed: config.CounterSpeed,
	}
}

func (p *Projectile) Move() {
	p.Y += p.Speed
}

type Invader struct {
	Rect
	Speed float64
}

func newInvader(x float64) Invader {
	return Invader{
		Rect:  Rect{X: x, Y: 0, W: config.InvaderWidth, H: config.InvaderHeight},
		Speed: config.InvaderSpeed,
	}
}

func (i *Invader) Move() {
	i.Y += i.Speed
}
