package config

type Mode int

const (
	ModeGame Mode = iota
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeGame:
		return "game"
	case ModeGameOver:
		return "game over"
	}
	return "unknown"
}

const (
	ScreenWidth   = 800
	ScreenHeight  = 600
	FrameOX       = 0
	FrameOY       = 32
	FrameWidth    = 32
	FrameHeight   = 32
	TitleFontSize = FontSize * 2
	FontSize      = 20
	TPS           = 60
)

// 飞船
const (
	ShipWidth     = 50
	ShipHeight    = 50
	ShipSpeed     = 5
	ShipBottomGap = 60 // 飞船顶部距离画布底部的距离
)

// 子弹
const (
	ProjectileWidth     = 5
	ProjectileHeight    = 10
	ProjectileSpeed     = 7
	CounterSpeed        = -7 // 负数表示向上移动
	CounterMuzzleOffset = 20 // 反击子弹在飞船上方的偏移
)

// 入侵者
const (
	InvaderWidth  = 40
	InvaderHeight = 40
	InvaderSpeed  = 2
	SpawnPeriodMS = 1000
)

// 计分
const (
	KillScore       = 10
	MissDoubleAfter = 10 // 漏掉的数量达到此值后，每次漏掉计 2
	MissLimit       = 25
)
