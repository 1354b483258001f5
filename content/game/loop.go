package game

import (
	"time"

	"github.com/charmbracelet/log"
)

// Driver 每帧先更新再绘制，游戏结束后画完最后一帧就停止
type Driver struct {
	State   *State
	Spawner *Spawner
	done    bool
}

func NewDriver(s *State, sp *Spawner) *Driver {
	return &Driver{State: s, Spawner: sp}
}

// Running 是否还需要继续更新和绘制
func (d *Driver) Running() bool {
	return !d.done
}

// Step 处理输入并更新一帧，dt 用来推进刷怪计时，传 0 表示由外部定时器负责刷怪
func (d *Driver) Step(dt time.Duration) {
	if d.done {
		return
	}
	d.State.HandleInput()
	if dt > 0 && d.Spawner != nil {
		d.Spawner.Advance(d.State, dt)
	}
	d.State.Update()
}

// Draw 绘制当前帧。游戏结束时这是最后一帧，同时停止刷怪。
func (d *Driver) Draw(dst Surface) {
	if d.done {
		return
	}
	d.State.Render(dst)
	if d.State.Over() {
		d.done = true
		if d.Spawner != nil {
			d.Spawner.Stop()
		}
		log.Info("game over", "score", d.State.Score, "missed", d.State.Missed)
	}
}

// Frame 更新并绘制一帧，返回之后是否还需要继续
func (d *Driver) Frame(dst Surface, dt time.Duration) bool {
	d.Step(dt)
	d.Draw(dst)
	return d.Running()
}
