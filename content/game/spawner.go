package game

import (
	"math/rand"
	"time"

	"canvas-invaders/content/config"
	"canvas-invaders/content/utils"
)

// Spawner 每个周期在顶部随机位置生成一个入侵者
type Spawner struct {
	period  time.Duration
	elapsed time.Duration
	rand    *rand.Rand
	stopped bool
}

func NewSpawner(period time.Duration, r *rand.Rand) *Spawner {
	if period <= 0 {
		period = config.SpawnPeriod()
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Spawner{
		period: period,
		rand:   r,
	}
}

func (sp *Spawner) Period() time.Duration {
	return sp.period
}

// Advance 累加经过的时间，每满一个周期生成一个入侵者，返回本次生成的数量
func (sp *Spawner) Advance(s *State, dt time.Duration) int {
	if sp.stopped {
		return 0
	}
	sp.elapsed += dt
	n := 0
	for sp.elapsed >= sp.period {
		sp.elapsed -= sp.period
		sp.Spawn(s)
		n++
	}
	return n
}

// Spawn 立即生成一个入侵者，x 在 [0, 画布宽度-入侵者宽度] 内均匀分布
func (sp *Spawner) Spawn(s *State) {
	if sp.stopped {
		return
	}
	s.addInvader(utils.RandomSpan(sp.rand, s.Width-config.InvaderWidth))
}

// Stop 游戏结束后停止刷怪
func (sp *Spawner) Stop() {
	sp.stopped = true
}

func (sp *Spawner) Stopped() bool {
	return sp.stopped
}
