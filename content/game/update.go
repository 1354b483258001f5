package game

import (
	"github.com/charmbracelet/log"

	"canvas-invaders/content/config"
)

// Update 推进一帧。顺序会影响碰撞结果：飞船、玩家子弹、反击子弹、入侵者。
func (s *State) Update() {
	if s.Over() {
		return
	}

	s.Ship.Move(s.Width)
	s.updateProjectiles()
	s.updateCounters()
	s.updateInvaders()
}

func (s *State) updateProjectiles() {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		p.Move()
		if p.Y < 0 {
			continue
		}
		kept = append(kept, p)
	}
	s.Projectiles = kept
}

func (s *State) updateCounters() {
	kept := s.Counters[:0]
	for _, p := range s.Counters {
		p.Move()
		// 离开画布上下边缘即移除
		if p.Y > s.Height || p.Bottom() < 0 {
			continue
		}
		if s.hitInvader(p.Rect) {
			continue
		}
		kept = append(kept, p)
	}
	s.Counters = kept
}

// hitInvader 按列表顺序找到第一个与 r 相交的入侵者并移除，返回是否命中
func (s *State) hitInvader(r Rect) bool {
	for i, invader := range s.Invaders {
		if !r.Overlaps(invader.Rect) {
			continue
		}
		s.Invaders = append(s.Invaders[:i], s.Invaders[i+1:]...)
		s.Score += config.KillScore
		s.playKillSound()
		return true
	}
	return false
}

func (s *State) playKillSound() {
	if s.killSound == nil {
		return
	}
	if err := s.killSound.Play(); err != nil {
		log.Warn("play kill sound", "err", err)
	}
}

func (s *State) updateInvaders() {
	kept := s.Invaders[:0]
	for _, invader := range s.Invaders {
		invader.Move()
		if invader.Bottom() >= s.Height {
			s.miss()
			continue
		}
		kept = append(kept, invader)
	}
	s.Invaders = kept
}

// miss 漏掉一个入侵者。漏掉 10 个之后每次计 2，达到 25 游戏结束。
func (s *State) miss() {
	if s.Missed >= config.MissDoubleAfter {
		s.Missed += 2
	} else {
		s.Missed++
	}
	if s.Missed >= config.MissLimit {
		s.Mode = config.ModeGameOver
	}
}
