// Package terminal 把游戏画到字符终端上，可以在本地终端或 SSH 会话中运行。
package terminal

import (
	"bufio"
	"image/color"
	"io"
	"math"
	"strconv"

	"canvas-invaders/content/game"
)

const (
	shipRune    = '█'
	invaderRune = 'W'
	rectRune    = '|'
)

type cell struct {
	r  rune
	fg int // ANSI 前景色 30-37，0 表示默认颜色
}

// Grid 字符画布，把逻辑坐标按比例缩放到终端的行列
type Grid struct {
	cols, rows int
	cells      []cell

	logicalW, logicalH float64
	scaleX, scaleY     float64

	numBuf [20]byte
}

func NewGrid(cols, rows int, logicalW, logicalH float64) *Grid {
	g := &Grid{logicalW: logicalW, logicalH: logicalH}
	g.Resize(cols, rows)
	return g
}

// Resize 终端大小变化时调用，逻辑大小不变
func (g *Grid) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols != g.cols || rows != g.rows {
		g.cols = cols
		g.rows = rows
		g.cells = make([]cell, cols*rows)
	}
	g.scaleX = float64(cols) / g.logicalW
	g.scaleY = float64(rows) / g.logicalH
}

func (g *Grid) Size() (int, int) {
	return g.cols, g.rows
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' '}
	}
}

func (g *Grid) FillRect(r game.Rect, c color.Color) {
	g.fill(r, rectRune, ansiColor(c))
}

func (g *Grid) DrawSprite(sprite game.Sprite, r game.Rect) {
	switch sprite {
	case game.SpriteShip:
		g.fill(r, shipRune, 36)
	case game.SpriteInvader:
		g.fill(r, invaderRune, 32)
	}
}

// DrawText y 是基线，文字放在基线上方半个字高所在的行
func (g *Grid) DrawText(str string, x, y float64, style game.TextStyle) {
	runes := []rune(str)
	col := int(x * g.scaleX)
	row := int((y - style.Size/2) * g.scaleY)
	if style.Center {
		col -= len(runes) / 2
		row = int(y * g.scaleY)
	}
	if row < 0 || row >= g.rows {
		return
	}
	fg := ansiColor(style.Color)
	for i, r := range runes {
		c := col + i
		if c < 0 || c >= g.cols {
			continue
		}
		g.cells[row*g.cols+c] = cell{r: r, fg: fg}
	}
}

// fill 覆盖矩形涉及的所有格子，至少一格
func (g *Grid) fill(r game.Rect, ch rune, fg int) {
	c0 := int(math.Floor(r.X * g.scaleX))
	r0 := int(math.Floor(r.Y * g.scaleY))
	c1 := int(math.Ceil((r.X+r.W)*g.scaleX)) - 1
	r1 := int(math.Ceil((r.Y+r.H)*g.scaleY)) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	for row := max(r0, 0); row <= min(r1, g.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, g.cols-1); col++ {
			g.cells[row*g.cols+col] = cell{r: ch, fg: fg}
		}
	}
}

// At 返回某个格子的字符，越界返回 0
func (g *Grid) At(col, row int) rune {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0
	}
	return g.cells[row*g.cols+col].r
}

// Render 把整个画布写到终端，颜色变化时才输出转义序列
func (g *Grid) Render(w io.Writer) error {
	bw := bufio.NewWriterSize(w, 8192)
	bw.WriteString("\033[H")
	for row := 0; row < g.rows; row++ {
		fg := 0
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			if c.fg != fg {
				if c.fg == 0 {
					bw.WriteString("\033[0m")
				} else {
					bw.WriteString("\033[")
					bw.Write(strconv.AppendInt(g.numBuf[:0], int64(c.fg), 10))
					bw.WriteByte('m')
				}
				fg = c.fg
			}
			if c.r == 0 {
				bw.WriteByte(' ')
			} else {
				bw.WriteRune(c.r)
			}
		}
		bw.WriteString("\033[0m")
		if row < g.rows-1 {
			bw.WriteString("\r\n")
		}
	}
	return bw.Flush()
}

// ansiColor 每个通道按亮度取 0 或 1，得到 8 色中最接近的一个
func ansiColor(c color.Color) int {
	if c == nil {
		return 0
	}
	r, gr, b, _ := c.RGBA()
	code := 30
	if r >= 0x8000 {
		code += 1
	}
	if gr >= 0x8000 {
		code += 2
	}
	if b >= 0x8000 {
		code += 4
	}
	return code
}

func ClearScreen(w io.Writer) {
	io.WriteString(w, "\033[H\033[2J")
}

func HideCursor(w io.Writer) {
	io.WriteString(w, "\033[?25l")
}

func ShowCursor(w io.Writer) {
	io.WriteString(w, "\033[?25h")
}
