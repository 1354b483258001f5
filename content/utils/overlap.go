package utils

// Overlap 判断两个轴对齐矩形是否相交，边缘相接不算相交
func Overlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw &&
		ax+aw > bx &&
		ay < by+bh &&
		ay+ah > by
}
