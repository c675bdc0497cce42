package game

// Part 网格上的一个实体：蛇身、收集物、苹果或炸弹
// X/Y 为格子中心的像素坐标
type Part struct {
	X    float64
	Y    float64
	Size float64

	// LifeTime 仅苹果使用，剩余的有效步数
	LifeTime int
}

// Collides 两个实体坐标完全相同即视为碰撞
// 所有实体都对齐到同一网格，不需要包围盒判断
func Collides(a, b Part) bool {
	return a.X == b.X && a.Y == b.Y
}

// CollidesWithAny 与列表中任意一个碰撞即返回 true
func CollidesWithAny(obj Part, parts []Part) bool {
	for _, p := range parts {
		if Collides(obj, p) {
			return true
		}
	}
	return false
}
