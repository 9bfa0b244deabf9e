package components

import "github.com/gonewx/stateicons/pkg/ecs"

// StateIconComponent 状态图标精灵
// 对应宿主引擎中的单图标状态精灵：按固定帧数切换所显示的图标
//
// 坐标 (X, Y) 为图标中心
type StateIconComponent struct {
	Key     string       // 在状态窗口中注册的键，如 "actor1-stateIcon_3"
	Battler ecs.EntityID // 图标所属的角色实体

	X, Y float64

	IconIndex      int // 当前显示的图标编号，0 为空白
	AnimationIndex int // 当前图标在角色图标列表中的位置
	AnimationCount int // 距离上次切换经过的帧数

	Opacity int  // 不透明度 0~255
	Visible bool // 是否显示
}

// Move 移动到指定位置
func (c *StateIconComponent) Move(x, y float64) {
	c.X = x
	c.Y = y
}

// Show 显示精灵
func (c *StateIconComponent) Show() {
	c.Visible = true
}

// Hide 隐藏精灵
func (c *StateIconComponent) Hide() {
	c.Visible = false
}

// IsDrawn 返回本帧是否会被绘制
func (c *StateIconComponent) IsDrawn() bool {
	return c.Visible && c.Opacity > 0 && c.IconIndex > 0
}

// PagedStateIconComponent 网格中的一个格子
// 挂在 StateIconComponent 实体上，使其按页显示角色图标列表中的某一项
type PagedStateIconComponent struct {
	SlotIndex int // 格子编号，创建时确定
	PageIndex int // 当前页
}
