package systems

import (
	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
)

// StateIconBehavior 状态图标精灵的切换行为
//
// StateIconSystem 每帧累加精灵的 AnimationCount，达到 AnimationWait() 时
// 调用 UpdateIcon，传入角色当前的图标列表（不应显示时为空）。
type StateIconBehavior interface {
	// AnimationWait 返回两次切换之间的帧数
	AnimationWait() int
	// UpdateIcon 根据图标列表更新精灵所显示的图标
	UpdateIcon(icon *components.StateIconComponent, icons []int)
}

// BaseStateIconBehavior 单图标精灵的默认行为：依次轮播角色的全部图标
type BaseStateIconBehavior struct{}

// AnimationWait 实现 StateIconBehavior
func (BaseStateIconBehavior) AnimationWait() int {
	return config.DefaultStateIconAnimationWait
}

// UpdateIcon 实现 StateIconBehavior
// 图标列表为空时清空到初始状态
func (BaseStateIconBehavior) UpdateIcon(icon *components.StateIconComponent, icons []int) {
	if len(icons) > 0 {
		icon.AnimationIndex++
		if icon.AnimationIndex >= len(icons) {
			icon.AnimationIndex = 0
		}
		icon.IconIndex = icons[icon.AnimationIndex]
	} else {
		icon.AnimationIndex = 0
		icon.IconIndex = 0
	}
}

// PagedStateIconBehavior 网格格子的行为
//
// 包装一个基础行为：格子 SlotIndex 在第 PageIndex 页显示图标列表中的
// 第 SlotIndex + MaxIcons*PageIndex 项，每次切换后翻到下一页。
//
// 显示/隐藏只通过 Opacity 控制，不调用 Show/Hide：
// 宿主在角色倒下后的处理中可能会把精灵重新设为可见，
// 用不透明度控制可以保证空格子始终不可见。
type PagedStateIconBehavior struct {
	Base   StateIconBehavior
	Layout *config.StateIconLayout
	Paging *components.PagedStateIconComponent
}

// NewPagedStateIconBehavior 创建格子行为
func NewPagedStateIconBehavior(layout *config.StateIconLayout, paging *components.PagedStateIconComponent) *PagedStateIconBehavior {
	return &PagedStateIconBehavior{
		Base:   BaseStateIconBehavior{},
		Layout: layout,
		Paging: paging,
	}
}

// AnimationWait 实现 StateIconBehavior，翻页间隔即 ChangeSpan
func (b *PagedStateIconBehavior) AnimationWait() int {
	return b.Layout.ChangeSpan
}

// UpdateIcon 实现 StateIconBehavior
func (b *PagedStateIconBehavior) UpdateIcon(icon *components.StateIconComponent, icons []int) {
	if len(icons) == 0 {
		b.Base.UpdateIcon(icon, icons)
		icon.Opacity = 0
		b.Paging.PageIndex = 0
		return
	}

	maxIcons := b.Layout.MaxIcons()
	target := b.Paging.SlotIndex + maxIcons*b.Paging.PageIndex

	if target < len(icons) {
		icon.Opacity = b.Layout.DefaultOpacity
		// 基础行为会先前进一格再取图标
		icon.AnimationIndex = target - 1
		b.Base.UpdateIcon(icon, icons)
	} else {
		// 本页这个格子没有图标
		icon.Opacity = 0
	}

	b.Paging.PageIndex++
	if b.Paging.PageIndex >= PageCount(len(icons), maxIcons) {
		b.Paging.PageIndex = 0
	}
}

// PageCount 返回 iconCount 个图标按每页 maxIcons 个分页后的页数
func PageCount(iconCount, maxIcons int) int {
	if iconCount <= 0 || maxIcons <= 0 {
		return 0
	}
	return (iconCount + maxIcons - 1) / maxIcons
}
