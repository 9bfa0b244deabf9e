package systems

import (
	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
	"github.com/gonewx/stateicons/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// StateIconRenderSystem 绘制状态图标精灵
// 按实体创建顺序绘制，精灵坐标为图标中心，不透明度作为 alpha 缩放
type StateIconRenderSystem struct {
	entityManager *ecs.EntityManager
	iconSet       *ebiten.Image
}

// NewStateIconRenderSystem 创建状态图标渲染系统
func NewStateIconRenderSystem(em *ecs.EntityManager, iconSet *ebiten.Image) *StateIconRenderSystem {
	return &StateIconRenderSystem{
		entityManager: em,
		iconSet:       iconSet,
	}
}

// Draw 绘制全部可见的状态图标
func (s *StateIconRenderSystem) Draw(screen *ebiten.Image) {
	if s.iconSet == nil {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.StateIconComponent](s.entityManager) {
		icon, ok := ecs.GetComponent[*components.StateIconComponent](s.entityManager, id)
		if !ok || !icon.IsDrawn() {
			continue
		}

		frame := utils.IconFrameRect(icon.IconIndex)
		if !frame.In(s.iconSet.Bounds()) {
			continue
		}
		src := s.iconSet.SubImage(frame).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(icon.X-config.IconWidth/2, icon.Y-config.IconHeight/2)
		op.ColorScale.ScaleAlpha(DrawAlpha(icon.Opacity))
		screen.DrawImage(src, op)
	}
}

// DrawAlpha 把 0~255 的不透明度换算为 alpha 缩放系数
func DrawAlpha(opacity int) float32 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 255 {
		return 1
	}
	return float32(opacity) / 255
}
