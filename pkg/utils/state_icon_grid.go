package utils

import (
	"image"

	"github.com/gonewx/stateicons/pkg/config"
)

// StateIconSlot 状态图标网格中的一个格子
type StateIconSlot struct {
	Index  int     // 格子编号（生成顺序）
	Row    int     // 距锚点的行数
	Column int     // 距锚点的列数
	X, Y   float64 // 图标中心的屏幕坐标
}

// CalculateStateIconSlots 计算状态图标网格中每个格子的屏幕坐标
//
// 参数:
//   - anchorX, anchorY: 原单图标的位置（锚点）
//   - layout: 网格布局配置
//   - iconWidth, iconHeight: 图标尺寸
//
// 返回:
//   - 共 RowMax*ColumnMax 个格子，按编号顺序排列
//
// IconsAlign 为 Vertical 时外层循环遍历列、内层遍历行（先填满一列），
// 否则外层遍历行、内层遍历列。行数或列数为 0 时返回空切片。
func CalculateStateIconSlots(anchorX, anchorY float64, layout *config.StateIconLayout, iconWidth, iconHeight float64) []StateIconSlot {
	outerMax, innerMax := layout.RowMax, layout.ColumnMax
	if layout.IconsAlign == config.IconsAlignVertical {
		outerMax, innerMax = layout.ColumnMax, layout.RowMax
	}
	if outerMax <= 0 || innerMax <= 0 {
		return []StateIconSlot{}
	}

	// 延伸方向
	xSign := 1.0
	if layout.ColumnAlign == config.ColumnAlignLeft {
		xSign = -1.0
	}
	ySign := 1.0
	if layout.RowAlign == config.RowAlignTop {
		ySign = -1.0
	}

	baseX := anchorX + float64(layout.OffsetX)
	baseY := anchorY + float64(layout.OffsetY)
	stepX := iconWidth + float64(layout.Padding)
	stepY := iconHeight + float64(layout.Padding)

	slots := make([]StateIconSlot, 0, outerMax*innerMax)
	for i := 0; i < outerMax; i++ {
		for j := 0; j < innerMax; j++ {
			xCount, yCount := j, i
			if layout.IconsAlign == config.IconsAlignVertical {
				xCount, yCount = i, j
			}

			slots = append(slots, StateIconSlot{
				Index:  len(slots),
				Row:    yCount,
				Column: xCount,
				X:      baseX + stepX*float64(xCount)*xSign,
				Y:      baseY + stepY*float64(yCount)*ySign,
			})
		}
	}
	return slots
}

// IconFrameRect 返回图标在图标表中的源矩形
func IconFrameRect(iconIndex int) image.Rectangle {
	if iconIndex < 0 {
		iconIndex = 0
	}
	sx := (iconIndex % config.IconSetColumns) * config.IconWidth
	sy := (iconIndex / config.IconSetColumns) * config.IconHeight
	return image.Rect(sx, sy, sx+config.IconWidth, sy+config.IconHeight)
}
