// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPauseToggled 检查本帧是否请求暂停/继续
// 桌面端为空格键，移动端为任意新的触摸
func IsPauseToggled() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if IsMobile() {
		return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	}
	return false
}
