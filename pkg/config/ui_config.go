package config

// UI 布局相关的常量配置
// 包括游戏窗口、战斗状态窗口以及状态图标素材的尺寸参数

const (
	// GameWindowWidth 游戏逻辑画面宽度
	GameWindowWidth = 816
	// GameWindowHeight 游戏逻辑画面高度
	GameWindowHeight = 624
)

// 图标素材（IconSet）参数
// 图标表为 16 列的等尺寸网格，图标编号从左上角开始按行递增
const (
	IconWidth      = 32 // 单个图标宽度（像素）
	IconHeight     = 32 // 单个图标高度（像素）
	IconSetColumns = 16 // 图标表每行图标数
	IconSetRows    = 20 // 占位图标表的行数（无 IconSet.png 时使用）
)

// DefaultStateIconAnimationWait 单图标状态精灵的切换间隔（帧）
// 与宿主引擎的默认值一致
const DefaultStateIconAnimationWait = 40

// 战斗状态窗口布局
// 窗口位于画面底部，每名角色占一列
const (
	BattleStatusWindowX       = 0.0
	BattleStatusWindowY       = 444.0
	BattleStatusWindowWidth   = 816.0
	BattleStatusWindowHeight  = 180.0
	BattleStatusWindowPadding = 12.0 // 窗口内边距
	BattleStatusMaxColumns    = 4    // 最多并排显示的角色数
	BattleStatusItemPadding   = 8.0  // 列之间的间距
)

// StateIconAnchorX 计算状态图标在角色栏中的锚点 X（图标中心）
// rectX/rectWidth 为角色栏的矩形（已扣除内边距）
func StateIconAnchorX(rectX, rectWidth float64) float64 {
	return rectX + rectWidth - IconWidth/2 + 4
}

// StateIconAnchorY 计算状态图标在角色栏中的锚点 Y（图标中心）
func StateIconAnchorY(rectY float64) float64 {
	return rectY + IconHeight/2 + 4
}
