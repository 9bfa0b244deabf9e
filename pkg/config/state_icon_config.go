package config

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/gonewx/stateicons/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 状态图标网格布局配置
//
// 战斗画面中，每名角色原本只有一个轮播的状态图标。
// 本配置把它展开成 RowMax × ColumnMax 的网格，图标数量超过格子数时按页轮换。
// 配置在启动时加载一次，之后只读。

// RowAlign 行的延伸方向
type RowAlign int

const (
	// RowAlignBottom 新行向下延伸（默认）
	RowAlignBottom RowAlign = iota
	// RowAlignTop 新行向上延伸
	RowAlignTop
)

// ColumnAlign 列的延伸方向
type ColumnAlign int

const (
	// ColumnAlignRight 新列向右延伸（默认）
	ColumnAlignRight ColumnAlign = iota
	// ColumnAlignLeft 新列向左延伸
	ColumnAlignLeft
)

// IconsAlign 图标的主填充方向
type IconsAlign int

const (
	// IconsAlignHorizontal 先填满一行再换行（默认）
	IconsAlignHorizontal IconsAlign = iota
	// IconsAlignVertical 先填满一列再换列
	IconsAlignVertical
)

// 插件参数名
const (
	ParamChangeSpan     = "ChangeSpan"
	ParamOffsetX        = "OffsetX"
	ParamOffsetY        = "OffsetY"
	ParamPadding        = "Padding"
	ParamRowMax         = "RowMax"
	ParamColumnMax      = "ColumnMax"
	ParamDefaultOpacity = "DefaultOpacity"
	ParamRowAlign       = "RowAlign"
	ParamColumnAlign    = "ColumnAlign"
	ParamIconsAlign     = "IconsAlign"
)

// StateIconLayout 状态图标网格布局配置
type StateIconLayout struct {
	ChangeSpan     int         `yaml:"changeSpan"`     // 翻页间隔（帧），0 表示每帧翻页
	OffsetX        int         `yaml:"offsetX"`        // 相对原图标位置的横向偏移，正数向右
	OffsetY        int         `yaml:"offsetY"`        // 相对原图标位置的纵向偏移，正数向下
	Padding        int         `yaml:"padding"`        // 相邻图标的间距
	RowMax         int         `yaml:"rowMax"`         // 最大行数
	ColumnMax      int         `yaml:"columnMax"`      // 最大列数
	DefaultOpacity int         `yaml:"defaultOpacity"` // 图标显示时的不透明度 0~255
	RowAlign       RowAlign    `yaml:"rowAlign"`       // 行的延伸方向
	ColumnAlign    ColumnAlign `yaml:"columnAlign"`    // 列的延伸方向
	IconsAlign     IconsAlign  `yaml:"iconsAlign"`     // 图标的排列方向
}

// DefaultStateIconLayout 返回默认布局
func DefaultStateIconLayout() *StateIconLayout {
	return &StateIconLayout{
		ChangeSpan:     80,
		OffsetX:        -105,
		OffsetY:        -2,
		Padding:        2,
		RowMax:         3,
		ColumnMax:      4,
		DefaultOpacity: 255,
		RowAlign:       RowAlignBottom,
		ColumnAlign:    ColumnAlignRight,
		IconsAlign:     IconsAlignHorizontal,
	}
}

// MaxIcons 返回一页最多显示的图标数
func (l *StateIconLayout) MaxIcons() int {
	return l.RowMax * l.ColumnMax
}

// Normalize 把越界的数值夹回合法范围
func (l *StateIconLayout) Normalize() {
	if l.ChangeSpan < 0 {
		l.ChangeSpan = 0
	}
	if l.RowMax < 0 {
		l.RowMax = 0
	}
	if l.ColumnMax < 0 {
		l.ColumnMax = 0
	}
	if l.DefaultOpacity < 0 {
		l.DefaultOpacity = 0
	} else if l.DefaultOpacity > 255 {
		l.DefaultOpacity = 255
	}
}

// LoadStateIconLayout 从 YAML 文件加载布局配置
// 文件中未出现的字段保留默认值
//
// 参数：
//
//	filepath - 配置文件路径（必须以 data/ 开头）
//
// 返回：
//
//	*StateIconLayout - 解析并夹取后的配置
//	error - 如果文件读取或解析失败，返回错误信息
func LoadStateIconLayout(filepath string) (*StateIconLayout, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read state icon layout file %s: %w", filepath, err)
	}

	layout, err := ParseStateIconLayout(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse state icon layout YAML from %s: %w", filepath, err)
	}
	return layout, nil
}

// ParseStateIconLayout 解析 YAML 格式的布局配置
func ParseStateIconLayout(data []byte) (*StateIconLayout, error) {
	layout := DefaultStateIconLayout()
	if err := yaml.Unmarshal(data, layout); err != nil {
		return nil, err
	}
	layout.Normalize()
	return layout, nil
}

// ParseStateIconParameters 把插件参数（全部为字符串）转换为布局配置
//
// 规则：
//   - 参数不存在：使用默认值
//   - 参数为空字符串：数值取 0，RowMax/ColumnMax 取 1，DefaultOpacity 取 255，IconsAlign 取纵向
//   - 参数不是整数：取 0，RowMax/ColumnMax 取 1；小数取整并夹取到 int32 范围
//   - 最后夹取到合法范围
//
// 参数转换永远不会失败，格式错误的值只记录日志
func ParseStateIconParameters(params map[string]string) *StateIconLayout {
	return ApplyStateIconParameters(DefaultStateIconLayout(), params)
}

// ApplyStateIconParameters 以 base 为缺省值应用插件参数，返回新的布局配置
// base 本身不会被修改
func ApplyStateIconParameters(base *StateIconLayout, params map[string]string) *StateIconLayout {
	copied := *base
	layout := &copied

	layout.ChangeSpan = intParam(params, ParamChangeSpan, layout.ChangeSpan, 0, 0)
	layout.OffsetX = intParam(params, ParamOffsetX, layout.OffsetX, 0, 0)
	layout.OffsetY = intParam(params, ParamOffsetY, layout.OffsetY, 0, 0)
	layout.Padding = intParam(params, ParamPadding, layout.Padding, 0, 0)
	layout.RowMax = intParam(params, ParamRowMax, layout.RowMax, 1, 1)
	layout.ColumnMax = intParam(params, ParamColumnMax, layout.ColumnMax, 1, 1)
	layout.DefaultOpacity = intParam(params, ParamDefaultOpacity, layout.DefaultOpacity, 255, 0)

	if v, ok := params[ParamRowAlign]; ok {
		layout.RowAlign = ParseRowAlign(v)
	}
	if v, ok := params[ParamColumnAlign]; ok {
		layout.ColumnAlign = ParseColumnAlign(v)
	}
	if v, ok := params[ParamIconsAlign]; ok {
		// 空值取插件的缺省选项「縦」
		if strings.TrimSpace(v) == "" {
			layout.IconsAlign = IconsAlignVertical
		} else {
			layout.IconsAlign = ParseIconsAlign(v)
		}
	}

	layout.Normalize()
	return layout
}

// intParam 读取一个整数参数
// absent 为参数缺失时的值，empty 为空字符串时的值，invalid 为无法解析时的值
func intParam(params map[string]string, name string, absent, empty, invalid int) int {
	raw, ok := params[name]
	if !ok {
		return absent
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return empty
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		// 插件参数允许写成小数（如 "80.0"），取整数部分
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			log.Printf("[StateIconLayout] Warning: parameter %s=%q is not a number, using %d", name, raw, invalid)
			return invalid
		}
		return clampFloatParam(f)
	}
	return v
}

// clampFloatParam 把小数参数夹取到 int32 范围后取整
func clampFloatParam(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// ParseRowAlign 解析行方向，支持英文和插件原始选项（上/下）
// 无法识别时返回 RowAlignBottom
func ParseRowAlign(s string) RowAlign {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "上":
		return RowAlignTop
	default:
		return RowAlignBottom
	}
}

// ParseColumnAlign 解析列方向，支持英文和插件原始选项（左/右）
// 无法识别时返回 ColumnAlignRight
func ParseColumnAlign(s string) ColumnAlign {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "左":
		return ColumnAlignLeft
	default:
		return ColumnAlignRight
	}
}

// ParseIconsAlign 解析排列方向，支持英文和插件原始选项（縦/横）
// 无法识别时返回 IconsAlignHorizontal
func ParseIconsAlign(s string) IconsAlign {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "縦", "纵":
		return IconsAlignVertical
	default:
		return IconsAlignHorizontal
	}
}

func (a RowAlign) String() string {
	if a == RowAlignTop {
		return "Top"
	}
	return "Bottom"
}

func (a ColumnAlign) String() string {
	if a == ColumnAlignLeft {
		return "Left"
	}
	return "Right"
}

func (a IconsAlign) String() string {
	if a == IconsAlignVertical {
		return "Vertical"
	}
	return "Horizontal"
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (a *RowAlign) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("rowAlign: %w", err)
	}
	*a = ParseRowAlign(s)
	return nil
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (a *ColumnAlign) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("columnAlign: %w", err)
	}
	*a = ParseColumnAlign(s)
	return nil
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (a *IconsAlign) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("iconsAlign: %w", err)
	}
	*a = ParseIconsAlign(s)
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (a RowAlign) MarshalYAML() (interface{}, error) { return a.String(), nil }

// MarshalYAML 实现 yaml.Marshaler
func (a ColumnAlign) MarshalYAML() (interface{}, error) { return a.String(), nil }

// MarshalYAML 实现 yaml.Marshaler
func (a IconsAlign) MarshalYAML() (interface{}, error) { return a.String(), nil }

// Parameters 把布局配置转换回插件参数形式
func (l *StateIconLayout) Parameters() map[string]string {
	return map[string]string{
		ParamChangeSpan:     strconv.Itoa(l.ChangeSpan),
		ParamOffsetX:        strconv.Itoa(l.OffsetX),
		ParamOffsetY:        strconv.Itoa(l.OffsetY),
		ParamPadding:        strconv.Itoa(l.Padding),
		ParamRowMax:         strconv.Itoa(l.RowMax),
		ParamColumnMax:      strconv.Itoa(l.ColumnMax),
		ParamDefaultOpacity: strconv.Itoa(l.DefaultOpacity),
		ParamRowAlign:       l.RowAlign.String(),
		ParamColumnAlign:    l.ColumnAlign.String(),
		ParamIconsAlign:     l.IconsAlign.String(),
	}
}
