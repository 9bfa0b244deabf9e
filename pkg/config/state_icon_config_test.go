package config

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/gonewx/stateicons/pkg/embedded"
)

// TestDefaultStateIconLayout 测试默认布局与插件默认参数一致
func TestDefaultStateIconLayout(t *testing.T) {
	l := DefaultStateIconLayout()

	if l.ChangeSpan != 80 || l.OffsetX != -105 || l.OffsetY != -2 || l.Padding != 2 {
		t.Errorf("unexpected numeric defaults: %+v", l)
	}
	if l.RowMax != 3 || l.ColumnMax != 4 {
		t.Errorf("grid defaults = %dx%d, want 3x4", l.RowMax, l.ColumnMax)
	}
	if l.MaxIcons() != 12 {
		t.Errorf("MaxIcons() = %d, want 12", l.MaxIcons())
	}
	if l.DefaultOpacity != 255 {
		t.Errorf("DefaultOpacity = %d, want 255", l.DefaultOpacity)
	}
	if l.RowAlign != RowAlignBottom || l.ColumnAlign != ColumnAlignRight || l.IconsAlign != IconsAlignHorizontal {
		t.Errorf("unexpected align defaults: %v %v %v", l.RowAlign, l.ColumnAlign, l.IconsAlign)
	}
}

// TestParseStateIconParameters 测试插件参数的强制转换规则
func TestParseStateIconParameters(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		check  func(t *testing.T, l *StateIconLayout)
	}{
		{
			name:   "参数缺失使用默认值",
			params: map[string]string{},
			check: func(t *testing.T, l *StateIconLayout) {
				if *l != *DefaultStateIconLayout() {
					t.Errorf("got %+v, want defaults", l)
				}
			},
		},
		{
			name: "空字符串回退",
			params: map[string]string{
				ParamChangeSpan: "", ParamOffsetX: "", ParamRowMax: "", ParamColumnMax: "", ParamDefaultOpacity: "",
			},
			check: func(t *testing.T, l *StateIconLayout) {
				if l.ChangeSpan != 0 || l.OffsetX != 0 {
					t.Errorf("empty numeric params should be 0, got span=%d offsetX=%d", l.ChangeSpan, l.OffsetX)
				}
				if l.RowMax != 1 || l.ColumnMax != 1 {
					t.Errorf("empty grid params should be 1, got %dx%d", l.RowMax, l.ColumnMax)
				}
				if l.DefaultOpacity != 255 {
					t.Errorf("empty opacity should be 255, got %d", l.DefaultOpacity)
				}
			},
		},
		{
			name: "非数字",
			params: map[string]string{
				ParamPadding: "abc", ParamRowMax: "many", ParamDefaultOpacity: "opaque",
			},
			check: func(t *testing.T, l *StateIconLayout) {
				if l.Padding != 0 {
					t.Errorf("Padding = %d, want 0", l.Padding)
				}
				if l.RowMax != 1 {
					t.Errorf("RowMax = %d, want 1", l.RowMax)
				}
				if l.DefaultOpacity != 0 {
					t.Errorf("DefaultOpacity = %d, want 0", l.DefaultOpacity)
				}
			},
		},
		{
			name: "负数与越界夹取",
			params: map[string]string{
				ParamChangeSpan: "-5", ParamRowMax: "-1", ParamColumnMax: "-3", ParamDefaultOpacity: "300", ParamOffsetX: "-9999",
			},
			check: func(t *testing.T, l *StateIconLayout) {
				if l.ChangeSpan != 0 || l.RowMax != 0 || l.ColumnMax != 0 {
					t.Errorf("negative values should clamp to 0: %+v", l)
				}
				if l.DefaultOpacity != 255 {
					t.Errorf("DefaultOpacity = %d, want 255", l.DefaultOpacity)
				}
				if l.OffsetX != -9999 {
					t.Errorf("OffsetX = %d, want -9999", l.OffsetX)
				}
			},
		},
		{
			name: "小数取整",
			params: map[string]string{ParamChangeSpan: "60.0", ParamPadding: " 4 "},
			check: func(t *testing.T, l *StateIconLayout) {
				if l.ChangeSpan != 60 || l.Padding != 4 {
					t.Errorf("got span=%d padding=%d, want 60/4", l.ChangeSpan, l.Padding)
				}
			},
		},
		{
			name: "日文选项",
			params: map[string]string{ParamRowAlign: "上", ParamColumnAlign: "左", ParamIconsAlign: "縦"},
			check: func(t *testing.T, l *StateIconLayout) {
				if l.RowAlign != RowAlignTop || l.ColumnAlign != ColumnAlignLeft || l.IconsAlign != IconsAlignVertical {
					t.Errorf("got %v %v %v", l.RowAlign, l.ColumnAlign, l.IconsAlign)
				}
			},
		},
		{
			name: "IconsAlign 空值取纵向",
			params: map[string]string{ParamIconsAlign: "  "},
			check: func(t *testing.T, l *StateIconLayout) {
				if l.IconsAlign != IconsAlignVertical {
					t.Errorf("IconsAlign = %v, want Vertical", l.IconsAlign)
				}
			},
		},
		{
			name: "超出范围的小数",
			params: map[string]string{ParamOffsetX: "1e30", ParamOffsetY: "-1e30", ParamPadding: "NaN"},
			check: func(t *testing.T, l *StateIconLayout) {
				if l.OffsetX != math.MaxInt32 {
					t.Errorf("OffsetX = %d, want %d", l.OffsetX, math.MaxInt32)
				}
				if l.OffsetY != math.MinInt32 {
					t.Errorf("OffsetY = %d, want %d", l.OffsetY, math.MinInt32)
				}
				if l.Padding != 0 {
					t.Errorf("Padding = %d, want 0", l.Padding)
				}
			},
		},
		{
			name: "无法识别的方向回退为正方向",
			params: map[string]string{ParamRowAlign: "sideways", ParamColumnAlign: "", ParamIconsAlign: "diagonal"},
			check: func(t *testing.T, l *StateIconLayout) {
				if l.RowAlign != RowAlignBottom || l.ColumnAlign != ColumnAlignRight || l.IconsAlign != IconsAlignHorizontal {
					t.Errorf("got %v %v %v", l.RowAlign, l.ColumnAlign, l.IconsAlign)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ParseStateIconParameters(tt.params))
		})
	}
}

// TestApplyStateIconParametersKeepsBase 测试覆盖参数不修改原配置
func TestApplyStateIconParametersKeepsBase(t *testing.T) {
	base := DefaultStateIconLayout()
	base.RowMax = 2

	got := ApplyStateIconParameters(base, map[string]string{ParamColumnMax: "6"})

	if got.RowMax != 2 || got.ColumnMax != 6 {
		t.Errorf("got %dx%d, want 2x6", got.RowMax, got.ColumnMax)
	}
	if base.ColumnMax != 4 {
		t.Errorf("base was modified: ColumnMax = %d", base.ColumnMax)
	}

	// Parameters() 往返后应保持一致
	again := ParseStateIconParameters(got.Parameters())
	if *again != *got {
		t.Errorf("Parameters() round trip mismatch: %+v vs %+v", again, got)
	}
}

// TestLoadStateIconLayout 测试从嵌入文件加载 YAML 布局
func TestLoadStateIconLayout(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/state_icons.yaml": {Data: []byte(`
changeSpan: 30
rowMax: 2
columnMax: 5
rowAlign: Top
columnAlign: 左
iconsAlign: vertical
defaultOpacity: 999
`)},
		"data/broken.yaml": {Data: []byte("rowMax: [1, 2\n")},
	})

	l, err := LoadStateIconLayout("data/state_icons.yaml")
	if err != nil {
		t.Fatalf("LoadStateIconLayout() error: %v", err)
	}

	if l.ChangeSpan != 30 || l.RowMax != 2 || l.ColumnMax != 5 {
		t.Errorf("numeric fields not loaded: %+v", l)
	}
	// 未出现的字段保留默认值
	if l.OffsetX != -105 || l.Padding != 2 {
		t.Errorf("missing fields should keep defaults: %+v", l)
	}
	if l.RowAlign != RowAlignTop || l.ColumnAlign != ColumnAlignLeft || l.IconsAlign != IconsAlignVertical {
		t.Errorf("enum fields not decoded: %v %v %v", l.RowAlign, l.ColumnAlign, l.IconsAlign)
	}
	if l.DefaultOpacity != 255 {
		t.Errorf("DefaultOpacity should clamp to 255, got %d", l.DefaultOpacity)
	}

	if _, err := LoadStateIconLayout("data/broken.yaml"); err == nil {
		t.Error("expected parse error for broken YAML")
	}
	if _, err := LoadStateIconLayout("data/missing.yaml"); err == nil {
		t.Error("expected read error for missing file")
	}
}
