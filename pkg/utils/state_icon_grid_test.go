package utils

import (
	"image"
	"testing"

	"github.com/gonewx/stateicons/pkg/config"
)

// findSlot 按行列查找格子
func findSlot(t *testing.T, slots []StateIconSlot, row, col int) StateIconSlot {
	t.Helper()
	for _, s := range slots {
		if s.Row == row && s.Column == col {
			return s
		}
	}
	t.Fatalf("slot (row=%d, col=%d) not found", row, col)
	return StateIconSlot{}
}

// TestCalculateStateIconSlotsDefaultLayout 默认布局（向下、向右、横向排列）的坐标
func TestCalculateStateIconSlotsDefaultLayout(t *testing.T) {
	layout := config.DefaultStateIconLayout()

	slots := CalculateStateIconSlots(100, 100, layout, 32, 32)
	if len(slots) != 12 {
		t.Fatalf("len(slots) = %d, want 12", len(slots))
	}

	tests := []struct {
		row, col int
		wantX    float64
		wantY    float64
	}{
		{0, 0, -5, 98},
		{0, 1, 29, 98},
		{1, 0, -5, 132},
		{2, 3, -5 + 34*3, 98 + 34*2},
	}
	for _, tt := range tests {
		s := findSlot(t, slots, tt.row, tt.col)
		if s.X != tt.wantX || s.Y != tt.wantY {
			t.Errorf("slot (row=%d, col=%d) = (%.0f, %.0f), want (%.0f, %.0f)", tt.row, tt.col, s.X, s.Y, tt.wantX, tt.wantY)
		}
	}

	// 横向排列：编号先沿列增长
	if slots[1].Row != 0 || slots[1].Column != 1 {
		t.Errorf("slot 1 = (row=%d, col=%d), want (0, 1)", slots[1].Row, slots[1].Column)
	}
	if slots[4].Row != 1 || slots[4].Column != 0 {
		t.Errorf("slot 4 = (row=%d, col=%d), want (1, 0)", slots[4].Row, slots[4].Column)
	}
}

// TestCalculateStateIconSlotsDistinct 任意方向组合下格子坐标互不相同、编号连续
func TestCalculateStateIconSlotsDistinct(t *testing.T) {
	for _, rowAlign := range []config.RowAlign{config.RowAlignTop, config.RowAlignBottom} {
		for _, colAlign := range []config.ColumnAlign{config.ColumnAlignLeft, config.ColumnAlignRight} {
			for _, iconsAlign := range []config.IconsAlign{config.IconsAlignVertical, config.IconsAlignHorizontal} {
				for rows := 1; rows <= 4; rows++ {
					for cols := 1; cols <= 4; cols++ {
						layout := config.DefaultStateIconLayout()
						layout.RowMax, layout.ColumnMax = rows, cols
						layout.RowAlign, layout.ColumnAlign, layout.IconsAlign = rowAlign, colAlign, iconsAlign

						slots := CalculateStateIconSlots(400, 300, layout, 32, 32)
						if len(slots) != rows*cols {
							t.Fatalf("%v/%v/%v %dx%d: len = %d", rowAlign, colAlign, iconsAlign, rows, cols, len(slots))
						}

						seen := make(map[[2]float64]bool)
						for i, s := range slots {
							if s.Index != i {
								t.Errorf("slot %d has index %d", i, s.Index)
							}
							key := [2]float64{s.X, s.Y}
							if seen[key] {
								t.Errorf("%v/%v/%v %dx%d: duplicate position %v", rowAlign, colAlign, iconsAlign, rows, cols, key)
							}
							seen[key] = true
						}
					}
				}
			}
		}
	}
}

// TestCalculateStateIconSlotsVertical 纵向排列时同一列内只有 Y 变化
func TestCalculateStateIconSlotsVertical(t *testing.T) {
	layout := config.DefaultStateIconLayout()
	layout.IconsAlign = config.IconsAlignVertical
	layout.RowAlign = config.RowAlignTop
	layout.ColumnAlign = config.ColumnAlignLeft
	layout.Padding = 4

	slots := CalculateStateIconSlots(0, 0, layout, 32, 32)

	// 外层为列：每 RowMax 个格子属于同一列
	for col := 0; col < layout.ColumnMax; col++ {
		group := slots[col*layout.RowMax : (col+1)*layout.RowMax]
		for j, s := range group {
			if s.Column != col || s.Row != j {
				t.Errorf("slot %d = (row=%d, col=%d), want (%d, %d)", s.Index, s.Row, s.Column, j, col)
			}
			if s.X != group[0].X {
				t.Errorf("slot %d X = %.0f, want %.0f", s.Index, s.X, group[0].X)
			}
			// 向上延伸，每行 -(32+4)
			wantY := group[0].Y - 36*float64(j)
			if s.Y != wantY {
				t.Errorf("slot %d Y = %.0f, want %.0f", s.Index, s.Y, wantY)
			}
		}
	}

	// 向左延伸
	if slots[layout.RowMax].X != slots[0].X-36 {
		t.Errorf("second column X = %.0f, want %.0f", slots[layout.RowMax].X, slots[0].X-36)
	}
}

// TestCalculateStateIconSlotsHorizontalRows 横向排列时同一行内只有 X 变化
func TestCalculateStateIconSlotsHorizontalRows(t *testing.T) {
	layout := config.DefaultStateIconLayout()

	slots := CalculateStateIconSlots(0, 0, layout, 32, 32)
	for row := 0; row < layout.RowMax; row++ {
		group := slots[row*layout.ColumnMax : (row+1)*layout.ColumnMax]
		for j, s := range group {
			if s.Y != group[0].Y {
				t.Errorf("slot %d Y = %.0f, want %.0f", s.Index, s.Y, group[0].Y)
			}
			if s.X != group[0].X+34*float64(j) {
				t.Errorf("slot %d X = %.0f, want %.0f", s.Index, s.X, group[0].X+34*float64(j))
			}
		}
	}
}

// TestCalculateStateIconSlotsEmpty 行数或列数为 0 时没有格子
func TestCalculateStateIconSlotsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {3, 0}, {0, 0}} {
		layout := config.DefaultStateIconLayout()
		layout.RowMax, layout.ColumnMax = dims[0], dims[1]

		slots := CalculateStateIconSlots(10, 10, layout, 32, 32)
		if len(slots) != 0 {
			t.Errorf("%dx%d: len(slots) = %d, want 0", dims[0], dims[1], len(slots))
		}
	}
}

func TestIconFrameRect(t *testing.T) {
	tests := []struct {
		icon int
		want image.Rectangle
	}{
		{0, image.Rect(0, 0, 32, 32)},
		{1, image.Rect(32, 0, 64, 32)},
		{15, image.Rect(480, 0, 512, 32)},
		{16, image.Rect(0, 32, 32, 64)},
		{34, image.Rect(64, 64, 96, 96)},
	}
	for _, tt := range tests {
		if got := IconFrameRect(tt.icon); got != tt.want {
			t.Errorf("IconFrameRect(%d) = %v, want %v", tt.icon, got, tt.want)
		}
	}
}
