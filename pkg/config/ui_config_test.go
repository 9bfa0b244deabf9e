package config

import "testing"

// TestStateIconAnchor 测试状态图标锚点位于栏位右上角
func TestStateIconAnchor(t *testing.T) {
	tests := []struct {
		name         string
		rectX, rectY float64
		rectWidth    float64
		wantX, wantY float64
	}{
		{"origin", 0, 0, 100, 88, 20},
		{"first item", 16, 456, 190, 194, 476},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateIconAnchorX(tt.rectX, tt.rectWidth); got != tt.wantX {
				t.Errorf("StateIconAnchorX: expected %v, got %v", tt.wantX, got)
			}
			if got := StateIconAnchorY(tt.rectY); got != tt.wantY {
				t.Errorf("StateIconAnchorY: expected %v, got %v", tt.wantY, got)
			}
		})
	}
}
