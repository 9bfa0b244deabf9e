//go:build !mobile

package utils

import "testing"

// TestIsMobile 测试桌面端的移动模式开关
func TestIsMobile(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
	}
	for _, tt := range tests {
		t.Setenv("STATEICONS_MOBILE_EMULATE", tt.env)
		if got := IsMobile(); got != tt.want {
			t.Errorf("STATEICONS_MOBILE_EMULATE=%q: expected %v, got %v", tt.env, tt.want, got)
		}
	}
}
