package board

import (
	"errors"
	"testing"
)

// TestSizePresets 验证内置尺寸：线数与尺寸键一致，星位全部落在格点范围内。
func TestSizePresets(t *testing.T) {
	want := map[string]int{"7": 7, "9": 9, "13": 13, "19": 19}
	for size, lines := range want {
		cfg := mustSize(t, size)
		if cfg.LinesHorizontal != lines || cfg.LinesVertical != lines {
			t.Fatalf("尺寸 %s 线数错误: %dx%d", size, cfg.LinesHorizontal, cfg.LinesVertical)
		}
		for _, p := range cfg.StarPoints {
			if p.X < 0 || p.X >= cfg.LinesHorizontal || p.Y < 0 || p.Y >= cfg.LinesVertical {
				t.Fatalf("尺寸 %s 星位 (%d,%d) 超出范围", size, p.X, p.Y)
			}
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("尺寸 %s 默认配置应通过校验: %v", size, err)
		}
	}
}

// TestSizeConfigCopiesStars 验证每次组装的配置持有独立的星位切片。
func TestSizeConfigCopiesStars(t *testing.T) {
	a := mustSize(t, "9")
	b := mustSize(t, "9")
	a.StarPoints[0] = GridPoint{X: 8, Y: 8}
	if b.StarPoints[0] == a.StarPoints[0] {
		t.Fatalf("修改一份配置的星位不应影响另一份")
	}
}

// TestUnknownSize 验证非枚举尺寸返回配置错误。
func TestUnknownSize(t *testing.T) {
	_, err := SizeConfig("10")
	if err == nil {
		t.Fatalf("未知尺寸应当失败")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("期望 *ConfigError，实际 %T: %v", err, err)
	}
}

// TestValidateRejections 覆盖各类非法配置。
func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"线数过少", func(c *Config) { c.LinesHorizontal = 1 }},
		{"横向间距非正", func(c *Config) { c.SpacingHorizontal = 0 }},
		{"纵向间距非正", func(c *Config) { c.SpacingVertical = -1 }},
		{"线宽非正", func(c *Config) { c.LineWidth = 0 }},
		{"边距非正", func(c *Config) { c.Margin = 0 }},
		{"圆角为负", func(c *Config) { c.RoundedCorners = -1 }},
		{"笔画数为零", func(c *Config) { c.MultipleLines = 0 }},
		{"笔画间距为负", func(c *Config) { c.MultipleLinesSpacing = -0.1 }},
		{"星位直径非正", func(c *Config) { c.StarDiameter = 0 }},
		{"星位越界", func(c *Config) { c.StarPoints = []GridPoint{{13, 0}} }},
		{"星位为负", func(c *Config) { c.StarPoints = []GridPoint{{0, -1}} }},
		{"半盘偶数线", func(c *Config) { c.LinesVertical = 12; c.StarPoints = nil; c.HalfBoard = true }},
	}
	for _, tc := range cases {
		cfg := mustSize(t, "13")
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s：应当校验失败", tc.name)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("%s：期望 *ConfigError，实际 %T", tc.name, err)
		}
	}
}

// TestWarnings 验证边距小于圆角半径时只给提示，不阻断生成。
func TestWarnings(t *testing.T) {
	cfg := mustSize(t, "13")
	if ws := cfg.Warnings(); len(ws) != 0 {
		t.Fatalf("默认配置不应有警告: %v", ws)
	}

	cfg.Margin = 5 // 小于默认圆角半径 10
	ws := cfg.Warnings()
	if len(ws) != 1 {
		t.Fatalf("期望一条警告，实际 %d 条", len(ws))
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("警告不应导致校验失败: %v", err)
	}
	if _, err := NewBoard(cfg); err != nil {
		t.Fatalf("警告不应阻断几何计算: %v", err)
	}
}
