package board

import (
	"fmt"
	"sort"
	"strings"
)

// 默认参数（单位 mm），与常见激光切割棋盘的默认值保持一致。
const (
	DefaultMargin               = 15.0
	DefaultRoundedCorners       = 10.0
	DefaultSpacingHorizontal    = 22.0
	DefaultSpacingVertical      = 23.7
	DefaultLineWidth            = 0.15
	DefaultMultipleLines        = 2
	DefaultMultipleLinesSpacing = 0.25
	DefaultStarDiameter         = 4.0
)

// GridPoint 表示棋盘交叉点的格点坐标（从 0 开始计数）。
type GridPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Colors 描述三种用途的颜色：切割线、标记线与底色。
type Colors struct {
	CutStroke  Color `json:"cutStroke"`
	MarkStroke Color `json:"markStroke"`
	Background Color `json:"background"`
}

// DefaultColors 返回默认配色：黑色切割线、红色标记线、白色底。
func DefaultColors() Colors {
	return Colors{
		CutStroke:  Color{R: 0, G: 0, B: 0},
		MarkStroke: Color{R: 255, G: 0, B: 0},
		Background: Color{R: 255, G: 255, B: 255},
	}
}

// Config 描述一次生成所需的全部参数（长度单位均为 mm）。
// 每次运行组装一份校验过的 Config 值，之后不再修改。
type Config struct {
	Name                 string      `json:"name"`
	LinesHorizontal      int         `json:"linesHorizontal"`
	LinesVertical        int         `json:"linesVertical"`
	StarPoints           []GridPoint `json:"starPoints"`
	Margin               float64     `json:"margin"`
	RoundedCorners       float64     `json:"roundedCorners"`
	SpacingHorizontal    float64     `json:"spacingHorizontal"`
	SpacingVertical      float64     `json:"spacingVertical"`
	LineWidth            float64     `json:"linewidth"`
	MultipleLines        int         `json:"multipleLines"`        // 每条逻辑线展开的平行笔画数
	MultipleLinesSpacing float64     `json:"multipleLinesSpacing"` // 平行笔画之间的间距
	StarDiameter         float64     `json:"starDiameter"`
	DrawBorder           bool        `json:"drawBorder"`
	HalfBoard            bool        `json:"halfBoard"`
	Colors               Colors      `json:"colors"`
}

// ConfigError 表示致命的配置错误，在任何几何计算开始前报告。
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "配置无效: " + e.Reason }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// sizePresets 内置的棋盘规格：线数与星位。
var sizePresets = map[string]struct {
	lines int
	stars []GridPoint
}{
	"7":  {7, []GridPoint{{2, 2}, {4, 2}, {2, 4}, {4, 4}}},
	"9":  {9, []GridPoint{{2, 2}, {6, 2}, {4, 4}, {2, 6}, {6, 6}}},
	"13": {13, []GridPoint{{3, 3}, {9, 3}, {6, 6}, {3, 9}, {9, 9}}},
	"19": {19, []GridPoint{{3, 3}, {9, 3}, {15, 3}, {3, 9}, {9, 9}, {15, 9}, {3, 15}, {9, 15}, {15, 15}}},
}

// Sizes 返回全部内置尺寸键（升序），用于 CLI 提示与校验信息。
func Sizes() []string {
	keys := make([]string, 0, len(sizePresets))
	for k := range sizePresets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return len(keys[i]) < len(keys[j]) || (len(keys[i]) == len(keys[j]) && keys[i] < keys[j])
	})
	return keys
}

// defaultConfig 返回一份带默认参数的配置，线数与星位由调用方补齐。
func defaultConfig(name string) Config {
	return Config{
		Name:                 name,
		Margin:               DefaultMargin,
		RoundedCorners:       DefaultRoundedCorners,
		SpacingHorizontal:    DefaultSpacingHorizontal,
		SpacingVertical:      DefaultSpacingVertical,
		LineWidth:            DefaultLineWidth,
		MultipleLines:        DefaultMultipleLines,
		MultipleLinesSpacing: DefaultMultipleLinesSpacing,
		StarDiameter:         DefaultStarDiameter,
		DrawBorder:           true,
		Colors:               DefaultColors(),
	}
}

// SizeConfig 根据内置尺寸键组装一份默认配置。
// 尺寸键不在枚举内时返回 *ConfigError。
func SizeConfig(size string) (Config, error) {
	preset, ok := sizePresets[size]
	if !ok {
		return Config{}, configErrorf("未知的棋盘尺寸 %q（可选：%s）", size, strings.Join(Sizes(), ", "))
	}
	cfg := defaultConfig(size)
	cfg.LinesHorizontal = preset.lines
	cfg.LinesVertical = preset.lines
	cfg.StarPoints = append([]GridPoint(nil), preset.stars...)
	return cfg, nil
}

// Validate 检查配置自洽性。返回的错误均可通过 errors.As 判定为 *ConfigError。
func (c Config) Validate() error {
	if c.LinesHorizontal < 2 || c.LinesVertical < 2 {
		return configErrorf("线数至少为 2（当前 %d x %d）", c.LinesHorizontal, c.LinesVertical)
	}
	if c.SpacingHorizontal <= 0 || c.SpacingVertical <= 0 {
		return configErrorf("线间距必须为正数（当前 %g x %g）", c.SpacingHorizontal, c.SpacingVertical)
	}
	if c.LineWidth <= 0 {
		return configErrorf("线宽必须为正数（当前 %g）", c.LineWidth)
	}
	if c.Margin <= 0 {
		return configErrorf("边距必须为正数（当前 %g）", c.Margin)
	}
	if c.RoundedCorners < 0 {
		return configErrorf("圆角半径不能为负数（当前 %g）", c.RoundedCorners)
	}
	if c.MultipleLines < 1 {
		return configErrorf("平行笔画数至少为 1（当前 %d）", c.MultipleLines)
	}
	if c.MultipleLinesSpacing < 0 {
		return configErrorf("平行笔画间距不能为负数（当前 %g）", c.MultipleLinesSpacing)
	}
	if c.StarDiameter <= 0 {
		return configErrorf("星位直径必须为正数（当前 %g）", c.StarDiameter)
	}
	if c.HalfBoard && c.LinesVertical%2 == 0 {
		return configErrorf("半盘只支持奇数条垂直方向的线（当前 %d），否则没有可以对齐的中线", c.LinesVertical)
	}
	for _, p := range c.StarPoints {
		if p.X < 0 || p.X >= c.LinesHorizontal || p.Y < 0 || p.Y >= c.LinesVertical {
			return configErrorf("星位 (%d,%d) 超出棋盘格点范围 [0,%d] x [0,%d]", p.X, p.Y, c.LinesHorizontal-1, c.LinesVertical-1)
		}
	}
	return nil
}

// Warnings 返回不阻断生成的提示信息，例如边距小于圆角半径时
// 外框圆角可能与最外侧的线重叠。
func (c Config) Warnings() []string {
	var warns []string
	if c.Margin < c.RoundedCorners {
		warns = append(warns, fmt.Sprintf("边距 %g 小于圆角半径 %g，外框圆角可能压到棋盘线，可用 --margin 增大边距", c.Margin, c.RoundedCorners))
	}
	return warns
}
