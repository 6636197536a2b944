package board

// 校准样片的固定版面参数（单位 mm），与棋盘尺寸无关。
const (
	calibrationMargin     = 10.0
	calibrationLineLength = 10.0
	calibrationRowSpacing = 10.0
)

// calibrationSweep 是待测的（笔画数，笔画间距）组合，每行一组。
var calibrationSweep = []struct {
	count int
	gap   float64
}{
	{2, 0.1}, {2, 0.2}, {2, 0.3}, {2, 0.4}, {2, 0.5},
	{3, 0.1}, {3, 0.2}, {3, 0.3}, {3, 0.4}, {3, 0.5},
}

// CalibrationSheet 生成激光切割的线距校准样片：每行一组平行笔画，
// 逐行变化笔画数与间距，切完后对照实物挑选合适的参数。
// 只使用配置中的颜色、线宽与圆角，不依赖任何棋盘几何状态。
func CalibrationSheet(cfg Config) *Sheet {
	width := calibrationLineLength + 2*calibrationMargin
	height := float64(len(calibrationSweep))*calibrationRowSpacing + 2*calibrationMargin

	s := &Sheet{
		Width:  width,
		Height: height,
		Title:  "线距校准样片",
	}

	fill := cfg.Colors.Background
	s.Primitives = append(s.Primitives, Primitive{Rect: &Rect{
		X:            0,
		Y:            0,
		Width:        width,
		Height:       height,
		CornerRadius: cfg.RoundedCorners,
		Stroke:       cfg.Colors.CutStroke,
		StrokeWidth:  cfg.LineWidth,
		Fill:         &fill,
	}})

	start := point{calibrationMargin, calibrationMargin}
	for _, row := range calibrationSweep {
		end := point{start.x + calibrationLineLength, start.y}
		emitStrokes(s, start, end, axisY, row.count, row.gap, cfg.Colors.MarkStroke, cfg.LineWidth)
		start.y += calibrationRowSpacing
	}
	return s
}
