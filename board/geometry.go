package board

import "fmt"

// Board 按配置计算棋盘几何：外框、网格线与星位。
// 几何在首次 Build 时懒计算，并在 Board 生命周期内缓存。
type Board struct {
	cfg Config

	// linesVertical 是半盘裁剪后的垂直方向线数；整盘时等于配置值。
	linesVertical int
	width, height float64

	sheet *Sheet
}

// NewBoard 校验配置并预先计算整体尺寸。
// 配置错误（未知尺寸、半盘遇到偶数线数等）在这里报告，不会产生任何图元。
func NewBoard(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Board{cfg: cfg, linesVertical: cfg.LinesVertical}

	// 半盘只保留中线及其一侧的线。
	if cfg.HalfBoard {
		b.linesVertical = (cfg.LinesVertical + 1) / 2
	}

	// 宽度两侧各留一份边距。
	b.width = float64(cfg.LinesHorizontal-1)*cfg.SpacingHorizontal + cfg.LineWidth + cfg.Margin*2

	if cfg.HalfBoard {
		// 半盘的切割边没有边距，高度只含底部一份边距。
		b.height = float64(b.linesVertical-1)*cfg.SpacingVertical + cfg.LineWidth + cfg.Margin
	} else {
		b.height = float64(b.linesVertical-1)*cfg.SpacingVertical + cfg.LineWidth + cfg.Margin*2
	}
	return b, nil
}

// Width 返回包含边距与线宽的图纸宽度（mm）。
func (b *Board) Width() float64 { return b.width }

// Height 返回包含边距与线宽的图纸高度（mm）。
func (b *Board) Height() float64 { return b.height }

// LinesVertical 返回实际绘制的垂直方向线数（半盘裁剪后）。
func (b *Board) LinesVertical() int { return b.linesVertical }

// Build 生成全部绘制图元。发射顺序：外框（含半盘切割线）、
// 垂直方向的线、水平方向的线、星位圆圈。
func (b *Board) Build() *Sheet {
	if b.sheet != nil {
		return b.sheet
	}

	kind := "整盘"
	if b.cfg.HalfBoard {
		kind = "半盘"
	}
	s := &Sheet{
		Width:  b.width,
		Height: b.height,
		Title:  fmt.Sprintf("围棋棋盘 %s %dx%d", kind, b.cfg.LinesHorizontal, b.cfg.LinesVertical),
	}

	if b.cfg.DrawBorder {
		b.emitBorder(s)
	}

	// 网格线与星位的起点：半盘的切割边没有上边距。
	origin := point{b.cfg.Margin, b.cfg.Margin}
	if b.cfg.HalfBoard {
		origin = point{b.cfg.Margin, 0}
	}

	b.emitGrid(s, origin, b.linesVertical, b.cfg.SpacingVertical,
		float64(b.cfg.LinesHorizontal-1)*b.cfg.SpacingHorizontal, axisY)
	b.emitGrid(s, origin, b.cfg.LinesHorizontal, b.cfg.SpacingHorizontal,
		float64(b.linesVertical-1)*b.cfg.SpacingVertical, axisX)
	b.emitStars(s, origin)

	b.sheet = s
	return s
}

// emitBorder 生成外框。整圆角矩形很容易生成，所以半盘也按整盘画一个
// 向上延伸了圆角半径的圆角矩形，再在 y=0 处叠加一条横贯全宽的切割线；
// 切割线上方是一条废料条，由切割机丢弃，这里不做真正的布尔裁剪。
func (b *Board) emitBorder(s *Sheet) {
	cfg := b.cfg
	borderWidth := b.width - cfg.LineWidth
	borderPos := point{0, 0}
	borderHeight := b.height - cfg.LineWidth
	if cfg.HalfBoard {
		borderPos = point{0, -cfg.RoundedCorners}
		borderHeight = b.height - cfg.LineWidth + cfg.RoundedCorners
	}

	fill := cfg.Colors.Background
	s.Primitives = append(s.Primitives, Primitive{Rect: &Rect{
		X:            borderPos.x,
		Y:            borderPos.y,
		Width:        borderWidth,
		Height:       borderHeight,
		CornerRadius: cfg.RoundedCorners,
		Stroke:       cfg.Colors.CutStroke,
		StrokeWidth:  cfg.LineWidth,
		Fill:         &fill,
	}})

	if cfg.HalfBoard {
		s.Primitives = append(s.Primitives, Primitive{Line: &Line{
			X1:     0,
			Y1:     0,
			X2:     b.width,
			Y2:     0,
			Stroke: cfg.Colors.CutStroke,
			Width:  cfg.LineWidth,
		}})
	}
}

// emitGrid 生成一组平行的逻辑线：沿 step 轴从 start 开始每隔 spacing
// 放置一条，线体沿另一轴延伸 length。
func (b *Board) emitGrid(s *Sheet, start point, count int, spacing, length float64, step axis) {
	for i := 0; i < count; i++ {
		end := start
		if step == axisY {
			end.x += length
		} else {
			end.y += length
		}
		emitStrokes(s, start, end, step, b.cfg.MultipleLines, b.cfg.MultipleLinesSpacing,
			b.cfg.Colors.MarkStroke, b.cfg.LineWidth)
		if step == axisY {
			start.y += spacing
		} else {
			start.x += spacing
		}
	}
}

// emitStrokes 把一条逻辑线展开为 count 条平行笔画，沿 offsetAxis 偏移，
// 用于补偿激光切割的切缝宽度。偏移公式 (l - count/2)*gap 对偶数 count
// 不以零为中心，这是既有切割文件的输出约定，不能改成居中近似。
func emitStrokes(s *Sheet, start, end point, offsetAxis axis, count int, gap float64, stroke Color, width float64) {
	for l := 0; l < count; l++ {
		offset := (float64(l) - float64(count)/2) * gap
		a, z := start, end
		if offsetAxis == axisY {
			a.y += offset
			z.y += offset
		} else {
			a.x += offset
			z.x += offset
		}
		s.Primitives = append(s.Primitives, Primitive{Line: &Line{
			X1:     a.x,
			Y1:     a.y,
			X2:     z.x,
			Y2:     z.y,
			Stroke: stroke,
			Width:  width,
		}})
	}
}

// emitStars 生成星位。半盘时星位整体上移半盘的线数，移出图纸的星位
// 落在被丢弃的那一半，静默忽略。
func (b *Board) emitStars(s *Sheet, origin point) {
	cfg := b.cfg

	shift := 0
	if cfg.HalfBoard {
		shift = b.linesVertical - 1
	}

	for _, p := range cfg.StarPoints {
		gy := p.Y - shift
		if gy < 0 {
			continue
		}
		center := point{
			origin.x + float64(p.X)*cfg.SpacingHorizontal - cfg.MultipleLinesSpacing/2,
			origin.y + float64(gy)*cfg.SpacingVertical - cfg.MultipleLinesSpacing/2,
		}
		b.emitStarCircles(s, center)
	}
}

// emitStarCircles 把一个星位展开为多个同心圆。直径公式 (l - count)*gap
// 与 emitStrokes 的偏移公式采用不同的中心约定，同样按既有输出保留原样。
func (b *Board) emitStarCircles(s *Sheet, center point) {
	cfg := b.cfg
	for l := 0; l < cfg.MultipleLines; l++ {
		diameter := cfg.StarDiameter + float64(l-cfg.MultipleLines)*cfg.MultipleLinesSpacing
		s.Primitives = append(s.Primitives, Primitive{Circle: &Circle{
			CX:          center.x,
			CY:          center.y,
			R:           diameter / 2,
			Stroke:      cfg.Colors.MarkStroke,
			StrokeWidth: cfg.LineWidth,
		}})
	}
}
