package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/goban/board"
	"github.com/ByLCY/goban/renderer"
)

// 图元未给出线宽时使用的兜底线宽（mm）。
const defaultStrokeWidth = 0.2

// Format 指定序列化目标格式。
type Format int

const (
	SVG Format = iota
	PDF
)

// Renderer draws sheets via github.com/tdewolff/canvas.
type Renderer struct {
	format Format
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewSVG 创建输出 SVG 的渲染器。
func NewSVG() *Renderer { return &Renderer{format: SVG} }

// NewPDF 创建输出 PDF 的渲染器。
func NewPDF() *Renderer { return &Renderer{format: PDF} }

// Render 将图元序列按顺序绘制并序列化为所选格式的字节数据。
func (r *Renderer) Render(sheet *board.Sheet) ([]byte, error) {
	if sheet == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(sheet.Primitives) == 0 {
		return nil, fmt.Errorf("缺少可渲染的图元")
	}
	if sheet.Width <= 0 || sheet.Height <= 0 {
		return nil, fmt.Errorf("图纸尺寸无效: %g x %g", sheet.Width, sheet.Height)
	}

	c := canvas.New(sheet.Width, sheet.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与几何计算保持左上角为原点

	for i, p := range sheet.Primitives {
		if err := drawPrimitive(ctx, p); err != nil {
			return nil, fmt.Errorf("绘制第 %d 个图元失败: %w", i, err)
		}
	}

	var buf bytes.Buffer
	switch r.format {
	case PDF:
		writer := pdf.New(&buf, sheet.Width, sheet.Height, nil)
		writer.SetInfo(sheet.Title, "", "", "", "goban")
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	default:
		writer := svg.New(&buf, sheet.Width, sheet.Height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func drawPrimitive(ctx *canvas.Context, p board.Primitive) error {
	switch {
	case p.Rect != nil:
		drawRect(ctx, p.Rect)
	case p.Line != nil:
		drawLine(ctx, p.Line)
	case p.Circle != nil:
		drawCircle(ctx, p.Circle)
	default:
		return fmt.Errorf("图元为空")
	}
	return nil
}

// drawLine 绘制一条线段（毫米单位）。
func drawLine(ctx *canvas.Context, ln *board.Line) {
	w := ln.Width
	if w <= 0 {
		w = defaultStrokeWidth
	}
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(colorFromBoard(ln.Stroke))
	ctx.SetStrokeWidth(w)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(ln.X2-ln.X1, ln.Y2-ln.Y1)
	ctx.DrawPath(ln.X1, ln.Y1, p)
}

// drawRect 绘制矩形，CornerRadius > 0 时走圆角矩形路径。
func drawRect(ctx *canvas.Context, rc *board.Rect) {
	w := rc.StrokeWidth
	if w <= 0 {
		w = defaultStrokeWidth
	}
	if rc.Fill != nil {
		ctx.SetFillColor(colorFromBoard(*rc.Fill))
	} else {
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	}
	ctx.SetStrokeColor(colorFromBoard(rc.Stroke))
	ctx.SetStrokeWidth(w)
	path := canvas.Rectangle(rc.Width, rc.Height)
	if rc.CornerRadius > 0 {
		path = canvas.RoundedRectangle(rc.Width, rc.Height, rc.CornerRadius)
	}
	ctx.DrawPath(rc.X, rc.Y, path)
}

// drawCircle 绘制圆形。
func drawCircle(ctx *canvas.Context, c *board.Circle) {
	w := c.StrokeWidth
	if w <= 0 {
		w = defaultStrokeWidth
	}
	if c.Fill != nil {
		ctx.SetFillColor(colorFromBoard(*c.Fill))
	} else {
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	}
	ctx.SetStrokeColor(colorFromBoard(c.Stroke))
	ctx.SetStrokeWidth(w)
	ctx.DrawPath(c.CX-c.R, c.CY-c.R, canvas.Circle(c.R))
}

func colorFromBoard(c board.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
