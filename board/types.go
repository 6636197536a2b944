package board

// 该文件定义几何计算结果与绘制图元，供几何计算、渲染与调试 JSON 共用。

// Sheet 保存一张图纸的整体尺寸与全部绘制图元（单位均为 mm）。
type Sheet struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Title      string      `json:"title,omitempty"`
	Primitives []Primitive `json:"primitives"`
}

// Primitive 是绘制图元的联合类型，三个字段有且仅有一个非空。
// 图元按切片顺序绘制，顺序只影响视觉叠放，不影响几何正确性。
type Primitive struct {
	Rect   *Rect   `json:"rect,omitempty"`
	Line   *Line   `json:"line,omitempty"`
	Circle *Circle `json:"circle,omitempty"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Line 表示一条线段。
type Line struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Stroke Color   `json:"stroke"`
	Width  float64 `json:"width"` // 线宽（mm），<=0 时由渲染器给默认值
}

// Rect 表示一个矩形，CornerRadius > 0 时四角按该半径倒圆。
type Rect struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`
	Stroke       Color   `json:"stroke"`
	StrokeWidth  float64 `json:"strokeWidth"`    // mm
	Fill         *Color  `json:"fill,omitempty"` // 为空表示不填充
}

// Circle 表示一个圆。
type Circle struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	Stroke      Color   `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"` // mm
	Fill        *Color  `json:"fill,omitempty"`
}

// point 是几何计算内部使用的二维坐标（mm）。
type point struct {
	x, y float64
}

// axis 标识偏移或步进所沿的坐标轴。
type axis int

const (
	axisX axis = iota
	axisY
)
