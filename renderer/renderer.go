package renderer

import "github.com/ByLCY/goban/board"

// Renderer 将几何结果序列化为最终文件内容，例如 SVG 或 PDF。
// Render 返回生成的二进制数据（例如 SVG 字节切片）以及可能的错误。
type Renderer interface {
	Render(sheet *board.Sheet) ([]byte, error)
}
