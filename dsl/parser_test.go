package dsl

import (
	"strings"
	"testing"
)

const sampleDef = `
// 示例：15 路自定义棋盘
board Custom15 {
  lines: 15 15
  spacing: 22mm 23.7mm
  stars: (3,3) (11,3) (7,7)
  colors: { cut: #000000 mark: #f00 }
}

board Mini {
  lines: 5 5
}
`

func TestParseSample(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleDef))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(f.Boards) != 2 {
		t.Fatalf("期望 2 个棋盘定义，实际 %d", len(f.Boards))
	}

	b := f.Boards[0]
	if b.Name != "Custom15" {
		t.Fatalf("名称错误: %q", b.Name)
	}
	if len(b.Entries) != 4 {
		t.Fatalf("期望 4 个配置项，实际 %d", len(b.Entries))
	}

	lines := b.Entries[0]
	if lines.Key != "lines" || len(lines.Values) != 2 {
		t.Fatalf("lines 解析错误: %+v", lines)
	}
	if lines.Values[0].Number == nil || *lines.Values[0].Number != "15" {
		t.Fatalf("lines 取值错误: %+v", lines.Values[0])
	}

	spacing := b.Entries[1]
	if spacing.Values[1].Number == nil || *spacing.Values[1].Number != "23.7mm" {
		t.Fatalf("带单位的数值应保留后缀: %+v", spacing.Values[1])
	}

	stars := b.Entries[2]
	if len(stars.Values) != 3 || stars.Values[0].Pair == nil {
		t.Fatalf("stars 解析错误: %+v", stars)
	}
	if stars.Values[1].Pair.X != 11 || stars.Values[1].Pair.Y != 3 {
		t.Fatalf("格点坐标错误: %+v", stars.Values[1].Pair)
	}

	colors := b.Entries[3]
	if len(colors.Values) != 1 || colors.Values[0].Object == nil {
		t.Fatalf("colors 应为嵌套块: %+v", colors)
	}
	obj := colors.Values[0].Object
	if len(obj.Entries) != 2 || obj.Entries[1].Values[0].Color == nil {
		t.Fatalf("颜色块解析错误: %+v", obj)
	}
	if *obj.Entries[1].Values[0].Color != "#f00" {
		t.Fatalf("三位十六进制颜色应原样保留: %q", *obj.Entries[1].Values[0].Color)
	}
}

func TestFind(t *testing.T) {
	f, err := ParseString(sampleDef)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if def := f.Find("Mini"); def == nil || def.Name != "Mini" {
		t.Fatalf("Find 未命中已存在的定义")
	}
	if def := f.Find("nope"); def != nil {
		t.Fatalf("Find 不应命中不存在的定义")
	}
}

func TestParseComments(t *testing.T) {
	text := `
# 井号注释
/* 块注释 */
board C { // 行尾注释
  lines: 9 9
}
`
	f, err := ParseString(text)
	if err != nil {
		t.Fatalf("含注释的定义解析失败: %v", err)
	}
	if len(f.Boards) != 1 || f.Boards[0].Name != "C" {
		t.Fatalf("解析结果错误: %+v", f.Boards)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseString(`board { lines: 9 9 }`); err == nil {
		t.Fatalf("缺少名称的定义应当失败")
	}
	if _, err := ParseString(`lines: 9 9`); err == nil {
		t.Fatalf("缺少 board 块的内容应当失败")
	}
}
