package board

import (
	"strconv"

	"github.com/ByLCY/goban/dsl"
)

// CustomConfig 将一个 .goban 定义转换为配置。未出现的键保持默认值，
// 未知的键视为致命配置错误。
func CustomConfig(def *dsl.BoardDef) (Config, error) {
	if def == nil {
		return Config{}, configErrorf("棋盘定义为空")
	}
	cfg := defaultConfig(def.Name)
	// 自定义棋盘必须显式给出线数。
	cfg.LinesHorizontal = 0
	cfg.LinesVertical = 0

	for _, e := range def.Entries {
		if e == nil {
			continue
		}
		if err := applyEntry(&cfg, e); err != nil {
			return Config{}, err
		}
	}

	if cfg.LinesHorizontal == 0 || cfg.LinesVertical == 0 {
		return Config{}, configErrorf("棋盘 %s 缺少 lines 定义", def.Name)
	}
	return cfg, nil
}

func applyEntry(cfg *Config, e *dsl.Entry) error {
	switch e.Key {
	case "lines":
		h, v, err := entryIntPair(e)
		if err != nil {
			return err
		}
		cfg.LinesHorizontal = h
		cfg.LinesVertical = v
	case "spacing":
		ls, err := entryLengths(e, 1, 2)
		if err != nil {
			return err
		}
		cfg.SpacingHorizontal = ls[0].ToMM()
		cfg.SpacingVertical = ls[len(ls)-1].ToMM()
	case "margin":
		l, err := entryLength(e)
		if err != nil {
			return err
		}
		cfg.Margin = l.ToMM()
	case "corners":
		l, err := entryLength(e)
		if err != nil {
			return err
		}
		cfg.RoundedCorners = l.ToMM()
	case "linewidth":
		l, err := entryLength(e)
		if err != nil {
			return err
		}
		cfg.LineWidth = l.ToMM()
	case "star-diameter":
		l, err := entryLength(e)
		if err != nil {
			return err
		}
		cfg.StarDiameter = l.ToMM()
	case "strokes":
		if len(e.Values) != 2 || e.Values[0].Number == nil || e.Values[1].Number == nil {
			return configErrorf("strokes 需要两个值：笔画数与间距（第 %d 行）", e.Pos.Line)
		}
		count, err := strconv.Atoi(*e.Values[0].Number)
		if err != nil {
			return configErrorf("strokes 的笔画数必须是整数：%q", *e.Values[0].Number)
		}
		gap, err := ParseLength(*e.Values[1].Number)
		if err != nil {
			return configErrorf("strokes 的间距无效：%v", err)
		}
		cfg.MultipleLines = count
		cfg.MultipleLinesSpacing = gap.ToMM()
	case "stars":
		cfg.StarPoints = cfg.StarPoints[:0]
		for _, v := range e.Values {
			if v.Pair == nil {
				return configErrorf("stars 只接受 (x,y) 格点坐标（第 %d 行）", e.Pos.Line)
			}
			cfg.StarPoints = append(cfg.StarPoints, GridPoint{X: v.Pair.X, Y: v.Pair.Y})
		}
	case "colors":
		if len(e.Values) != 1 || e.Values[0].Object == nil {
			return configErrorf("colors 需要一个 { cut/mark/background } 块（第 %d 行）", e.Pos.Line)
		}
		if err := applyColors(&cfg.Colors, e.Values[0].Object); err != nil {
			return err
		}
	default:
		return configErrorf("未知的配置键 %q（第 %d 行）", e.Key, e.Pos.Line)
	}
	return nil
}

func applyColors(colors *Colors, obj *dsl.Object) error {
	for _, e := range obj.Entries {
		if e == nil {
			continue
		}
		if len(e.Values) != 1 || e.Values[0].Color == nil {
			return configErrorf("颜色 %s 需要一个十六进制颜色值（第 %d 行）", e.Key, e.Pos.Line)
		}
		c, err := parseHexColor(*e.Values[0].Color)
		if err != nil {
			return err
		}
		switch e.Key {
		case "cut":
			colors.CutStroke = c
		case "mark":
			colors.MarkStroke = c
		case "background":
			colors.Background = c
		default:
			return configErrorf("未知的颜色键 %q（第 %d 行）", e.Key, e.Pos.Line)
		}
	}
	return nil
}

// parseHexColor 解析 #rgb 与 #rrggbb 两种写法。
func parseHexColor(s string) (Color, error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, configErrorf("颜色值 %q 格式无效", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, configErrorf("颜色值 %q 格式无效", s)
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

func entryIntPair(e *dsl.Entry) (int, int, error) {
	if len(e.Values) != 2 || e.Values[0].Number == nil || e.Values[1].Number == nil {
		return 0, 0, configErrorf("%s 需要两个整数（第 %d 行）", e.Key, e.Pos.Line)
	}
	a, err1 := strconv.Atoi(*e.Values[0].Number)
	b, err2 := strconv.Atoi(*e.Values[1].Number)
	if err1 != nil || err2 != nil {
		return 0, 0, configErrorf("%s 的取值必须是整数（第 %d 行）", e.Key, e.Pos.Line)
	}
	return a, b, nil
}

func entryLength(e *dsl.Entry) (Length, error) {
	ls, err := entryLengths(e, 1, 1)
	if err != nil {
		return Length{}, err
	}
	return ls[0], nil
}

func entryLengths(e *dsl.Entry, min, max int) ([]Length, error) {
	if len(e.Values) < min || len(e.Values) > max {
		return nil, configErrorf("%s 需要 %d~%d 个长度值（第 %d 行）", e.Key, min, max, e.Pos.Line)
	}
	ls := make([]Length, 0, len(e.Values))
	for _, v := range e.Values {
		if v.Number == nil {
			return nil, configErrorf("%s 只接受长度值（第 %d 行）", e.Key, e.Pos.Line)
		}
		l, err := ParseLength(*v.Number)
		if err != nil {
			return nil, configErrorf("%s 的取值无效：%v", e.Key, err)
		}
		ls = append(ls, l)
	}
	return ls, nil
}
