package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/goban/binding"
	"github.com/ByLCY/goban/board"
	"github.com/ByLCY/goban/dsl"
	"github.com/ByLCY/goban/renderer"
	canvasrenderer "github.com/ByLCY/goban/renderer/canvas"
)

// 默认输出文件名；--test 时换用校准样片的默认名。
const (
	defaultOutput     = "goban.svg"
	defaultTestOutput = "test.svg"
)

type options struct {
	size           string
	halfBoard      bool
	output         string
	test           bool
	noBorder       bool
	roundedCorners float64
	margin         float64
	boardFile      string
	format         string
	debugPath      string

	// 记录哪些覆盖项被显式传入，自定义棋盘定义只接受显式覆盖。
	set map[string]bool
}

func main() {
	var opt options
	flag.StringVar(&opt.size, "size", "13", "棋盘尺寸（可选："+strings.Join(board.Sizes(), ", ")+"；配合 --board 时为定义名）")
	flag.StringVar(&opt.size, "s", "13", "--size 的简写")
	flag.BoolVar(&opt.halfBoard, "half_board", false, "生成沿中线切开的半盘")
	flag.StringVar(&opt.output, "output", "", "输出文件名，支持 ${size}/${kind}/${format} 占位符")
	flag.StringVar(&opt.output, "o", "", "--output 的简写")
	flag.BoolVar(&opt.test, "test", false, "生成激光切割线距校准样片而不是棋盘")
	flag.BoolVar(&opt.noBorder, "no_border", false, "不绘制棋盘外框")
	flag.Float64Var(&opt.roundedCorners, "rounded_corners", board.DefaultRoundedCorners, "圆角半径（mm），0 表示直角")
	flag.Float64Var(&opt.margin, "margin", board.DefaultMargin, "线到板边的边距（mm）")
	flag.Float64Var(&opt.margin, "m", board.DefaultMargin, "--margin 的简写")
	flag.StringVar(&opt.boardFile, "board", "", "自定义棋盘定义文件（.goban）")
	flag.StringVar(&opt.format, "format", "", "输出格式：svg 或 pdf（默认根据输出文件扩展名推断）")
	flag.StringVar(&opt.debugPath, "debug", "", "几何调试 JSON 输出路径")
	flag.Parse()

	opt.set = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })

	outPath, err := run(opt, newRenderer)
	if err != nil {
		log.Fatalf("生成失败: %v", err)
	}
	fmt.Printf("已生成：%s\n", outPath)
}

func newRenderer(f canvasrenderer.Format) renderer.Renderer {
	if f == canvasrenderer.PDF {
		return canvasrenderer.NewPDF()
	}
	return canvasrenderer.NewSVG()
}

// run 串联配置组装、几何计算与渲染，返回实际写入的文件路径。
func run(opt options, newRenderer func(canvasrenderer.Format) renderer.Renderer) (string, error) {
	cfg, err := buildConfig(opt)
	if err != nil {
		return "", err
	}
	for _, w := range cfg.Warnings() {
		log.Printf("警告：%s", w)
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	var sheet *board.Sheet
	kind := "goban"
	if opt.test {
		sheet = board.CalibrationSheet(cfg)
		kind = "test"
	} else {
		b, err := board.NewBoard(cfg)
		if err != nil {
			return "", err
		}
		sheet = b.Build()
	}

	if opt.debugPath != "" {
		if err := board.WriteDebugJSON(sheet, opt.debugPath); err != nil {
			return "", fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	output := opt.output
	if output == "" {
		output = defaultOutput
		if opt.test {
			output = defaultTestOutput
		}
	}
	format, formatName, err := resolveFormat(opt.format, output)
	if err != nil {
		return "", err
	}
	output = binding.Interpolate(output, map[string]string{
		"size":   cfg.Name,
		"kind":   kind,
		"format": formatName,
	})

	data, err := newRenderer(format).Render(sheet)
	if err != nil {
		return "", fmt.Errorf("渲染失败: %w", err)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return "", fmt.Errorf("写入输出文件失败: %w", err)
	}
	return output, nil
}

// buildConfig 组装一次运行的配置：内置尺寸或自定义定义，加上命令行覆盖。
func buildConfig(opt options) (board.Config, error) {
	var (
		cfg board.Config
		err error
	)
	if opt.boardFile != "" {
		cfg, err = loadBoardFile(opt.boardFile, opt)
	} else {
		cfg, err = board.SizeConfig(opt.size)
	}
	if err != nil {
		return board.Config{}, err
	}

	cfg.HalfBoard = opt.halfBoard
	cfg.DrawBorder = !opt.noBorder
	// 内置尺寸总是应用覆盖值（与默认值一致时无影响）；
	// 自定义定义只接受显式传入的覆盖，避免默认值踩掉文件里的设置。
	if opt.boardFile == "" || opt.set["rounded_corners"] {
		cfg.RoundedCorners = opt.roundedCorners
	}
	if opt.boardFile == "" || opt.set["margin"] || opt.set["m"] {
		cfg.Margin = opt.margin
	}
	return cfg, nil
}

// loadBoardFile 解析 .goban 定义文件。文件含多个定义时用 --size 选择名称，
// 否则取第一个。
func loadBoardFile(path string, opt options) (board.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return board.Config{}, fmt.Errorf("无法打开棋盘定义文件 %s: %w", path, err)
	}
	defer file.Close()

	parsed, err := dsl.Parse(file)
	if err != nil {
		return board.Config{}, fmt.Errorf("解析棋盘定义失败: %w", err)
	}
	if len(parsed.Boards) == 0 {
		return board.Config{}, fmt.Errorf("棋盘定义文件 %s 中没有 board 定义", path)
	}

	def := parsed.Boards[0]
	if opt.set["size"] || opt.set["s"] {
		if def = parsed.Find(opt.size); def == nil {
			return board.Config{}, fmt.Errorf("棋盘定义文件 %s 中没有名为 %q 的定义", path, opt.size)
		}
	}
	return board.CustomConfig(def)
}

// resolveFormat 根据 --format 或输出文件扩展名确定序列化格式。
func resolveFormat(explicit, output string) (canvasrenderer.Format, string, error) {
	name := strings.ToLower(strings.TrimSpace(explicit))
	if name == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".pdf":
			name = "pdf"
		default:
			name = "svg"
		}
	}
	switch name {
	case "svg":
		return canvasrenderer.SVG, name, nil
	case "pdf":
		return canvasrenderer.PDF, name, nil
	default:
		return canvasrenderer.SVG, "", fmt.Errorf("不支持的输出格式 %q（可选：svg, pdf）", explicit)
	}
}
