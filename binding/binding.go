package binding

import (
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${key} 替换为 values 中对应的值，
// 用于输出文件名模板（例如 "goban-${size}.${format}"）。
// 若 values 为空或键不存在，则保留原占位符。
func Interpolate(text string, values map[string]string) string {
	if len(values) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		key := strings.TrimSpace(groups[1])
		if key == "" {
			return match
		}
		if val, ok := values[key]; ok {
			return val
		}
		return match
	})
}
