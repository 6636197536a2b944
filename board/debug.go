package board

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将几何结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(s *Sheet, path string) error {
	if s == nil {
		return nil
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
