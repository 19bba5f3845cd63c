package llm

import (
	log "log/slog"
	"os"
	"regexp"
	"strings"
)

var jsonArrayPattern = regexp.MustCompile(`\[[\s\S]*\]`)

func readPrompt(file string) string {
	if file == "" {
		return ""
	}
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "file", file, "err", err)
		return ""
	}
	return string(data)
}

// stripCodeFence 去掉模型常带的 ``` 或 ```json 包裹
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractJSONArray 取出文本中第一个 [ 到最后一个 ] 之间的内容
func extractJSONArray(s string) string {
	return jsonArrayPattern.FindString(s)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
