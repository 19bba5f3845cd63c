package util

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// SplitTechstack 接受逗号分隔的字符串或字符串数组，去空白去空项
func SplitTechstack(raw json.RawMessage) []string {
	var items []string
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		items = strings.Split(s, ",")
	} else {
		var list []any
		if err = json.Unmarshal(raw, &list); err != nil {
			return []string{}
		}
		for _, v := range list {
			items = append(items, fmt.Sprint(v))
		}
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

// ParseFlexibleInt 数字或数字字符串都可以，"5 questions" 这类取前导数字
func ParseFlexibleInt(raw json.RawMessage) (int, bool) {
	if t := strings.TrimSpace(string(raw)); t == "" || t == "null" {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && s[end] == '-') {
		end++
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// PickOne 随机取一个元素
func PickOne(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.IntN(len(list))]
}
