package models

import "strings"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// LikePattern 生成不区分大小写的子串匹配模式，配合 `LOWER(col) LIKE ? ESCAPE '!'` 使用。
// 用户输入中的 % 和 _ 按字面量处理。
func LikePattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
}
