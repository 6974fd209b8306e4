package handlers

import "strconv"

// parsePositiveInt 宽松解析分页参数，缺失、非数字或非正数时返回默认值
func parsePositiveInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
