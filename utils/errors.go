package utils

// ValidationError 参数错误（缺少字段、格式不合法、库存不足等）
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError 资源不存在错误
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError 唯一字段冲突错误（目前仅品牌名称）
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewValidationError 创建参数错误
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NewNotFoundError 创建资源不存在错误
func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// NewConflictError 创建冲突错误
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}
