package parser

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrUnsupportedFormat = errors.New("不支持的文档格式")
	ErrDecodeFailed      = errors.New("文档解码失败")
)

// ParseError 包含详细信息的文档解析错误
type ParseError struct {
	Filename string
	Op       string
	BaseErr  error
	Detail   string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Filename, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Filename)
}

func (e *ParseError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ParseError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewUnsupportedFormatError(filename, detail string) error {
	return &ParseError{
		Filename: filename,
		Op:       "detect",
		BaseErr:  ErrUnsupportedFormat,
		Detail:   detail,
	}
}

func NewDecodeError(filename, op, detail string) error {
	return &ParseError{
		Filename: filename,
		Op:       op,
		BaseErr:  ErrDecodeFailed,
		Detail:   detail,
	}
}
