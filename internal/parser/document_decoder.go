package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"resume-screener-go/internal/constants"
)

// Format 已识别的文档格式
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatTXT     Format = "txt"
	FormatUnknown Format = ""
)

// PDFTextExtractor PDF文本提取接口，便于在测试中替换实现
type PDFTextExtractor interface {
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, error)
}

// DocumentDecoder 统一的文档解码入口：格式识别 + 按格式提取纯文本
type DocumentDecoder struct {
	pdfExtractor PDFTextExtractor
	logger       *log.Logger
}

// DecoderOption 解码器的配置选项
type DecoderOption func(*DocumentDecoder)

// WithPDFExtractor 注入自定义PDF提取实现
func WithPDFExtractor(extractor PDFTextExtractor) DecoderOption {
	return func(d *DocumentDecoder) {
		d.pdfExtractor = extractor
	}
}

// WithDecoderLogger 配置自定义日志记录器
func WithDecoderLogger(logger *log.Logger) DecoderOption {
	return func(d *DocumentDecoder) {
		d.logger = logger
	}
}

// NewDocumentDecoder 创建文档解码器，默认使用 Eino PDF 提取器
func NewDocumentDecoder(ctx context.Context, options ...DecoderOption) (*DocumentDecoder, error) {
	decoder := &DocumentDecoder{
		logger: log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(decoder)
	}

	if decoder.pdfExtractor == nil {
		pdfExtractor, err := NewEinoPDFTextExtractor(ctx, WithEinoLogger(decoder.logger))
		if err != nil {
			return nil, fmt.Errorf("创建PDF提取器失败: %w", err)
		}
		decoder.pdfExtractor = pdfExtractor
	}
	return decoder, nil
}

// DetectFormat 识别文档格式：优先内容嗅探，文件扩展名可覆盖嗅探结果
// 扩展名明确声明受支持的格式时以扩展名为准
func DetectFormat(data []byte, filename string) Format {
	format := sniffFormat(data)

	switch strings.ToLower(filepath.Ext(filename)) {
	case constants.ExtPDF:
		format = FormatPDF
	case constants.ExtDOCX:
		format = FormatDOCX
	case constants.ExtTXT:
		format = FormatTXT
	}
	return format
}

// sniffFormat 按文件头魔数嗅探格式
func sniffFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return FormatPDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		// zip 容器，DOCX 是受支持格式中唯一的 zip 封装
		return FormatDOCX
	case utf8.Valid(data):
		return FormatTXT
	default:
		return FormatUnknown
	}
}

// DecodeText 将原始字节解码为纯文本
// 格式不受支持返回 ErrUnsupportedFormat；字节流与声明格式不符返回 ErrDecodeFailed
func (d *DocumentDecoder) DecodeText(ctx context.Context, data []byte, filename string) (string, error) {
	format := DetectFormat(data, filename)

	switch format {
	case FormatPDF:
		text, err := d.pdfExtractor.ExtractTextFromBytes(ctx, data, filename)
		if err != nil {
			return "", NewDecodeError(filename, "pdf", err.Error())
		}
		return text, nil

	case FormatDOCX:
		text, err := ExtractTextFromDOCX(data)
		if err != nil {
			return "", NewDecodeError(filename, "docx", err.Error())
		}
		return text, nil

	case FormatTXT:
		if !utf8.Valid(data) {
			return "", NewDecodeError(filename, "txt", "文本不是合法的UTF-8编码")
		}
		return string(data), nil

	default:
		return "", NewUnsupportedFormatError(filename, "仅支持 PDF (.pdf)、Word (.docx) 和文本 (.txt) 文件")
	}
}
