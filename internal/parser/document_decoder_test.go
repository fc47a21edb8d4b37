package parser

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPDFExtractor 测试用PDF提取器
type mockPDFExtractor struct {
	text string
	err  error
}

func (m *mockPDFExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, error) {
	return m.text, m.err
}

// buildDOCX 在内存中构造一个最小的 DOCX 容器
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// TestDetectFormatSniff 无扩展名时按文件头魔数嗅探
func TestDetectFormatSniff(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expected Format
	}{
		{"PDF魔数", []byte("%PDF-1.7 rest of file"), FormatPDF},
		{"zip魔数", []byte("PK\x03\x04rest"), FormatDOCX},
		{"合法UTF-8文本", []byte("plain resume text"), FormatTXT},
		{"非法UTF-8字节", []byte{0xff, 0xfe, 0x00, 0xba}, FormatUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectFormat(tc.data, "resume"))
		})
	}
}

// TestDetectFormatExtensionOverride 扩展名优先于内容嗅探
func TestDetectFormatExtensionOverride(t *testing.T) {
	// 内容嗅探为TXT，但扩展名声明为PDF
	assert.Equal(t, FormatPDF, DetectFormat([]byte("not really a pdf"), "resume.pdf"))
	assert.Equal(t, FormatDOCX, DetectFormat([]byte("plain text"), "resume.DOCX"))
	assert.Equal(t, FormatTXT, DetectFormat([]byte("%PDF-1.7"), "resume.txt"))
	// 未知扩展名不覆盖嗅探结果
	assert.Equal(t, FormatPDF, DetectFormat([]byte("%PDF-1.7"), "resume.dat"))
}

// TestDecodeTextTXT 纯文本直接透传
func TestDecodeTextTXT(t *testing.T) {
	decoder, err := NewDocumentDecoder(context.Background(), WithPDFExtractor(&mockPDFExtractor{}))
	require.NoError(t, err)

	text, err := decoder.DecodeText(context.Background(), []byte("hello resume"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello resume", text)
}

// TestDecodeTextTXTInvalidUTF8 声明为txt但字节非UTF-8时返回解码错误
func TestDecodeTextTXTInvalidUTF8(t *testing.T) {
	decoder, err := NewDocumentDecoder(context.Background(), WithPDFExtractor(&mockPDFExtractor{}))
	require.NoError(t, err)

	_, err = decoder.DecodeText(context.Background(), []byte{0xff, 0xfe, 0x00}, "resume.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

// TestDecodeTextPDF PDF分支委托给注入的提取器
func TestDecodeTextPDF(t *testing.T) {
	decoder, err := NewDocumentDecoder(context.Background(),
		WithPDFExtractor(&mockPDFExtractor{text: "pdf body text"}))
	require.NoError(t, err)

	text, err := decoder.DecodeText(context.Background(), []byte("%PDF-1.7 ..."), "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf body text", text)
}

// TestDecodeTextPDFFailure 提取器失败时包装为解码错误
func TestDecodeTextPDFFailure(t *testing.T) {
	decoder, err := NewDocumentDecoder(context.Background(),
		WithPDFExtractor(&mockPDFExtractor{err: errors.New("损坏的交叉引用表")}))
	require.NoError(t, err)

	_, err = decoder.DecodeText(context.Background(), []byte("%PDF-1.7 broken"), "resume.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

// TestDecodeTextDOCX 从内存构造的DOCX中提取段落文本
func TestDecodeTextDOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Smith</w:t></w:r></w:p>
    <w:p><w:r><w:t>Skills: </w:t></w:r><w:r><w:t>Python, Go</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := buildDOCX(t, docXML)

	decoder, err := NewDocumentDecoder(context.Background(), WithPDFExtractor(&mockPDFExtractor{}))
	require.NoError(t, err)

	text, err := decoder.DecodeText(context.Background(), data, "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "John Smith\n")
	assert.Contains(t, text, "Skills: Python, Go\n")
}

// TestDecodeTextDOCXMissingDocument 缺少正文部件的zip返回解码错误
func TestDecodeTextDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	decoder, err := NewDocumentDecoder(context.Background(), WithPDFExtractor(&mockPDFExtractor{}))
	require.NoError(t, err)

	_, err = decoder.DecodeText(context.Background(), buf.Bytes(), "resume.docx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

// TestDecodeTextUnsupportedFormat 无法识别的格式返回不支持错误
func TestDecodeTextUnsupportedFormat(t *testing.T) {
	decoder, err := NewDocumentDecoder(context.Background(), WithPDFExtractor(&mockPDFExtractor{}))
	require.NoError(t, err)

	_, err = decoder.DecodeText(context.Background(), []byte{0x00, 0xff, 0xfe}, "resume.bin")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "resume.bin", parseErr.Filename)
}
