package extractor

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	charFilterRe = regexp.MustCompile(`[^\w\s.,()\-+#]`)
)

// NormalizeText 对解码后的原始文本做确定性归一化：
// 全部小写，空白序列折叠为单个空格，
// 过滤掉字母数字、空白和 . , ( ) - + # 之外的字符
// 相同输入必然产出字节级相同的输出
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = charFilterRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
