package extractor

import (
	"regexp"
	"strings"
)

// 章节头关键字，锚定在行首匹配；长词在前避免被短前缀截胡
var (
	skillsSectionHeaderRe = regexp.MustCompile(`(?i)^(?:technical skills?|core competencies|skills?):?\s*(.*)$`)
	eduSectionHeaderRe    = regexp.MustCompile(`(?i)^(?:academic background|qualifications|education):?\s*(.*)$`)
	reqEduSectionHeaderRe = regexp.MustCompile(`(?i)^(?:qualifications|requirements|education):?\s*(.*)$`)
)

// 章节 token 的分隔符
var sectionSeparatorRe = regexp.MustCompile(`[,;|\n•·\-*]`)

// captureSection 在保留换行结构的原始文本中定位章节：
// 找到第一个行首命中章节头的行，从该行冒号之后开始截取，
// 直到下一个空行、下一个以大写字母开头的行或文本结尾
func captureSection(text string, headerRe *regexp.Regexp) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	start := -1
	var firstFragment string
	for i, line := range lines {
		if m := headerRe.FindStringSubmatch(line); m != nil {
			start = i
			firstFragment = m[1]
			break
		}
	}
	if start == -1 {
		return ""
	}

	captured := []string{firstFragment}
	for _, line := range lines[start+1:] {
		if strings.TrimSpace(line) == "" {
			break
		}
		if line[0] >= 'A' && line[0] <= 'Z' {
			break
		}
		captured = append(captured, line)
	}

	return strings.TrimSpace(strings.Join(captured, "\n"))
}

// splitSectionTokens 将章节内容按分隔符切分为候选 token
func splitSectionTokens(section string) []string {
	parts := sectionSeparatorRe.Split(section, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
