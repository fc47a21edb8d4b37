package extractor

import (
	"regexp"
	"strconv"
)

// candidateExperiencePatterns 简历侧的年限表述
var candidateExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience[:\s]*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*(?:the\s*)?field`),
	regexp.MustCompile(`over\s*(\d+)\s*years?`),
	regexp.MustCompile(`more than\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\+\s*years?`),
}

// requirementExperiencePatterns 岗位侧的年限表述（最低要求/必须具备等）
var requirementExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:minimum|at least|requires?)\s*(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience\s*(?:required|needed|preferred)`),
	regexp.MustCompile(`experience[:\s]*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*(?:the\s*)?(?:field|industry|role)`),
	regexp.MustCompile(`must have\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+\s*years?`),
}

// extractExperienceYears 在归一化文本上依次应用年限模式，
// 汇总所有命中的整数并取最大值："任何位置提到的更大年限获胜"
// 没有任何命中时返回 nil
func extractExperienceYears(normalizedText string, patterns []*regexp.Regexp) *int {
	var years []int
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringSubmatch(normalizedText, -1) {
			if len(match) < 2 {
				continue
			}
			n, err := strconv.Atoi(match[1])
			if err != nil || n < 0 {
				continue
			}
			years = append(years, n)
		}
	}
	if len(years) == 0 {
		return nil
	}

	max := years[0]
	for _, y := range years[1:] {
		if y > max {
			max = y
		}
	}
	return &max
}
