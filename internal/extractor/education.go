package extractor

import (
	"regexp"
	"strings"
)

// 学历/证书表述模式
var (
	// 学位及缩写，截取到句末或行末
	degreeRe = regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|doctorate|associate|diploma|certificate|b\.?s\.?|m\.?s\.?|m\.?a\.?|b\.?a\.?|m\.?b\.?a\.?|ph\.?d\.?)\b[^.\n]*`)

	// "degree/certification in X" 形式
	degreeInRe = regexp.MustCompile(`(?i)\b(?:degree|certification|certificate)\s+in\s+[^.\n]*`)

	// 岗位侧：正文任意位置的学历提及
	reqDegreeAnywhereRe = regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|doctorate|degree|diploma|certificate)\b[^.\n]*`)

	// 岗位侧："required/preferred education" 表述
	reqEduPhrasingRe = regexp.MustCompile(`(?i)(?:required|preferred)\s*(?:education|qualification)[^.\n]*`)
)

// extractCandidateEducation 抽取简历中的教育信息：
// 定位教育章节后在其中应用学历模式，每个命中片段成为一条记录
func extractCandidateEducation(sourceText string) []string {
	section := captureSection(sourceText, eduSectionHeaderRe)
	if section == "" {
		return nil
	}

	var mentions []string
	for _, pattern := range []*regexp.Regexp{degreeRe, degreeInRe} {
		for _, match := range pattern.FindAllString(section, -1) {
			mentions = append(mentions, NormalizeText(match))
		}
	}
	return dedupeMentions(mentions)
}

// extractRequirementEducation 抽取岗位描述中的学历要求，
// 比简历侧更宽：章节内容整体算一条要求，正文任意位置的学历提及
// 以及 required/preferred education 表述也各算一条
func extractRequirementEducation(sourceText, normalizedText string) []string {
	var mentions []string

	if section := captureSection(sourceText, reqEduSectionHeaderRe); section != "" {
		mentions = append(mentions, NormalizeText(section))
	}

	for _, pattern := range []*regexp.Regexp{reqDegreeAnywhereRe, reqEduPhrasingRe} {
		for _, match := range pattern.FindAllString(normalizedText, -1) {
			if m := strings.TrimSpace(match); m != "" {
				mentions = append(mentions, m)
			}
		}
	}
	return dedupeMentions(mentions)
}

// dedupeMentions 去重并保持首次出现的顺序
func dedupeMentions(mentions []string) []string {
	seen := make(map[string]struct{}, len(mentions))
	var out []string
	for _, m := range mentions {
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
