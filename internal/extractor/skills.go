package extractor

import (
	"regexp"
	"sort"
	"strings"

	"resume-screener-go/internal/constants"
)

// skillVocabularies 固定顺序的技能词表：
// 编程语言、Web框架、数据存储、云/DevOps、ML/AI、研发流程、前端、操作系统/查询语言
var skillVocabularies = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:python|java|javascript|c\+\+|c#|php|ruby|go|rust|swift|kotlin|scala)\b`),
	regexp.MustCompile(`(?i)\b(?:react|angular|vue|node\.?js|express|django|flask|spring|laravel)\b`),
	regexp.MustCompile(`(?i)\b(?:mysql|postgresql|mongodb|redis|elasticsearch|cassandra)\b`),
	regexp.MustCompile(`(?i)\b(?:aws|azure|gcp|docker|kubernetes|jenkins|git|terraform)\b`),
	regexp.MustCompile(`(?i)\b(?:machine learning|artificial intelligence|data science|deep learning)\b`),
	regexp.MustCompile(`(?i)\b(?:agile|scrum|devops|ci/cd|microservices|rest api|graphql)\b`),
	regexp.MustCompile(`(?i)\b(?:html|css|sass|less|bootstrap|tailwind|jquery|typescript)\b`),
	regexp.MustCompile(`(?i)\b(?:linux|windows|unix|macos|bash|powershell|sql|nosql)\b`),
}

// extractSkills 抽取技能集合：
// 词表正则在归一化文本上取并集，再加上技能章节切分出的 token，
// 统一小写去重后按字典序返回
func extractSkills(normalizedText, sourceText string) []string {
	set := make(map[string]struct{})

	for _, vocab := range skillVocabularies {
		for _, match := range vocab.FindAllString(normalizedText, -1) {
			addSkill(set, match)
		}
	}

	if section := captureSection(sourceText, skillsSectionHeaderRe); section != "" {
		for _, token := range splitSectionTokens(section) {
			if len(token) >= constants.MinSkillTokenLen && len(token) <= constants.MaxSkillTokenLen {
				addSkill(set, token)
			}
		}
	}

	return sortedSkillSlice(set)
}

func addSkill(set map[string]struct{}, skill string) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill != "" {
		set[skill] = struct{}{}
	}
}

func sortedSkillSlice(set map[string]struct{}) []string {
	skills := make([]string, 0, len(set))
	for s := range set {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
