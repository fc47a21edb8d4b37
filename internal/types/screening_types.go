package types

// DocumentFacts 从单份文档中抽取出的结构化事实
// 候选人简历与岗位描述复用同一结构：对岗位文档而言，
// Skills 表示"要求技能"，EducationMentions 表示"学历要求"
type DocumentFacts struct {
	// 技能集合（已去重、小写、去除首尾空白）
	Skills []string `json:"skills"`

	// 工作年限，nil 表示文本中未匹配到年限，不会为负数
	ExperienceYears *int `json:"experience_years"`

	// 学历/教育相关片段，按抽取顺序排列
	EducationMentions []string `json:"education_mentions"`

	// 归一化后的全文，用于语义相似度计算
	NormalizedText string `json:"-"`
}

// SkillSet 将技能切片转换为集合形式，便于做交并集运算
func (f *DocumentFacts) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.Skills))
	for _, s := range f.Skills {
		set[s] = struct{}{}
	}
	return set
}

// ScoreBreakdown 各维度的子分数，均为 [0,100] 区间、保留两位小数
// 一旦计算完成即不再修改
type ScoreBreakdown struct {
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
	SemanticScore   float64 `json:"semantic_score"`
}

// ScreeningResult 一次筛选的完整结果
type ScreeningResult struct {
	// 加权总分，[0,100]，保留两位小数
	OverallPercentage float64 `json:"overall_match_percentage"`

	// 各维度分数明细
	Breakdown ScoreBreakdown `json:"breakdown"`

	// 依据总分区间选定的定性描述
	Message string `json:"message"`
}
