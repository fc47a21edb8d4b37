package scorer

import (
	"io"
	"log"
	"math"
	"strings"

	"resume-screener-go/internal/types"
)

// 各维度的固定权重，是与既有API消费者之间的契约，不允许配置
const (
	weightSkills     = 0.40
	weightExperience = 0.30
	weightEducation  = 0.20
	weightSemantic   = 0.10
)

// 无明确要求时的默认分（经验/学历未在岗位中声明，视为可接受）
const noRequirementDefault = 0.8

// MatchScorer 匹配打分服务：两份事实集合 → 四个子分数 + 加权总分
// 无状态且幂等，相同输入必然产出相同输出
type MatchScorer struct {
	logger *log.Logger
}

// ScorerOption 打分器的配置选项
type ScorerOption func(*MatchScorer)

// WithScorerLogger 配置自定义日志记录器
func WithScorerLogger(logger *log.Logger) ScorerOption {
	return func(s *MatchScorer) {
		s.logger = logger
	}
}

// NewMatchScorer 创建匹配打分服务
func NewMatchScorer(options ...ScorerOption) *MatchScorer {
	scorer := &MatchScorer{
		logger: log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(scorer)
	}
	return scorer
}

// Score 计算候选人与岗位要求的匹配结果
// 永不失败：打分阶段的任何意外 panic 都会被兜底为全零结果，
// 保证调用方总能拿到一个 ScreeningResult（可用性优先于诊断精度）
func (s *MatchScorer) Score(candidate, requirement *types.DocumentFacts) (result *types.ScreeningResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("打分阶段发生panic，返回全零兜底结果: %v", r)
			result = &types.ScreeningResult{
				OverallPercentage: 0,
				Breakdown:         types.ScoreBreakdown{},
				Message:           MessageForScore(0),
			}
		}
	}()

	skills := skillsScore(candidate.SkillSet(), requirement.SkillSet())
	experience := experienceScore(candidate.ExperienceYears, requirement.ExperienceYears)
	education := educationScore(candidate.EducationMentions, requirement.EducationMentions)
	semantic := semanticScore(candidate.NormalizedText, requirement.NormalizedText)

	overall := skills*weightSkills +
		experience*weightExperience +
		education*weightEducation +
		semantic*weightSemantic

	overallPct := round2(overall * 100)

	return &types.ScreeningResult{
		OverallPercentage: overallPct,
		Breakdown: types.ScoreBreakdown{
			SkillsScore:     round2(skills * 100),
			ExperienceScore: round2(experience * 100),
			EducationScore:  round2(education * 100),
			SemanticScore:   round2(semantic * 100),
		},
		Message: MessageForScore(overallPct),
	}
}

// skillsScore 技能分：0.3·Jaccard + 0.7·覆盖率，上限1
// 覆盖率（交集/要求集合）权重更高：筛选场景下覆盖岗位要求比精确更重要，
// Jaccard 用于惩罚大量无关技能带来的噪声
func skillsScore(candidate, required map[string]struct{}) float64 {
	if len(candidate) == 0 || len(required) == 0 {
		return 0
	}

	intersection := 0
	for skill := range candidate {
		if _, ok := required[skill]; ok {
			intersection++
		}
	}
	union := len(candidate) + len(required) - intersection

	jaccard := float64(intersection) / float64(union)
	overlap := float64(intersection) / float64(len(required))
	return math.Min(jaccard*0.3+overlap*0.7, 1.0)
}

// experienceScore 经验分：
// 岗位未声明年限 → 0.8；简历未找到年限 → 0；达到要求 → 1；
// 不足时按比例分档，避免对临界缺口做线性奖励
func experienceScore(candidateYears, requiredYears *int) float64 {
	if requiredYears == nil {
		return noRequirementDefault
	}
	if candidateYears == nil {
		return 0
	}
	if *candidateYears >= *requiredYears {
		return 1.0
	}

	ratio := float64(*candidateYears) / float64(*requiredYears)
	switch {
	case ratio >= 0.8:
		return 0.9
	case ratio >= 0.6:
		return 0.7
	case ratio >= 0.4:
		return 0.5
	case ratio >= 0.2:
		return 0.3
	default:
		return 0.1
	}
}

// educationKeywordBuckets 学历关键词分桶，按固定顺序归类
var educationKeywordBuckets = []struct {
	name     string
	keywords []string
}{
	{"bachelor", []string{"bachelor", "b.s", "b.a", "bs", "ba", "undergraduate"}},
	{"master", []string{"master", "m.s", "m.a", "ms", "ma", "mba", "graduate"}},
	{"phd", []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{"associate", []string{"associate", "associates"}},
	{"diploma", []string{"diploma", "certificate", "certification"}},
	{"degree", []string{"degree"}},
}

// educationScore 学历分：
// 无要求 → 0.8；有要求但简历无学历信息 → 0；
// 每条要求逐桶扫描，第一个关键词同时出现在要求与简历学历文本中的桶计1分
// （一条要求可能提及多个学位级别，如 "master degree"，任一同桶命中即可）；
// 要求中没有任何桶关键词时退化为词重叠匹配，重叠率>0.3计0.5分；
// 总分 = 得分/要求数，上限1
func educationScore(candidateEducation, requiredEducation []string) float64 {
	if len(requiredEducation) == 0 {
		return noRequirementDefault
	}
	if len(candidateEducation) == 0 {
		return 0
	}

	resumeText := strings.ToLower(strings.Join(candidateEducation, " "))
	resumeWords := wordSet(resumeText)

	var credits float64
	for _, requirement := range requiredEducation {
		requirementLower := strings.ToLower(requirement)

		requirementHasBucket := false
		for _, bucket := range educationKeywordBuckets {
			if !anyKeywordIn(requirementLower, bucket.keywords) {
				continue
			}
			requirementHasBucket = true
			if anyKeywordIn(resumeText, bucket.keywords) {
				credits++
				break
			}
		}
		if requirementHasBucket {
			continue
		}

		// 无桶关键词，退化为词重叠
		reqWords := wordSet(requirementLower)
		if len(reqWords) == 0 {
			continue
		}
		overlapCount := 0
		for w := range reqWords {
			if _, ok := resumeWords[w]; ok {
				overlapCount++
			}
		}
		if float64(overlapCount)/float64(len(reqWords)) > 0.3 {
			credits += 0.5
		}
	}

	return math.Min(credits/float64(len(requiredEducation)), 1.0)
}

func anyKeywordIn(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(text)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// semanticScore 语义分：TF-IDF + 余弦相似度，向量化失败时为0
// 每次调用新建向量器，请求之间不共享向量空间
func semanticScore(candidateText, requirementText string) float64 {
	if candidateText == "" || requirementText == "" {
		return 0
	}
	sim, err := newTFIDFVectorizer().CosineSimilarity(candidateText, requirementText)
	if err != nil {
		return 0
	}
	return sim
}

// round2 四舍五入到两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
