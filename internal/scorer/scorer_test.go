package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-screener-go/internal/constants"
	"resume-screener-go/internal/types"
)

func intPtr(v int) *int { return &v }

// TestSkillsScore 技能分的边界与组合公式
func TestSkillsScore(t *testing.T) {
	set := func(skills ...string) map[string]struct{} {
		s := make(map[string]struct{}, len(skills))
		for _, skill := range skills {
			s[skill] = struct{}{}
		}
		return s
	}

	t.Run("任一集合为空得0分", func(t *testing.T) {
		assert.Zero(t, skillsScore(set(), set("python")))
		assert.Zero(t, skillsScore(set("python"), set()))
		assert.Zero(t, skillsScore(set(), set()))
	})

	t.Run("完全匹配得满分", func(t *testing.T) {
		assert.Equal(t, 1.0, skillsScore(set("python", "aws"), set("python", "aws")))
	})

	t.Run("部分匹配按Jaccard与覆盖率加权", func(t *testing.T) {
		// 交集1，并集3：0.3·(1/3) + 0.7·(1/2) = 0.45
		got := skillsScore(set("python", "go"), set("python", "java"))
		assert.InDelta(t, 0.45, got, 1e-9)
	})

	t.Run("无关技能稀释Jaccard但不影响覆盖率", func(t *testing.T) {
		full := skillsScore(set("python", "java"), set("python", "java"))
		diluted := skillsScore(set("python", "java", "excel", "word"), set("python", "java"))
		assert.Greater(t, full, diluted)
		// 覆盖率仍为1：0.3·(2/4) + 0.7·1 = 0.85
		assert.InDelta(t, 0.85, diluted, 1e-9)
	})

	t.Run("结果始终在0到1之间", func(t *testing.T) {
		got := skillsScore(set("a1", "b2", "c3"), set("a1", "b2", "c3", "d4"))
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	})
}

// TestExperienceScore 经验分的全部分档
func TestExperienceScore(t *testing.T) {
	testCases := []struct {
		name      string
		candidate *int
		required  *int
		expected  float64
	}{
		{"岗位未声明年限", intPtr(3), nil, 0.8},
		{"简历未找到年限", nil, intPtr(5), 0},
		{"双方均未声明", nil, nil, 0.8},
		{"恰好达到要求", intPtr(5), intPtr(5), 1.0},
		{"超出要求", intPtr(10), intPtr(5), 1.0},
		{"比例0.8分档", intPtr(4), intPtr(5), 0.9},
		{"比例0.6分档", intPtr(3), intPtr(5), 0.7},
		{"比例0.4分档", intPtr(2), intPtr(5), 0.5},
		{"比例0.2分档", intPtr(1), intPtr(5), 0.3},
		{"比例低于0.2", intPtr(1), intPtr(10), 0.1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, experienceScore(tc.candidate, tc.required))
		})
	}
}

// TestExperienceScoreMonotonic 要求固定时经验分随年限单调不减
func TestExperienceScoreMonotonic(t *testing.T) {
	required := intPtr(10)
	previous := 0.0
	for years := 0; years <= 12; years++ {
		got := experienceScore(intPtr(years), required)
		assert.GreaterOrEqual(t, got, previous, "年限 %d", years)
		previous = got
	}
}

// TestEducationScore 学历分的分桶与退化匹配
func TestEducationScore(t *testing.T) {
	t.Run("无学历要求默认0.8", func(t *testing.T) {
		assert.Equal(t, 0.8, educationScore([]string{"bachelor of science"}, nil))
	})

	t.Run("有要求但简历无学历信息得0分", func(t *testing.T) {
		assert.Zero(t, educationScore(nil, []string{"bachelor degree required"}))
	})

	t.Run("同桶关键词命中得满分", func(t *testing.T) {
		got := educationScore(
			[]string{"bachelor of science in computer science"},
			[]string{"bachelor degree in computer science"},
		)
		assert.Equal(t, 1.0, got)
	})

	t.Run("要求的学位级别在简历中缺失得0分", func(t *testing.T) {
		got := educationScore(
			[]string{"bachelor of arts"},
			[]string{"phd required"},
		)
		assert.Zero(t, got)
	})

	t.Run("要求含多个学位关键词时逐桶匹配", func(t *testing.T) {
		// "master degree required" 同时含 master 与 degree 桶关键词：
		// 简历没有 master，但 degree 桶两侧都命中
		got := educationScore(
			[]string{"completed a degree program in computer science"},
			[]string{"master degree required"},
		)
		assert.Equal(t, 1.0, got)
	})

	t.Run("要求的全部学位关键词都未命中简历时不退化", func(t *testing.T) {
		// 要求含桶关键词即便全部未命中也不走词重叠退化
		// （简历与要求共享 "required" 一词，若误走退化会得0.5）
		got := educationScore(
			[]string{"advanced training required"},
			[]string{"master degree required"},
		)
		assert.Zero(t, got)
	})

	t.Run("无桶关键词时词重叠退化为半分", func(t *testing.T) {
		// 要求不含任何学位关键词，与简历词重叠率 2/3 > 0.3
		got := educationScore(
			[]string{"studied computer science"},
			[]string{"computer science fundamentals"},
		)
		assert.Equal(t, 0.5, got)
	})

	t.Run("多条要求求平均且不超过1", func(t *testing.T) {
		got := educationScore(
			[]string{"master of science in engineering"},
			[]string{"master degree", "phd preferred"},
		)
		assert.Equal(t, 0.5, got)
	})
}

// TestScoreOverallFormula 总分为四个子分数的加权和（两位小数的舍入误差内）
func TestScoreOverallFormula(t *testing.T) {
	scorer := NewMatchScorer()

	candidate := &types.DocumentFacts{
		Skills:            []string{"python", "go"},
		ExperienceYears:   intPtr(4),
		EducationMentions: []string{"bachelor of science in computer science"},
		NormalizedText:    "python developer building backend services for four years",
	}
	requirement := &types.DocumentFacts{
		Skills:            []string{"python", "java"},
		ExperienceYears:   intPtr(5),
		EducationMentions: []string{"bachelor degree in computer science"},
		NormalizedText:    "looking for a backend python developer with five years experience",
	}

	result := scorer.Score(candidate, requirement)
	require.NotNil(t, result)

	b := result.Breakdown
	assert.InDelta(t, 45.0, b.SkillsScore, 1e-9)
	assert.InDelta(t, 90.0, b.ExperienceScore, 1e-9)
	assert.InDelta(t, 100.0, b.EducationScore, 1e-9)
	assert.GreaterOrEqual(t, b.SemanticScore, 0.0)
	assert.LessOrEqual(t, b.SemanticScore, 100.0)

	weighted := b.SkillsScore*0.40 + b.ExperienceScore*0.30 +
		b.EducationScore*0.20 + b.SemanticScore*0.10
	assert.InDelta(t, weighted, result.OverallPercentage, 0.011)
	assert.Equal(t, MessageForScore(result.OverallPercentage), result.Message)
}

// TestScoreIdempotent 相同输入必然产出相同输出
func TestScoreIdempotent(t *testing.T) {
	scorer := NewMatchScorer()

	candidate := &types.DocumentFacts{
		Skills:            []string{"python", "docker", "kubernetes"},
		ExperienceYears:   intPtr(6),
		EducationMentions: []string{"master of science"},
		NormalizedText:    "devops engineer with kubernetes and docker experience",
	}
	requirement := &types.DocumentFacts{
		Skills:            []string{"docker", "kubernetes"},
		ExperienceYears:   intPtr(3),
		EducationMentions: []string{"bachelor degree"},
		NormalizedText:    "devops engineer role requiring docker and kubernetes",
	}

	first := scorer.Score(candidate, requirement)
	second := scorer.Score(candidate, requirement)
	assert.Equal(t, first, second)
}

// TestScoreRecoversToZeroResult 打分永不失败：
// 内部panic（如nil事实）被兜底为全零结果与差评描述
func TestScoreRecoversToZeroResult(t *testing.T) {
	scorer := NewMatchScorer()

	result := scorer.Score(nil, nil)
	require.NotNil(t, result)

	assert.Zero(t, result.OverallPercentage)
	assert.Equal(t, types.ScoreBreakdown{}, result.Breakdown)
	assert.Equal(t, constants.MessagePoor, result.Message)
}

// TestScoreEmptyFacts 两份空事实也能得到合法结果
func TestScoreEmptyFacts(t *testing.T) {
	scorer := NewMatchScorer()

	result := scorer.Score(&types.DocumentFacts{}, &types.DocumentFacts{})
	require.NotNil(t, result)

	// 技能0、经验0.8、学历0.8、语义0 → 0·0.4 + 0.8·0.3 + 0.8·0.2 + 0 = 0.40
	assert.InDelta(t, 40.0, result.OverallPercentage, 1e-9)
	assert.Equal(t, constants.MessageFair, result.Message)
}

// TestMessageForScore 定性描述的阈值边界
func TestMessageForScore(t *testing.T) {
	testCases := []struct {
		score    float64
		expected string
	}{
		{100, constants.MessageExcellent},
		{80, constants.MessageExcellent},
		{79.99, constants.MessageGood},
		{60, constants.MessageGood},
		{59.99, constants.MessageFair},
		{40, constants.MessageFair},
		{39.99, constants.MessageLimited},
		{20, constants.MessageLimited},
		{19.99, constants.MessagePoor},
		{0, constants.MessagePoor},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, MessageForScore(tc.score), "score=%v", tc.score)
	}
}
