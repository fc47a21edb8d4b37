package extractor

import (
	"context"
	"fmt"
	"io"
	"log"

	"resume-screener-go/internal/parser"
	"resume-screener-go/internal/types"
)

// TextExtractor 文本抽取服务：解码后的文档文本 → 结构化事实
// 无状态，所有配置在构造时注入，可安全并发使用
type TextExtractor struct {
	decoder   DocumentDecoder
	augmenter EntityAugmenter // 可选，nil 时纯规则抽取
	logger    *log.Logger
}

// Option 抽取器的配置选项
type Option func(*TextExtractor)

// WithAugmenter 注入可选的实体增强器
func WithAugmenter(augmenter EntityAugmenter) Option {
	return func(e *TextExtractor) {
		e.augmenter = augmenter
	}
}

// WithExtractorLogger 配置自定义日志记录器
func WithExtractorLogger(logger *log.Logger) Option {
	return func(e *TextExtractor) {
		e.logger = logger
	}
}

// NewTextExtractor 创建文本抽取服务
func NewTextExtractor(decoder DocumentDecoder, options ...Option) *TextExtractor {
	extractor := &TextExtractor{
		decoder: decoder,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractCandidateFacts 解码并抽取候选人简历的结构化事实
func (e *TextExtractor) ExtractCandidateFacts(ctx context.Context, raw []byte, filename string) (*types.DocumentFacts, error) {
	text, err := e.decoder.DecodeText(ctx, raw, filename)
	if err != nil {
		return nil, err
	}
	return e.candidateFactsFromText(ctx, text, filename)
}

// ExtractRequirementFacts 解码并抽取岗位描述的结构化事实
func (e *TextExtractor) ExtractRequirementFacts(ctx context.Context, raw []byte, filename string) (*types.DocumentFacts, error) {
	text, err := e.decoder.DecodeText(ctx, raw, filename)
	if err != nil {
		return nil, err
	}
	return e.requirementFactsFromText(ctx, text, filename)
}

// ExtractRequirementFactsFromText 直接从纯文本抽取岗位描述事实
// 岗位描述允许以表单文本形式提交，无需经过文件解码
func (e *TextExtractor) ExtractRequirementFactsFromText(ctx context.Context, text string) (*types.DocumentFacts, error) {
	return e.requirementFactsFromText(ctx, text, "jd_text")
}

// candidateFactsFromText 简历侧抽取
// 对格式混乱但可解码的文本不会报错：匹配不到只会产出空集合或 nil
func (e *TextExtractor) candidateFactsFromText(ctx context.Context, sourceText, filename string) (facts *types.DocumentFacts, err error) {
	defer recoverExtraction(&facts, &err, filename)

	normalized := NormalizeText(sourceText)

	facts = &types.DocumentFacts{
		Skills:            extractSkills(normalized, sourceText),
		ExperienceYears:   extractExperienceYears(normalized, candidateExperiencePatterns),
		EducationMentions: extractCandidateEducation(sourceText),
		NormalizedText:    normalized,
	}

	e.applyAugmenter(ctx, facts, normalized)
	return facts, nil
}

// requirementFactsFromText 岗位侧抽取，年限与学历使用更宽的要求类模式
func (e *TextExtractor) requirementFactsFromText(ctx context.Context, sourceText, filename string) (facts *types.DocumentFacts, err error) {
	defer recoverExtraction(&facts, &err, filename)

	normalized := NormalizeText(sourceText)

	facts = &types.DocumentFacts{
		Skills:            extractSkills(normalized, sourceText),
		ExperienceYears:   extractExperienceYears(normalized, requirementExperiencePatterns),
		EducationMentions: extractRequirementEducation(sourceText, normalized),
		NormalizedText:    normalized,
	}

	e.applyAugmenter(ctx, facts, normalized)
	return facts, nil
}

// applyAugmenter 合并增强器识别出的额外实体
// 增强器失败只记日志：规则抽取的结果必须在没有它时就已完整
func (e *TextExtractor) applyAugmenter(ctx context.Context, facts *types.DocumentFacts, normalized string) {
	if e.augmenter == nil {
		return
	}

	if extra, err := e.augmenter.AugmentSkills(ctx, normalized); err != nil {
		e.logger.Printf("实体增强器技能识别失败，忽略: %v", err)
	} else if len(extra) > 0 {
		set := facts.SkillSet()
		for _, s := range extra {
			addSkill(set, s)
		}
		facts.Skills = sortedSkillSlice(set)
	}

	if extra, err := e.augmenter.AugmentEducation(ctx, normalized); err != nil {
		e.logger.Printf("实体增强器教育识别失败，忽略: %v", err)
	} else if len(extra) > 0 {
		merged := facts.EducationMentions
		for _, m := range extra {
			merged = append(merged, NormalizeText(m))
		}
		facts.EducationMentions = dedupeMentions(merged)
	}
}

// recoverExtraction 将正则层的意外 panic 包装为解码类错误，不让其逃逸
func recoverExtraction(facts **types.DocumentFacts, err *error, filename string) {
	if r := recover(); r != nil {
		*facts = nil
		*err = parser.NewDecodeError(filename, "extract", fmt.Sprintf("抽取过程发生panic: %v", r))
	}
}
