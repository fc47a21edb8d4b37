package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	einoschema "github.com/cloudwego/eino/schema"
)

// 实体类别
const (
	entityKindSkills    = "skills"
	entityKindEducation = "education"
)

const augmenterSystemPrompt = `你是一个技术招聘领域的命名实体识别助手。` +
	`从用户给出的文档文本中识别指定类别的实体，仅输出JSON数组，不要输出任何其他内容。`

const augmenterPromptTemplate = `请从以下文本中识别所有「%s」类别的实体。

类别说明:
- skills: 技术技能，如编程语言、框架、数据库、云平台、开发工具
- education: 教育机构或学历证书，如大学、学院、学位名称

输出格式: 仅一个JSON字符串数组，例如 ["python", "aws"]。找不到任何实体时输出 []。

文本:
"""
%s
"""`

// EinoEntityAugmenter 基于 LLM 的实体增强器，实现 EntityAugmenter 接口
// 结果依赖底层模型版本，不保证跨实现可复现，故仅作为可选增强能力
type EinoEntityAugmenter struct {
	llmModel model.ToolCallingChatModel
	logger   *log.Logger
}

// AugmenterOption 实体增强器的配置选项
type AugmenterOption func(*EinoEntityAugmenter)

// WithAugmenterLogger 配置自定义日志记录器
func WithAugmenterLogger(logger *log.Logger) AugmenterOption {
	return func(a *EinoEntityAugmenter) {
		a.logger = logger
	}
}

// NewEinoEntityAugmenter 创建实体增强器实例
func NewEinoEntityAugmenter(llmModel model.ToolCallingChatModel, options ...AugmenterOption) *EinoEntityAugmenter {
	augmenter := &EinoEntityAugmenter{
		llmModel: llmModel,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(augmenter)
	}
	return augmenter
}

// AugmentSkills 实现 EntityAugmenter 接口
func (a *EinoEntityAugmenter) AugmentSkills(ctx context.Context, text string) ([]string, error) {
	return a.extractEntities(ctx, text, entityKindSkills)
}

// AugmentEducation 实现 EntityAugmenter 接口
func (a *EinoEntityAugmenter) AugmentEducation(ctx context.Context, text string) ([]string, error) {
	return a.extractEntities(ctx, text, entityKindEducation)
}

// extractEntities 调用LLM识别指定类别的实体并解析JSON数组响应
func (a *EinoEntityAugmenter) extractEntities(ctx context.Context, text, kind string) ([]string, error) {
	if a.llmModel == nil {
		return nil, fmt.Errorf("EinoEntityAugmenter: llmModel is not initialized")
	}

	messages := []*einoschema.Message{
		einoschema.SystemMessage(augmenterSystemPrompt),
		einoschema.UserMessage(fmt.Sprintf(augmenterPromptTemplate, kind, text)),
	}

	a.logger.Printf("[EntityAugmenter] 识别 %s 实体 (文本长度 %d)", kind, len(text))

	response, err := a.llmModel.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("EinoEntityAugmenter: LLM call failed: %w", err)
	}
	if response == nil || response.Content == "" {
		return nil, fmt.Errorf("EinoEntityAugmenter: LLM returned empty response")
	}

	jsonStr := extractJSONArray(strings.TrimPrefix(response.Content, "\ufeff"))
	if jsonStr == "" {
		return nil, fmt.Errorf("EinoEntityAugmenter: no JSON array in LLM response: %.200s", response.Content)
	}

	var entities []string
	if err := json.Unmarshal([]byte(jsonStr), &entities); err != nil {
		return nil, fmt.Errorf("EinoEntityAugmenter: failed to unmarshal LLM JSON response: %w", err)
	}

	cleaned := make([]string, 0, len(entities))
	for _, e := range entities {
		e = strings.ToLower(strings.TrimSpace(e))
		if len(e) > 2 {
			cleaned = append(cleaned, e)
		}
	}

	a.logger.Printf("[EntityAugmenter] 识别出 %d 个 %s 实体", len(cleaned), kind)
	return cleaned, nil
}

// extractJSONArray 从可能带有代码块标记或解释文字的响应中截取首个JSON数组
func extractJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}
