package extractor

import "context"

// DocumentDecoder 文档解码接口：原始字节 → 纯文本
type DocumentDecoder interface {
	DecodeText(ctx context.Context, data []byte, filename string) (string, error)
}

// EntityAugmenter 可选的实体增强能力
// 在规则抽取之外补充技能/教育实体；抽取流程在没有增强器时必须完整可用，
// 增强器的任何失败都只记录日志，不影响抽取结果
type EntityAugmenter interface {
	// AugmentSkills 从文本中识别额外的技能实体
	AugmentSkills(ctx context.Context, text string) ([]string, error)
	// AugmentEducation 从文本中识别额外的教育机构/学历实体
	AugmentEducation(ctx context.Context, text string) ([]string, error)
}
