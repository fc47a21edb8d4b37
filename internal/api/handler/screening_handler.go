package handler

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"resume-screener-go/internal/config"
	"resume-screener-go/internal/extractor"
	"resume-screener-go/internal/logger"
	"resume-screener-go/internal/scorer"
	"resume-screener-go/internal/types"
)

// ScreeningHandler 筛选处理器，负责协调一次简历筛选的完整流程：
// 两份文档各自抽取事实，再交给打分器产出结果
type ScreeningHandler struct {
	cfg       *config.Config
	extractor *extractor.TextExtractor
	scorer    *scorer.MatchScorer
}

// NewScreeningHandler 创建一个新的筛选处理器
func NewScreeningHandler(
	cfg *config.Config,
	textExtractor *extractor.TextExtractor,
	matchScorer *scorer.MatchScorer,
) *ScreeningHandler {
	return &ScreeningHandler{
		cfg:       cfg,
		extractor: textExtractor,
		scorer:    matchScorer,
	}
}

// ScreeningRequest 一次筛选请求的输入
// JDText 非空时优先于 JDData/JDFilename 使用
type ScreeningRequest struct {
	ResumeData     []byte
	ResumeFilename string
	JDData         []byte
	JDFilename     string
	JDText         string
}

// ScreeningResponse 筛选接口的响应体
type ScreeningResponse struct {
	ScreeningUUID string `json:"screening_uuid"`
	types.ScreeningResult
}

// HandleScreenResume 处理一次筛选请求
// 抽取阶段的错误会向上传递（由路由层翻译为状态码）；
// 打分阶段永不失败，兜底行为在打分器内部处理
func (h *ScreeningHandler) HandleScreenResume(ctx context.Context, req *ScreeningRequest) (*ScreeningResponse, error) {
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	screeningUUID := uuidV7.String()

	candidateFacts, err := h.extractor.ExtractCandidateFacts(ctx, req.ResumeData, req.ResumeFilename)
	if err != nil {
		logger.Error().
			Err(err).
			Str("screening_uuid", screeningUUID).
			Str("filename", req.ResumeFilename).
			Msg("简历抽取失败")
		return nil, err
	}

	var requirementFacts *types.DocumentFacts
	if req.JDText != "" {
		requirementFacts, err = h.extractor.ExtractRequirementFactsFromText(ctx, req.JDText)
	} else {
		requirementFacts, err = h.extractor.ExtractRequirementFacts(ctx, req.JDData, req.JDFilename)
	}
	if err != nil {
		logger.Error().
			Err(err).
			Str("screening_uuid", screeningUUID).
			Str("filename", req.JDFilename).
			Msg("岗位描述抽取失败")
		return nil, err
	}

	result := h.scorer.Score(candidateFacts, requirementFacts)

	logger.Info().
		Str("screening_uuid", screeningUUID).
		Float64("overall", result.OverallPercentage).
		Int("candidate_skills", len(candidateFacts.Skills)).
		Int("required_skills", len(requirementFacts.Skills)).
		Msg("筛选完成")

	return &ScreeningResponse{
		ScreeningUUID:   screeningUUID,
		ScreeningResult: *result,
	}, nil
}

// MaxUploadBytes 返回配置的上传文件大小上限
func (h *ScreeningHandler) MaxUploadBytes() int64 {
	return h.cfg.Parser.MaxUploadBytes
}
