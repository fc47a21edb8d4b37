package extractor

import (
	"context"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// MockChatModel 用于测试和无真实LLM后端时兜底的 model.ToolCallingChatModel 模拟实现
// 始终返回预设响应
type MockChatModel struct {
	Response string
	Err      error

	ReceivedMessages []*schema.Message
}

// Generate 实现 model.BaseChatModel 接口，返回预设响应
func (m *MockChatModel) Generate(ctx context.Context, messages []*schema.Message, options ...model.Option) (*schema.Message, error) {
	m.ReceivedMessages = append(m.ReceivedMessages, messages...)
	if m.Err != nil {
		return nil, m.Err
	}
	return &schema.Message{
		Role:    schema.Assistant,
		Content: m.Response,
	}, nil
}

// Stream 实现 model.BaseChatModel 接口，模拟实现不支持流式响应
func (m *MockChatModel) Stream(ctx context.Context, messages []*schema.Message, options ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	log.Printf("[MockChatModel] Stream 未实现，仅支持 Generate")
	return nil, nil
}

// WithTools 实现 model.ToolCallingChatModel 接口，模拟实现不使用工具
func (m *MockChatModel) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return m, nil
}
