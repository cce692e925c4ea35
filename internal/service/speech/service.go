package speech

import (
	"context"
	"time"

	"github.com/alexjohnson-dev/portfolio/backend/internal/config"
)

// Service 语音合成服务。实现会话管线的 Speaker 接口。
type Service struct {
	client  *VolcengineTTSClient
	timeout time.Duration
}

// NewService 创建语音服务实例。
func NewService(cfg config.SpeechConfig) *Service {
	return &Service{
		client:  NewVolcengineTTSClient(cfg),
		timeout: 30 * time.Second,
	}
}

// Speak 文字转语音，返回 mp3 字节。单次调用自带超时，调用方失败可安全忽略。
func (s *Service) Speak(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Synthesize(ctx, text)
}
