package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/alexjohnson-dev/portfolio/backend/internal/config"
)

const ttsEndpoint = "wss://openspeech.bytedance.com/api/v1/tts/ws_binary"

// VolcengineTTSClient 火山引擎 TTS WebSocket 客户端。
type VolcengineTTSClient struct {
	cfg    config.SpeechConfig
	dialer *websocket.Dialer
}

// NewVolcengineTTSClient 创建 TTS 客户端。
func NewVolcengineTTSClient(cfg config.SpeechConfig) *VolcengineTTSClient {
	return &VolcengineTTSClient{
		cfg: cfg,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 30 * time.Second,
		},
	}
}

type ttsRequest struct {
	App struct {
		AppID   string `json:"appid"`
		Token   string `json:"token"`
		Cluster string `json:"cluster"`
	} `json:"app"`
	User struct {
		UID string `json:"uid"`
	} `json:"user"`
	Audio struct {
		VoiceType   string  `json:"voice_type"`
		Encoding    string  `json:"encoding"`
		SpeedRatio  float32 `json:"speed_ratio,omitempty"`
		VolumeRatio float32 `json:"volume_ratio,omitempty"`
	} `json:"audio"`
	Request struct {
		ReqID     string `json:"reqid"`
		Text      string `json:"text"`
		Operation string `json:"operation"`
	} `json:"request"`
}

// Synthesize 合成语音并返回完整的 mp3 音频数据。
func (c *VolcengineTTSClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("TTS text is empty")
	}
	if c.cfg.AppID == "" || c.cfg.AccessToken == "" {
		return nil, fmt.Errorf("TTS credentials are not configured")
	}

	header := http.Header{}
	header.Set("Authorization", fmt.Sprintf("Bearer; %s", c.cfg.AccessToken))

	conn, _, err := c.dialer.DialContext(ctx, ttsEndpoint, header)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to TTS WebSocket: %w", err)
	}
	defer conn.Close()

	payload, err := json.Marshal(c.buildRequest(text))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TTS request: %w", err)
	}

	message, err := encodeClientRequest(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode TTS request: %w", err)
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
		return nil, fmt.Errorf("failed to send TTS request: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}

	var audio bytes.Buffer
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("failed to read TTS response: %w", err)
		}

		f, err := decodeServerFrame(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TTS frame: %w", err)
		}

		switch f.Type {
		case errorResponse:
			return nil, fmt.Errorf("TTS error %d: %s", f.ErrorCode, string(f.Payload))
		case audioOnlyResponse:
			audio.Write(f.Payload)
			if f.IsLast() {
				if audio.Len() == 0 {
					return nil, fmt.Errorf("TTS audio is empty")
				}
				return audio.Bytes(), nil
			}
		}
	}
}

// buildRequest 构建符合火山引擎 API 格式的请求体。
func (c *VolcengineTTSClient) buildRequest(text string) *ttsRequest {
	req := &ttsRequest{}
	req.App.AppID = c.cfg.AppID
	req.App.Token = c.cfg.AccessToken
	req.App.Cluster = c.cfg.Cluster
	req.User.UID = uuid.NewString()
	req.Audio.VoiceType = c.cfg.Voice
	req.Audio.Encoding = "mp3"
	if c.cfg.Speed > 0 && c.cfg.Speed != 1.0 {
		req.Audio.SpeedRatio = c.cfg.Speed
	}
	if c.cfg.Volume > 0 && c.cfg.Volume != 1.0 {
		req.Audio.VolumeRatio = c.cfg.Volume
	}
	req.Request.ReqID = uuid.NewString()
	req.Request.Text = text
	req.Request.Operation = "submit"
	return req
}
