package speech

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
)

// 火山引擎 TTS WebSocket 二进制协议：4 字节消息头，之后依据消息类型携带
// sequence、错误码、payload 大小与 payload。

const protocolVersion = 0b0001

// messageType 消息类型
type messageType uint8

const (
	// fullClientRequest 包含请求参数的完整客户端请求
	fullClientRequest messageType = 0b0001
	// audioOnlyResponse 只包含音频数据的服务端响应
	audioOnlyResponse messageType = 0b1011
	// errorResponse 服务端错误消息
	errorResponse messageType = 0b1111
)

// serialization 序列化方法
type serialization uint8

const (
	noSerialization   serialization = 0b0000
	jsonSerialization serialization = 0b0001
)

// compression 压缩方法
type compression uint8

const (
	noCompression   compression = 0b0000
	gzipCompression compression = 0b0001
)

// frame 一条完整的协议消息
type frame struct {
	Type          messageType
	Serialization serialization
	Compression   compression
	Sequence      int32
	ErrorCode     uint32
	Payload       []byte
}

// IsLast 判断是否为最后一包（sequence 为负数）。
func (f *frame) IsLast() bool {
	return f.Sequence < 0
}

// encodeClientRequest 编码完整客户端请求，payload 使用 gzip 压缩。
func encodeClientRequest(payload []byte) ([]byte, error) {
	compressed, err := compressGzip(payload)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(nil)

	// header: version+size, type+flags, serialization+compression, reserved
	buf.WriteByte((protocolVersion << 4) | 0b0001)
	buf.WriteByte(uint8(fullClientRequest) << 4)
	buf.WriteByte((uint8(jsonSerialization) << 4) | uint8(gzipCompression))
	buf.WriteByte(0x00)

	sizeBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(sizeBytes, uint32(len(compressed)))
	buf.Write(sizeBytes)
	buf.Write(compressed)

	return buf.Bytes(), nil
}

// decodeServerFrame 解码服务端消息。
func decodeServerFrame(data []byte) (*frame, error) {
	reader := bytes.NewReader(data)

	header := make([]byte, 4)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read frame header: %w", err)
	}

	version := header[0] >> 4
	if version != protocolVersion {
		return nil, fmt.Errorf("unsupported protocol version: %d", version)
	}

	f := &frame{
		Type:          messageType(header[1] >> 4),
		Serialization: serialization(header[2] >> 4),
		Compression:   compression(header[2] & 0x0F),
	}

	// 跳过扩展头（header size 以 4 字节为单位）。
	extra := int(header[0]&0x0F)*4 - 4
	if extra > 0 {
		if _, err := reader.Seek(int64(extra), io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("failed to skip extended header: %w", err)
		}
	}

	switch f.Type {
	case audioOnlyResponse:
		var seq int32
		if err := binary.Read(reader, binary.BigEndian, &seq); err != nil {
			return nil, fmt.Errorf("failed to read sequence: %w", err)
		}
		f.Sequence = seq

	case errorResponse:
		if err := binary.Read(reader, binary.BigEndian, &f.ErrorCode); err != nil {
			return nil, fmt.Errorf("failed to read error code: %w", err)
		}

	default:
		return nil, fmt.Errorf("unexpected message type: %d", f.Type)
	}

	var size uint32
	if err := binary.Read(reader, binary.BigEndian, &size); err != nil {
		return nil, fmt.Errorf("failed to read payload size: %w", err)
	}

	if size > 0 {
		payload := make([]byte, size)
		if _, err := io.ReadFull(reader, payload); err != nil {
			return nil, fmt.Errorf("failed to read payload (expected %d bytes): %w", size, err)
		}

		if f.Compression == gzipCompression {
			decompressed, err := decompressGzip(payload)
			if err != nil {
				return nil, err
			}
			payload = decompressed
		}
		f.Payload = payload
	}

	return f, nil
}

func compressGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("gzip write failed: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gzip close failed: %w", err)
	}

	return buf.Bytes(), nil
}

func decompressGzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip reader creation failed: %w", err)
	}
	defer reader.Close()

	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("gzip read failed: %w", err)
	}

	return result, nil
}
