package rpc

import (
	"github.com/goccy/go-json"
	"google.golang.org/grpc/encoding"
)

// CodecName content-subtype dùng giữa gateway và các service ("application/grpc+json")
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	switch m := v.(type) {
	case RawReply:
		return m, nil
	case *RawReply:
		return *m, nil
	}
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if r, ok := v.(*RawReply); ok {
		*r = append((*r)[:0], data...)
		return nil
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// RawReply body JSON nguyên bản của backend, gateway trả thẳng cho client
type RawReply []byte

// StatusCode đọc field statusCode trong envelope, không có thì trả 0
func (r RawReply) StatusCode() int {
	var env struct {
		StatusCode *int `json:"statusCode"`
	}
	if len(r) == 0 || json.Unmarshal(r, &env) != nil || env.StatusCode == nil {
		return 0
	}
	return *env.StatusCode
}
