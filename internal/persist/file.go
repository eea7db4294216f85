package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes the whole key-value table of a FileStore.
type Codec interface {
	Ext() string
	Marshal(map[string]string) ([]byte, error)
	Unmarshal([]byte, *map[string]string) error
}

type jsonCodec struct{}

func (jsonCodec) Ext() string { return ".json" }
func (jsonCodec) Marshal(v map[string]string) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
func (jsonCodec) Unmarshal(b []byte, v *map[string]string) error { return json.Unmarshal(b, v) }

type msgpackCodec struct{}

func (msgpackCodec) Ext() string                                    { return ".msgpack" }
func (msgpackCodec) Marshal(v map[string]string) ([]byte, error)    { return msgpack.Marshal(v) }
func (msgpackCodec) Unmarshal(b []byte, v *map[string]string) error { return msgpack.Unmarshal(b, v) }

var (
	JSON    Codec = jsonCodec{}
	MsgPack Codec = msgpackCodec{}
)

var ErrUnknownFormat = errors.New("persist: unknown store format")

// CodecFor resolves a config format name.
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return JSON, nil
	case "msgpack", "messagepack":
		return MsgPack, nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// FileStore keeps all keys in one file and rewrites it on every Set.
type FileStore struct {
	path   string
	codec  Codec
	values map[string]string
	log    zerolog.Logger
}

// OpenFileStore loads dir/progress<ext>. A missing file is an empty store; a
// corrupt one is logged and treated as empty so a bad save never blocks play.
func OpenFileStore(dir string, codec Codec, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	s := &FileStore{
		path:   filepath.Join(dir, "progress"+codec.Ext()),
		codec:  codec,
		values: map[string]string{},
		log:    log,
	}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	var vals map[string]string
	if err := codec.Unmarshal(b, &vals); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("corrupt progress file, starting fresh")
		return s, nil
	}
	if vals != nil {
		s.values = vals
	}
	return s, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.values[key] = value
	b, err := s.codec.Marshal(s.values)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.log.Debug().Str("key", key).Str("value", value).Msg("progress saved")
	return nil
}
