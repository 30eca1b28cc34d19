package ctrl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tjjh89017/codestore-go/internal/entity"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var Formats = []Format{FormatText, FormatJSON, FormatYAML}

type Serializer interface {
	Serialize(w io.Writer, codes entity.Codes) error
}

func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if format == "" {
		return FormatText, nil
	}

	for _, f := range Formats {
		if f == format {
			return f, nil
		}
	}

	return "", fmt.Errorf("unsupported output format %q", s)
}

func NewSerializer(format Format) (Serializer, error) {
	switch format {
	case FormatText, "":
		return &textSerializer{}, nil
	case FormatJSON:
		return &jsonSerializer{}, nil
	case FormatYAML:
		return &yamlSerializer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// textSerializer prints one key per line.
type textSerializer struct{}

func (s *textSerializer) Serialize(w io.Writer, codes entity.Codes) error {
	for _, key := range codes.Keys() {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return err
		}
	}

	return nil
}

type jsonSerializer struct{}

func (s *jsonSerializer) Serialize(w io.Writer, codes entity.Codes) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(codes)
}

type yamlSerializer struct{}

func (s *yamlSerializer) Serialize(w io.Writer, codes entity.Codes) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(codes); err != nil {
		return err
	}

	return encoder.Close()
}
