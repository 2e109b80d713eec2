package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/DefaultKira/trabalho-lexema/analysis"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(r *analysis.Report) error
}

// Names lists the report formats accepted by New.
func Names() []string {
	return []string{"text", "json", "yaml"}
}

func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "text":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml", "yml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
