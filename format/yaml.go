package format

import (
	"bytes"
	"io"

	"github.com/DefaultKira/trabalho-lexema/analysis"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w      io.Writer
	report *analysis.Report
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(r *analysis.Report) error {
	e.report = r
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(buildReportData(e.report)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
