package format

import (
	"encoding/json"
	"io"

	"github.com/DefaultKira/trabalho-lexema/analysis"
)

type JSONEncoder struct {
	w      io.Writer
	report *analysis.Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(r *analysis.Report) error {
	e.report = r
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(buildReportData(e.report), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
