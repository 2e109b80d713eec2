package format

import (
	"github.com/DefaultKira/trabalho-lexema/analysis"
)

// reportData is the structured shape shared by the JSON and YAML encoders.
type reportData struct {
	File     string        `json:"file" yaml:"file"`
	OK       bool          `json:"ok" yaml:"ok"`
	Lexical  []problemData `json:"lexical" yaml:"lexical"`
	Syntax   []problemData `json:"syntax" yaml:"syntax"`
	Symbols  []symbolData  `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	Steps    int           `json:"steps" yaml:"steps"`
	Accepted bool          `json:"accepted" yaml:"accepted"`
}

type problemData struct {
	Code    string `json:"code" yaml:"code"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

type symbolData struct {
	Name   string `json:"name" yaml:"name"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// lexicalCode tags scanner errors so they sort apart from syntax codes.
const lexicalCode = "L001"

func buildReportData(r *analysis.Report) reportData {
	data := reportData{
		File:    r.File,
		OK:      r.OK(),
		Lexical: []problemData{},
		Syntax:  []problemData{},
	}

	for _, e := range r.LexErrors {
		data.Lexical = append(data.Lexical, problemData{
			Code:    lexicalCode,
			Kind:    "lexical",
			Message: e.Message,
			Line:    e.Pos.Line,
			Column:  e.Pos.Column,
		})
	}

	if r.Result != nil {
		data.Accepted = r.Result.Accepted
		data.Steps = r.Result.Steps
		for _, d := range r.Result.Diagnostics {
			data.Syntax = append(data.Syntax, problemData{
				Code:    d.Kind.Code(),
				Kind:    d.Kind.String(),
				Message: d.Message,
				Line:    d.Line,
				Column:  d.Column,
			})
		}
	}

	for _, s := range r.Symbols {
		data.Symbols = append(data.Symbols, symbolData{
			Name:   s.Name,
			Line:   s.Pos.Line,
			Column: s.Pos.Column,
		})
	}

	return data
}
