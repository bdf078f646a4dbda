// Package dsv reads and writes Tables as delimiter-separated values with a mandatory header row.
package dsv

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/go-sif/sifprep"
	"github.com/go-sif/sifprep/table"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter rune // The delimiter separating columns in the file. Defaults to ,
	Comment   rune // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
}

// Parser converts between DSV data and Tables
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse reads a header row followed by data rows. Every data row must have exactly
// as many fields as the header. If r holds no header at all, io.EOF is returned.
func (p *Parser) Parse(r io.Reader) (sifprep.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	// widths are validated by the Table, which reports every bad row at once
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return table.FromRecords(header, records)
}

// Write serializes a Table as a header row followed by one line per Row.
// No index column is written.
func (p *Parser) Write(w io.Writer, t sifprep.Table) error {
	writer := csv.NewWriter(w)
	writer.Comma = p.conf.Delimiter
	if err := writer.Write(t.GetSchema().ColumnNames()); err != nil {
		return err
	}
	err := t.ForEachRow(func(rowNum int, row sifprep.Row) error {
		return writer.Write(row.Values())
	})
	if err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
