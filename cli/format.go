package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// write writes a value as JSON or YAML. In case of text output, the given table is written.
func write(w io.Writer, output string, v any, t table) error {
	switch output {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %v", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		// encode as JSON first, since model types implement json.Marshaler only
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %v", err)
		}

		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return fmt.Errorf("failed to decode JSON: %v", err)
		}

		b, err = yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %v", err)
		}
		_, err = w.Write(b)
		return err
	default:
		_, err := io.WriteString(w, t.format())
		return err
	}
}

func newTable(headers []string) table {
	rows := make([][]string, 2)
	rows[0] = headers
	rows[1] = make([]string, len(headers))

	return table{rows: rows}
}

type table struct {
	rows [][]string
}

func (t *table) addRow(row []string) {
	t.rows = append(t.rows, row)
}

func (t *table) format() string {
	rows := t.rows

	columns := make([]int, len(rows[0]))
	for i := 0; i < len(rows); i++ {
		for j := 0; j < len(columns); j++ {
			l := utf8.RuneCountInString(rows[i][j])
			if columns[j] < l {
				columns[j] = l
			}
		}
	}

	var sb strings.Builder
	for i := 0; i < len(rows); i++ {
		for j := 0; j < len(columns); j++ {
			if j != 0 {
				sb.WriteString("   ")
			}

			value := rows[i][j]
			sb.WriteString(value)

			l := utf8.RuneCountInString(value)
			for k := 0; k < columns[j]-l; k++ {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}
