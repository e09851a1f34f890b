package cli

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/paulera/team-stats/internal/domain"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (use %s or %s)", format, formatText, formatCSV)
	}
}

// writeCounts は集計結果を書き出す
// text形式は1行に "回数 キー" のみを出力する
func writeCounts(w io.Writer, counts []domain.Count, format string) error {
	switch format {
	case formatCSV:
		csvBytes, err := gocsv.MarshalBytes(&counts)
		if err != nil {
			return fmt.Errorf("failed to marshal csv: %w", err)
		}
		_, err = w.Write(csvBytes)
		return err
	default:
		for _, c := range counts {
			if _, err := fmt.Fprintf(w, "%d %s\n", c.Value, c.Key); err != nil {
				return err
			}
		}
		return nil
	}
}
