package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one row per sample: time, numeric position, exact
// position and the distance between them.
func WriteCSV(w io.Writer, run Run) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "x", "y", "ref_x", "ref_y", "error"}); err != nil {
		return err
	}

	cmp := run.compare()
	for i, p := range run.Result.Positions {
		ref := cmp.Reference[i]
		row := []string{
			formatFloat(run.Result.Times[i]),
			formatFloat(p.X),
			formatFloat(p.Y),
			formatFloat(ref.X),
			formatFloat(ref.Y),
			formatFloat(cmp.Errors[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
