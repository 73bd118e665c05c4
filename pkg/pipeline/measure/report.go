package measure

import (
	"sort"
	"time"
)

// Row is one stage of a Report.
type Row struct {
	Step      string
	Values    int64
	Average   time.Duration
	Total     time.Duration
	Transport map[string]time.Duration
}

// Report flattens msr into rows sorted by stage name. Stages that never saw a
// value and never finished are left out.
func Report(msr Measure) []Row {
	rows := []Row{}

	for name, mt := range msr.AllMetrics() {
		if mt.Count() == 0 && mt.GetTotalDuration() == 0 {
			continue
		}

		row := Row{
			Step:      name,
			Values:    mt.Count(),
			Average:   mt.AVGDuration(),
			Total:     mt.GetTotalDuration(),
			Transport: map[string]time.Duration{},
		}
		for input, info := range mt.AVGTransportDuration() {
			row.Transport[input] = info.Elapsed
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Step < rows[j].Step
	})

	return rows
}
