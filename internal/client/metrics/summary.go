package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// OpStat summarizes the calls of one remote operation.
type OpStat struct {
	Service    string
	Op         string
	OK         int
	Errors     int
	AvgSeconds float64
}

// Summarize gathers the console collectors from g and folds them into one
// row per service and operation, ordered by service then operation.
func Summarize(g prometheus.Gatherer) ([]OpStat, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	type key struct{ service, op string }
	rows := map[key]*OpStat{}
	row := func(labels []*dto.LabelPair) *OpStat {
		k := key{service: label(labels, "service"), op: label(labels, "op")}
		r, ok := rows[k]
		if !ok {
			r = &OpStat{Service: k.service, Op: k.op}
			rows[k] = r
		}
		return r
	}

	for _, mf := range families {
		switch mf.GetName() {
		case namespace + "_remote_requests_total":
			for _, m := range mf.GetMetric() {
				r := row(m.GetLabel())
				n := int(m.GetCounter().GetValue())
				if label(m.GetLabel(), "outcome") == OutcomeError {
					r.Errors += n
				} else {
					r.OK += n
				}
			}
		case namespace + "_remote_request_duration_seconds":
			for _, m := range mf.GetMetric() {
				h := m.GetHistogram()
				if h.GetSampleCount() == 0 {
					continue
				}
				row(m.GetLabel()).AvgSeconds = h.GetSampleSum() / float64(h.GetSampleCount())
			}
		}
	}

	out := make([]OpStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Service != out[j].Service {
			return out[i].Service < out[j].Service
		}
		return out[i].Op < out[j].Op
	})
	return out, nil
}

func label(labels []*dto.LabelPair, name string) string {
	for _, l := range labels {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}
