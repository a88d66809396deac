package probe

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
)

// Run executes probes one after another. observe is called with each result
// before the next probe is dispatched. Run stops early only when ctx is done.
func Run(ctx context.Context, probes []Probe, observe func(Probe, *Result)) []*Result {
	results := make([]*Result, 0, len(probes))

	for _, p := range probes {
		if err := ctx.Err(); err != nil {
			log.WithFields(log.Fields{"kind": "probe", "name": p.Name()}).Warnf("skipping remaining probes: %s", err)
			break
		}

		r := p.Exec(ctx)
		results = append(results, r)

		if observe != nil {
			observe(p, r)
		}
	}

	return results
}

// RunSequence executes probes in declaration order and reports every result
// to w before dispatching the next one.
func RunSequence(ctx context.Context, w io.Writer, probes ...Probe) []*Result {
	return Run(ctx, probes, func(_ Probe, r *Result) {
		Report(w, r)
	})
}
