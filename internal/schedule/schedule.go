// Package schedule turns a loaded frame model into an executable pass
// order. It owns the translation from declared reads, writes and
// depends_on links into the hazard graph, and the validation of the
// names those declarations reference.
package schedule

import (
	"strings"

	"github.com/vk/framegraphgo/internal/config"
)

// Schedule is an ordered frame: the loaded model plus the execution
// order computed for its passes. Pass ids are declaration indices into
// Model.Passes.
type Schedule struct {
	Model *config.Model
	Order []int
}

// Len returns the number of scheduled passes.
func (s *Schedule) Len() int {
	return len(s.Order)
}

// Passes returns the passes in execution order.
func (s *Schedule) Passes() []*config.Pass {
	passes := make([]*config.Pass, 0, len(s.Order))
	for _, id := range s.Order {
		passes = append(passes, s.Model.Passes[id])
	}
	return passes
}

// String renders the order as a chain of pass names, first to last.
func (s *Schedule) String() string {
	var b strings.Builder
	for i, id := range s.Order {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(s.Model.Passes[id].Name)
	}
	return b.String()
}
