package export

import (
	"github.com/san-kum/trajsim/internal/analysis"
	"github.com/san-kum/trajsim/internal/dynamo"
)

// Run is a computed trajectory together with what produced it.
type Run struct {
	Name    string
	Config  dynamo.Config
	Initial dynamo.State
	Result  *dynamo.Result
}

func (r Run) compare() analysis.Comparison {
	return analysis.Compare(r.Result.Positions, r.Initial.Pos, r.Initial.Vel, r.Config.Dt)
}
