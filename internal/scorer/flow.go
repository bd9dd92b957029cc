package scorer

import (
	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/geom"
)

// goodFlowThreshold marks routes with noticeably smooth sequences.
const goodFlowThreshold = 0.70

// FlowScore measures movement quality over a route's hand line: half the
// score is true left/right alternation (consecutive lateral move pairs that
// reverse side), half is upward consistency. Routes with fewer than three
// hand holds have no measurable flow.
func FlowScore(r *domain.Route) (float64, bool) {
	line := r.HandLine()
	if len(line) < 3 {
		return 0, false
	}

	alternating := 0
	for i := 0; i < len(line)-2; i++ {
		d1 := geom.HorizontalSide(line[i].Col, line[i+1].Col)
		d2 := geom.HorizontalSide(line[i+1].Col, line[i+2].Col)
		if d1 != geom.Neutral && d2 != geom.Neutral && d1 != d2 {
			alternating++
		}
	}
	alternationRatio := float64(alternating) / float64(len(line)-2)

	upward := 0
	for i := 0; i < len(line)-1; i++ {
		if geom.Upward(line[i].Row, line[i+1].Row) {
			upward++
		}
	}
	upwardRatio := float64(upward) / float64(len(line)-1)

	score := 0.5*alternationRatio + 0.5*upwardRatio
	return score, score >= goodFlowThreshold
}
