package costfunction

// CostFunction maps an edge's travel time and risk to a single search cost.
type CostFunction interface {
	GetWeight(eta, risk float64) float64
}

// BlendedCostFunction trades eta against risk with a blend factor alpha in
// [0,1]: 1.0 minimizes travel time only, 0.0 minimizes risk only. Note the
// blend mixes minutes with a unitless risk score; the search heuristic stays
// in distance units, so A* optimality is a best-effort approximation. That
// trade-off is deliberate.
type BlendedCostFunction struct {
	alpha float64
}

func NewBlendedCostFunction(alpha float64) *BlendedCostFunction {
	return &BlendedCostFunction{alpha: alpha}
}

func (cf *BlendedCostFunction) GetWeight(eta, risk float64) float64 {
	return cf.alpha*eta + (1-cf.alpha)*risk
}

func (cf *BlendedCostFunction) GetAlpha() float64 {
	return cf.alpha
}
