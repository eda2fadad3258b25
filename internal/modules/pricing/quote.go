package pricing

import (
	"math"

	"makeupstudio/internal/domain"
)

type Line struct {
	ServiceID    int64   `json:"service_id"`
	ServiceName  string  `json:"service_name"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	LineTotal    float64 `json:"line_total"`
	LineDuration int     `json:"line_duration"`
}

type Breakdown struct {
	Lines          []Line  `json:"lines"`
	Subtotal       float64 `json:"subtotal"`
	TransportCost  float64 `json:"transport_cost"`
	NightShiftCost float64 `json:"night_shift_cost"`
	Total          float64 `json:"total"`
	TotalDuration  int     `json:"total_duration"`
}

// ComputeBreakdown prices a validated selection. It walks the catalog in
// order, so line order is stable and repeated calls over the same snapshots
// produce identical breakdowns. Selection ids absent from the catalog are
// skipped. Transport cost applies only to home visits.
func ComputeBreakdown(
	cfg Config,
	selection map[int64]int,
	catalog []domain.Service,
	transport *TransportLookup,
	locationType domain.LocationType,
	district string,
	timeOfDay string,
) Breakdown {
	b := Breakdown{Lines: []Line{}}

	for _, svc := range catalog {
		qty := selection[svc.ID]
		if qty <= 0 {
			continue
		}
		line := Line{
			ServiceID:    svc.ID,
			ServiceName:  svc.Name,
			UnitPrice:    svc.Price,
			Quantity:     qty,
			LineTotal:    round2(svc.Price * float64(qty)),
			LineDuration: svc.Duration * qty,
		}
		b.Lines = append(b.Lines, line)
		b.Subtotal += line.LineTotal
		b.TotalDuration += line.LineDuration
	}
	b.Subtotal = round2(b.Subtotal)

	if locationType == domain.LocationHome && transport != nil {
		b.TransportCost = transport.Lookup(district).Cost
	}

	b.NightShiftCost = cfg.Surcharge(timeOfDay)
	b.Total = round2(b.Subtotal + b.TransportCost + b.NightShiftCost)

	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
