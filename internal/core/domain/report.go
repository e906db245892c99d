package domain

import "time"

// ReportItem is one billed service line inside a report record.
type ReportItem struct {
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Report is an immutable billing declaration: the services billed to a client
// at a point in time, with the computed total, and who generated it.
type Report struct {
	ID          string       `json:"id" bson:"_id"`
	ClientID    string       `json:"client_id" bson:"client_id"`
	Services    []ReportItem `json:"services" bson:"services"`
	TotalValue  float64      `json:"total_value" bson:"total_value"`
	GeneratedBy string       `json:"generated_by" bson:"generated_by"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
}

// TotalValueOf computes the billed total for a set of report items. A missing
// quantity counts as one.
func TotalValueOf(items []ReportItem) float64 {
	var total float64
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += it.Price * float64(qty)
	}
	return total
}
