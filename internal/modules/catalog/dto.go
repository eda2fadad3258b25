package catalog

type DistrictDTO struct {
	District string  `json:"district"`
	Cost     float64 `json:"cost"`
	Notes    string  `json:"notes,omitempty"`
}
