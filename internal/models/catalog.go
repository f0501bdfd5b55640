package models

// ServiceTool is one item on a service's tool checklist.
type ServiceTool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// ServiceCategory describes one entry in the static service catalog.
type ServiceCategory struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	EstimatedTime string        `json:"estimated_time"`
	BasePrice     float64       `json:"base_price"`
	VehicleTypes  []VehicleType `json:"vehicle_types"`
	RequiredTools []ServiceTool `json:"required_tools"`
}

// PartPrice is a commonly consumed part with its list price.
type PartPrice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PriceRange bounds the expected total for a service.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ServicePricing holds the pricing table entry for a service type.
type ServicePricing struct {
	BasePrice      float64     `json:"base_price"`
	LaborRate      float64     `json:"labor_rate"` // per hour
	EstimatedHours float64     `json:"estimated_hours"`
	CommonParts    []PartPrice `json:"common_parts"`
	PriceRange     PriceRange  `json:"price_range"`
}

// QuoteEstimate is a computed pricing suggestion for a service request.
type QuoteEstimate struct {
	ServiceType    string     `json:"service_type"`
	LaborCost      float64    `json:"labor_cost"`
	PartsCost      float64    `json:"parts_cost"`
	TotalCost      float64    `json:"total_cost"`
	EstimatedHours float64    `json:"estimated_hours"`
	PriceRange     PriceRange `json:"price_range"`
}
