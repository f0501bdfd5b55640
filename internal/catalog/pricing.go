package catalog

import "github.com/heinicus/mobile-mechanic-api/internal/models"

var servicePricing = map[string]models.ServicePricing{
	"oil_change": {
		BasePrice: 45, LaborRate: 75, EstimatedHours: 0.5,
		CommonParts: []models.PartPrice{
			{Name: "Conventional Oil (5qt)", Price: 25},
			{Name: "Synthetic Oil (5qt)", Price: 45},
			{Name: "Oil Filter", Price: 15},
		},
		PriceRange: models.PriceRange{Min: 75, Max: 95},
	},
	"brake_service": {
		BasePrice: 150, LaborRate: 85, EstimatedHours: 2,
		CommonParts: []models.PartPrice{
			{Name: "Brake Pads (Front)", Price: 80},
			{Name: "Brake Pads (Rear)", Price: 70},
			{Name: "Brake Rotors (Pair)", Price: 120},
			{Name: "Brake Fluid", Price: 15},
		},
		PriceRange: models.PriceRange{Min: 150, Max: 400},
	},
	"tire_service": {
		BasePrice: 80, LaborRate: 75, EstimatedHours: 1,
		CommonParts: []models.PartPrice{
			{Name: "Tire (Each)", Price: 100},
			{Name: "Valve Stem", Price: 5},
			{Name: "Wheel Weight", Price: 3},
		},
		PriceRange: models.PriceRange{Min: 80, Max: 500},
	},
	"battery_service": {
		BasePrice: 120, LaborRate: 75, EstimatedHours: 0.75,
		CommonParts: []models.PartPrice{
			{Name: "Car Battery", Price: 120},
			{Name: "Battery Terminal", Price: 15},
			{Name: "Battery Cable", Price: 25},
		},
		PriceRange: models.PriceRange{Min: 120, Max: 200},
	},
	"engine_diagnostic": {
		BasePrice: 100, LaborRate: 85, EstimatedHours: 1.5,
		CommonParts: []models.PartPrice{
			{Name: "Diagnostic Fee", Price: 100},
			{Name: "Computer Scan", Price: 50},
		},
		PriceRange: models.PriceRange{Min: 100, Max: 250},
	},
	"transmission": {
		BasePrice: 200, LaborRate: 95, EstimatedHours: 3,
		CommonParts: []models.PartPrice{
			{Name: "Transmission Fluid", Price: 35},
			{Name: "Transmission Filter", Price: 45},
			{Name: "Gasket Set", Price: 60},
		},
		PriceRange: models.PriceRange{Min: 200, Max: 800},
	},
	"ac_service": {
		BasePrice: 90, LaborRate: 85, EstimatedHours: 1.5,
		CommonParts: []models.PartPrice{
			{Name: "Refrigerant (R134a)", Price: 40},
			{Name: "AC Filter", Price: 25},
			{Name: "AC Compressor Oil", Price: 20},
		},
		PriceRange: models.PriceRange{Min: 90, Max: 300},
	},
	"general_repair": {
		BasePrice: 75, LaborRate: 85, EstimatedHours: 2,
		CommonParts: []models.PartPrice{
			{Name: "Miscellaneous Parts", Price: 50},
		},
		PriceRange: models.PriceRange{Min: 75, Max: 500},
	},
	"emergency_roadside": {
		BasePrice: 65, LaborRate: 95, EstimatedHours: 1,
		CommonParts: []models.PartPrice{
			{Name: "Emergency Service Fee", Price: 65},
			{Name: "Towing (per mile)", Price: 3},
		},
		PriceRange: models.PriceRange{Min: 65, Max: 200},
	},
}

// PricingForService looks up the pricing table entry for a service type.
func PricingForService(serviceType string) (models.ServicePricing, bool) {
	p, ok := servicePricing[serviceType]
	return p, ok
}

// EstimateQuote computes the quick estimate for a service: base price plus
// labor at the table rate for the estimated hours. Parts are not included
// until the mechanic itemizes them.
func EstimateQuote(serviceType string) (models.QuoteEstimate, bool) {
	p, ok := servicePricing[serviceType]
	if !ok {
		return models.QuoteEstimate{}, false
	}
	labor := p.LaborRate * p.EstimatedHours
	return models.QuoteEstimate{
		ServiceType:    serviceType,
		LaborCost:      labor,
		TotalCost:      p.BasePrice + labor,
		EstimatedHours: p.EstimatedHours,
		PriceRange:     p.PriceRange,
	}, true
}

// EstimateQuoteWithParts extends the quick estimate with itemized parts.
func EstimateQuoteWithParts(serviceType string, parts []models.JobPart) (models.QuoteEstimate, bool) {
	est, ok := EstimateQuote(serviceType)
	if !ok {
		return models.QuoteEstimate{}, false
	}
	for _, p := range parts {
		est.PartsCost += p.Price * float64(p.Quantity)
	}
	est.TotalCost += est.PartsCost
	return est, true
}
