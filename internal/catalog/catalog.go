// Package catalog holds the static service catalog: the services offered per
// vehicle class, the tool checklist for each, and the pricing table used to
// compute quote estimates.
package catalog

import "github.com/heinicus/mobile-mechanic-api/internal/models"

var serviceCategories = []models.ServiceCategory{
	// Car services
	{
		ID:            "oil_change",
		Title:         "Oil Change",
		Description:   "Full synthetic or conventional oil change service",
		EstimatedTime: "30-45 min",
		BasePrice:     45,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},
	{
		ID:            "brake_service",
		Title:         "Brake Service",
		Description:   "Brake pad replacement, rotor service, brake fluid",
		EstimatedTime: "1-2 hours",
		BasePrice:     150,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},
	{
		ID:            "tire_service",
		Title:         "Tire Service",
		Description:   "Tire installation, rotation, balancing, repair",
		EstimatedTime: "45-90 min",
		BasePrice:     80,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},
	{
		ID:            "battery_service",
		Title:         "Battery Service",
		Description:   "Battery testing, replacement, charging system check",
		EstimatedTime: "30-60 min",
		BasePrice:     120,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},
	{
		ID:            "engine_diagnostic",
		Title:         "Engine Diagnostic",
		Description:   "Computer diagnostic, check engine light, performance issues",
		EstimatedTime: "1-2 hours",
		BasePrice:     100,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},
	{
		ID:            "transmission",
		Title:         "Transmission",
		Description:   "Transmission service, fluid change, repair",
		EstimatedTime: "2-4 hours",
		BasePrice:     200,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},
	{
		ID:            "ac_service",
		Title:         "A/C Service",
		Description:   "Air conditioning repair, recharge, leak detection",
		EstimatedTime: "1-2 hours",
		BasePrice:     90,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},
	{
		ID:            "general_repair",
		Title:         "General Repair",
		Description:   "Other automotive repairs and maintenance",
		EstimatedTime: "Varies",
		BasePrice:     75,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},
	{
		ID:            "emergency_roadside",
		Title:         "Emergency Roadside",
		Description:   "Jump start, lockout, flat tire, towing assistance",
		EstimatedTime: "30-60 min",
		BasePrice:     65,
		VehicleTypes:  []models.VehicleType{models.VehicleCar},
	},

	// Motorcycle services
	{
		ID:            "motorcycle_oil_change",
		Title:         "Motorcycle Oil Change",
		Description:   "Full synthetic or conventional motorcycle oil change",
		EstimatedTime: "20-30 min",
		BasePrice:     60,
		VehicleTypes:  []models.VehicleType{models.VehicleMotorcycle},
	},
	{
		ID:            "motorcycle_brake_inspection",
		Title:         "Motorcycle Brake Inspection",
		Description:   "Brake pad inspection, fluid check, system test",
		EstimatedTime: "30-45 min",
		BasePrice:     40,
		VehicleTypes:  []models.VehicleType{models.VehicleMotorcycle},
	},
	{
		ID:            "motorcycle_tire_replacement",
		Title:         "Motorcycle Tire Replacement",
		Description:   "Single tire replacement and balancing",
		EstimatedTime: "45-60 min",
		BasePrice:     45,
		VehicleTypes:  []models.VehicleType{models.VehicleMotorcycle},
	},
	{
		ID:            "motorcycle_chain_service",
		Title:         "Chain Adjustment & Lube",
		Description:   "Chain cleaning, lubrication, and tension adjustment",
		EstimatedTime: "20-30 min",
		BasePrice:     30,
		VehicleTypes:  []models.VehicleType{models.VehicleMotorcycle},
	},
	{
		ID:            "motorcycle_battery_service",
		Title:         "Motorcycle Battery Service",
		Description:   "Battery test, replacement, and charging system check",
		EstimatedTime: "15-30 min",
		BasePrice:     25,
		VehicleTypes:  []models.VehicleType{models.VehicleMotorcycle},
	},
	{
		ID:            "motorcycle_diagnostic",
		Title:         "Motorcycle Diagnostic",
		Description:   "Computer diagnostic and performance troubleshooting",
		EstimatedTime: "45-90 min",
		BasePrice:     75,
		VehicleTypes:  []models.VehicleType{models.VehicleMotorcycle},
	},

	// Scooter services
	{
		ID:            "scooter_oil_change",
		Title:         "Scooter Oil Change",
		Description:   "Oil change service for scooters and mopeds",
		EstimatedTime: "15-25 min",
		BasePrice:     35,
		VehicleTypes:  []models.VehicleType{models.VehicleScooter},
	},
	{
		ID:            "scooter_brake_inspection",
		Title:         "Scooter Brake Inspection",
		Description:   "Brake system inspection and adjustment",
		EstimatedTime: "20-30 min",
		BasePrice:     30,
		VehicleTypes:  []models.VehicleType{models.VehicleScooter},
	},
	{
		ID:            "scooter_tire_replacement",
		Title:         "Scooter Tire Replacement",
		Description:   "Small tire replacement and tube repair",
		EstimatedTime: "30-45 min",
		BasePrice:     35,
		VehicleTypes:  []models.VehicleType{models.VehicleScooter},
	},
	{
		ID:            "scooter_carburetor_clean",
		Title:         "Carburetor Cleaning",
		Description:   "Carburetor cleaning and adjustment service",
		EstimatedTime: "60-90 min",
		BasePrice:     65,
		VehicleTypes:  []models.VehicleType{models.VehicleScooter},
	},
	{
		ID:            "scooter_battery_service",
		Title:         "Scooter Battery Service",
		Description:   "Battery test and replacement for scooters",
		EstimatedTime: "15-20 min",
		BasePrice:     20,
		VehicleTypes:  []models.VehicleType{models.VehicleScooter},
	},
	{
		ID:            "scooter_diagnostic",
		Title:         "Scooter Diagnostic",
		Description:   "Basic diagnostic and troubleshooting",
		EstimatedTime: "30-60 min",
		BasePrice:     50,
		VehicleTypes:  []models.VehicleType{models.VehicleScooter},
	},
}

// Services returns the full catalog with tool checklists resolved.
func Services() []models.ServiceCategory {
	out := make([]models.ServiceCategory, len(serviceCategories))
	copy(out, serviceCategories)
	for i := range out {
		out[i].RequiredTools = serviceTools[out[i].ID]
	}
	return out
}

// ServiceByID looks up a single catalog entry.
func ServiceByID(id string) (models.ServiceCategory, bool) {
	for _, c := range serviceCategories {
		if c.ID == id {
			c.RequiredTools = serviceTools[c.ID]
			return c, true
		}
	}
	return models.ServiceCategory{}, false
}

// ServicesForVehicleType filters the catalog by vehicle class.
func ServicesForVehicleType(vehicleType models.VehicleType) []models.ServiceCategory {
	var out []models.ServiceCategory
	for _, c := range serviceCategories {
		for _, vt := range c.VehicleTypes {
			if vt == vehicleType {
				c.RequiredTools = serviceTools[c.ID]
				out = append(out, c)
				break
			}
		}
	}
	return out
}
