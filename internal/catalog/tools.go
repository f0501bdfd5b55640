package catalog

import "github.com/heinicus/mobile-mechanic-api/internal/models"

// serviceTools maps each service type to its full tool checklist.
var serviceTools = map[string][]models.ServiceTool{
	// Car services
	"oil_change": {
		{ID: "oil-drain-pan", Name: "Oil Drain Pan (5+ qt)", Category: "basic", Required: true, Description: "Large capacity drain pan"},
		{ID: "socket-set-metric", Name: "Socket Set (Metric)", Category: "basic", Required: true, Description: "10mm-19mm sockets"},
		{ID: "socket-set-standard", Name: "Socket Set (Standard)", Category: "basic", Required: true, Description: "3/8\" to 3/4\" sockets"},
		{ID: "oil-filter-wrench", Name: "Oil Filter Wrench", Category: "basic", Required: true, Description: "Adjustable filter wrench"},
		{ID: "funnel", Name: "Oil Funnel", Category: "basic", Required: true, Description: "Wide mouth funnel"},
		{ID: "jack-stands", Name: "Jack & Jack Stands", Category: "safety", Required: true, Description: "Rated for vehicle weight"},
		{ID: "shop-rags", Name: "Shop Rags/Towels", Category: "basic", Required: true, Description: "Absorbent cleaning rags"},
		{ID: "nitrile-gloves", Name: "Nitrile Gloves", Category: "safety", Required: true, Description: "Chemical resistant gloves"},
		{ID: "torque-wrench", Name: "Torque Wrench", Category: "specialized", Required: false, Description: "For drain plug torque spec"},
	},
	"brake_service": {
		{ID: "brake-caliper-tool", Name: "Brake Caliper Compression Tool", Category: "specialized", Required: true, Description: "Piston compression tool"},
		{ID: "c-clamp-large", Name: "Large C-Clamp", Category: "basic", Required: true, Description: "6\" or larger opening"},
		{ID: "brake-fluid-dot3", Name: "DOT 3 Brake Fluid", Category: "basic", Required: true, Description: "Fresh brake fluid"},
		{ID: "brake-cleaner", Name: "Brake Parts Cleaner", Category: "basic", Required: true, Description: "Non-chlorinated cleaner"},
		{ID: "socket-set-brake", Name: "Socket Set (Brake Specific)", Category: "basic", Required: true, Description: "13mm, 14mm, 17mm common"},
		{ID: "jack-stands-brake", Name: "Jack & Jack Stands", Category: "safety", Required: true, Description: "Heavy duty stands"},
		{ID: "safety-glasses", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Impact resistant"},
		{ID: "wire-brush", Name: "Wire Brush", Category: "basic", Required: false, Description: "For cleaning brake components"},
		{ID: "brake-grease", Name: "Brake Caliper Grease", Category: "specialized", Required: false, Description: "High-temp brake grease"},
	},
	"tire_service": {
		{ID: "tire-iron", Name: "Tire Iron/Lug Wrench", Category: "basic", Required: true, Description: "Cross pattern or telescoping"},
		{ID: "jack-stands-tire", Name: "Jack & Jack Stands", Category: "safety", Required: true, Description: "Proper lifting equipment"},
		{ID: "tire-pressure-gauge", Name: "Digital Tire Pressure Gauge", Category: "basic", Required: true, Description: "Accurate to 1 PSI"},
		{ID: "valve-stem-tool", Name: "Valve Stem Tool", Category: "basic", Required: true, Description: "Core removal tool"},
		{ID: "tire-repair-kit", Name: "Tire Repair Kit", Category: "specialized", Required: false, Description: "Plugs and patches"},
		{ID: "torque-wrench-tire", Name: "Torque Wrench", Category: "specialized", Required: true, Description: "For lug nut torque spec"},
		{ID: "wheel-chocks", Name: "Wheel Chocks", Category: "safety", Required: true, Description: "Prevent vehicle rolling"},
		{ID: "tire-iron-breaker", Name: "Breaker Bar", Category: "basic", Required: false, Description: "For stubborn lug nuts"},
	},
	"battery_service": {
		{ID: "multimeter", Name: "Digital Multimeter", Category: "diagnostic", Required: true, Description: "DC voltage measurement"},
		{ID: "battery-tester", Name: "Battery Load Tester", Category: "diagnostic", Required: true, Description: "Load testing capability"},
		{ID: "terminal-cleaner", Name: "Battery Terminal Cleaner", Category: "basic", Required: true, Description: "Wire brush or spray"},
		{ID: "wire-brush-battery", Name: "Wire Brush Set", Category: "basic", Required: true, Description: "Terminal cleaning brushes"},
		{ID: "socket-set-battery", Name: "Socket Set", Category: "basic", Required: true, Description: "8mm, 10mm, 13mm common"},
		{ID: "safety-glasses-battery", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Acid splash protection"},
		{ID: "nitrile-gloves-battery", Name: "Nitrile Gloves", Category: "safety", Required: true, Description: "Acid resistant gloves"},
		{ID: "battery-carrier", Name: "Battery Carrier", Category: "basic", Required: false, Description: "Safe battery handling"},
	},
	"engine_diagnostic": {
		{ID: "obd2-scanner", Name: "OBD2 Scanner/Reader", Category: "diagnostic", Required: true, Description: "Code reading capability"},
		{ID: "multimeter-engine", Name: "Digital Multimeter", Category: "diagnostic", Required: true, Description: "Voltage/resistance testing"},
		{ID: "compression-tester", Name: "Compression Tester", Category: "diagnostic", Required: false, Description: "Engine compression test"},
		{ID: "fuel-pressure-gauge", Name: "Fuel Pressure Gauge", Category: "diagnostic", Required: false, Description: "Fuel system testing"},
		{ID: "socket-set-engine", Name: "Socket Set (Complete)", Category: "basic", Required: true, Description: "Metric and standard"},
		{ID: "screwdriver-set", Name: "Screwdriver Set", Category: "basic", Required: true, Description: "Phillips and flathead"},
		{ID: "flashlight-led", Name: "LED Flashlight/Headlamp", Category: "basic", Required: true, Description: "Hands-free lighting"},
		{ID: "test-light", Name: "Test Light", Category: "diagnostic", Required: false, Description: "Circuit testing"},
	},
	"transmission": {
		{ID: "transmission-jack", Name: "Transmission Jack", Category: "specialized", Required: true, Description: "Heavy duty transmission jack"},
		{ID: "socket-set-trans", Name: "Socket Set (Complete)", Category: "basic", Required: true, Description: "Large socket set"},
		{ID: "torque-wrench-trans", Name: "Torque Wrench Set", Category: "specialized", Required: true, Description: "Multiple torque ranges"},
		{ID: "drain-pan-large", Name: "Large Drain Pan (10+ qt)", Category: "basic", Required: true, Description: "High capacity pan"},
		{ID: "funnel-trans", Name: "Transmission Funnel", Category: "basic", Required: true, Description: "Long neck funnel"},
		{ID: "jack-stands-heavy", Name: "Heavy Duty Jack Stands", Category: "safety", Required: true, Description: "High weight capacity"},
		{ID: "safety-glasses-trans", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Impact protection"},
		{ID: "gasket-scraper", Name: "Gasket Scraper", Category: "basic", Required: false, Description: "Pan gasket removal"},
	},
	"ac_service": {
		{ID: "ac-manifold-gauge", Name: "A/C Manifold Gauge Set", Category: "specialized", Required: true, Description: "R134a/R1234yf compatible"},
		{ID: "refrigerant-recovery", Name: "Refrigerant Recovery Unit", Category: "specialized", Required: true, Description: "EPA certified equipment"},
		{ID: "leak-detector", Name: "A/C Leak Detector", Category: "diagnostic", Required: true, Description: "Electronic leak detector"},
		{ID: "vacuum-pump", Name: "Vacuum Pump", Category: "specialized", Required: true, Description: "System evacuation"},
		{ID: "thermometer-digital", Name: "Digital Thermometer", Category: "diagnostic", Required: true, Description: "Vent temperature measurement"},
		{ID: "safety-glasses-ac", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Refrigerant protection"},
		{ID: "nitrile-gloves-ac", Name: "Nitrile Gloves", Category: "safety", Required: true, Description: "Chemical resistant"},
		{ID: "uv-dye", Name: "UV Leak Detection Dye", Category: "diagnostic", Required: false, Description: "Leak detection aid"},
	},
	"general_repair": {
		{ID: "socket-set-complete", Name: "Complete Socket Set", Category: "basic", Required: true, Description: "Metric and standard, all sizes"},
		{ID: "wrench-set-complete", Name: "Complete Wrench Set", Category: "basic", Required: true, Description: "Open end and box end"},
		{ID: "screwdriver-set-complete", Name: "Complete Screwdriver Set", Category: "basic", Required: true, Description: "Multiple sizes and types"},
		{ID: "pliers-set", Name: "Pliers Set", Category: "basic", Required: true, Description: "Needle nose, standard, wire cutters"},
		{ID: "multimeter-general", Name: "Digital Multimeter", Category: "diagnostic", Required: false, Description: "Basic electrical testing"},
		{ID: "jack-stands-general", Name: "Jack & Jack Stands", Category: "safety", Required: true, Description: "Vehicle lifting equipment"},
		{ID: "flashlight-general", Name: "LED Flashlight", Category: "basic", Required: true, Description: "Portable lighting"},
		{ID: "extension-set", Name: "Socket Extension Set", Category: "basic", Required: false, Description: "Various length extensions"},
	},
	"emergency_roadside": {
		{ID: "jump-starter", Name: "Portable Jump Starter", Category: "specialized", Required: true, Description: "High capacity jump pack"},
		{ID: "tire-iron-emergency", Name: "Tire Iron", Category: "basic", Required: true, Description: "Lug nut removal"},
		{ID: "jack-emergency", Name: "Emergency Jack", Category: "safety", Required: true, Description: "Portable vehicle jack"},
		{ID: "tire-repair-emergency", Name: "Emergency Tire Repair Kit", Category: "specialized", Required: true, Description: "Plugs and sealant"},
		{ID: "lockout-tools", Name: "Vehicle Lockout Tools", Category: "specialized", Required: false, Description: "Professional lockout kit"},
		{ID: "flashlight-emergency", Name: "Emergency LED Flashlight", Category: "basic", Required: true, Description: "High-powered flashlight"},
		{ID: "safety-vest", Name: "High-Visibility Safety Vest", Category: "safety", Required: true, Description: "ANSI compliant vest"},
		{ID: "road-flares", Name: "Road Flares/Reflectors", Category: "safety", Required: false, Description: "Traffic warning devices"},
	},

	// Motorcycle services
	"motorcycle_oil_change": {
		{ID: "motorcycle-oil-pan", Name: "Motorcycle Oil Drain Pan", Category: "basic", Required: true, Description: "Compact drain pan for motorcycles"},
		{ID: "motorcycle-socket-set", Name: "Motorcycle Socket Set", Category: "basic", Required: true, Description: "8mm-17mm metric sockets"},
		{ID: "motorcycle-oil-filter-wrench", Name: "Motorcycle Oil Filter Wrench", Category: "basic", Required: true, Description: "Compact filter wrench"},
		{ID: "motorcycle-funnel", Name: "Motorcycle Oil Funnel", Category: "basic", Required: true, Description: "Small funnel for tight spaces"},
		{ID: "motorcycle-stand", Name: "Motorcycle Stand/Lift", Category: "safety", Required: true, Description: "Center or side stand"},
		{ID: "shop-rags-mc", Name: "Shop Rags", Category: "basic", Required: true, Description: "Absorbent cleaning rags"},
		{ID: "nitrile-gloves-mc", Name: "Nitrile Gloves", Category: "safety", Required: true, Description: "Chemical resistant gloves"},
		{ID: "torque-wrench-mc", Name: "Torque Wrench (Small)", Category: "specialized", Required: false, Description: "For drain plug torque spec"},
	},
	"motorcycle_brake_inspection": {
		{ID: "motorcycle-brake-tools", Name: "Motorcycle Brake Tool Set", Category: "specialized", Required: true, Description: "Brake pad removal tools"},
		{ID: "brake-fluid-dot4", Name: "DOT 4 Brake Fluid", Category: "basic", Required: true, Description: "High-performance brake fluid"},
		{ID: "brake-cleaner-mc", Name: "Brake Parts Cleaner", Category: "basic", Required: true, Description: "Non-chlorinated cleaner"},
		{ID: "motorcycle-socket-brake", Name: "Motorcycle Socket Set", Category: "basic", Required: true, Description: "8mm, 10mm, 12mm common"},
		{ID: "motorcycle-stand-brake", Name: "Motorcycle Stand", Category: "safety", Required: true, Description: "Stable work platform"},
		{ID: "safety-glasses-mc", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Impact resistant"},
		{ID: "wire-brush-mc", Name: "Wire Brush", Category: "basic", Required: false, Description: "For cleaning brake components"},
	},
	"motorcycle_tire_replacement": {
		{ID: "motorcycle-tire-irons", Name: "Motorcycle Tire Irons", Category: "basic", Required: true, Description: "Specialized tire removal tools"},
		{ID: "motorcycle-bead-breaker", Name: "Motorcycle Bead Breaker", Category: "specialized", Required: true, Description: "Tire bead breaking tool"},
		{ID: "tire-pressure-gauge-mc", Name: "Digital Tire Pressure Gauge", Category: "basic", Required: true, Description: "Accurate to 1 PSI"},
		{ID: "valve-stem-tool-mc", Name: "Valve Stem Tool", Category: "basic", Required: true, Description: "Core removal tool"},
		{ID: "motorcycle-wheel-balancer", Name: "Motorcycle Wheel Balancer", Category: "specialized", Required: false, Description: "Wheel balancing equipment"},
		{ID: "motorcycle-stand-tire", Name: "Motorcycle Stand", Category: "safety", Required: true, Description: "Wheel removal support"},
		{ID: "tire-lubricant", Name: "Tire Mounting Lubricant", Category: "basic", Required: true, Description: "Soap solution for mounting"},
	},
	"motorcycle_chain_service": {
		{ID: "chain-cleaning-kit", Name: "Chain Cleaning Kit", Category: "specialized", Required: true, Description: "Chain cleaner and brushes"},
		{ID: "chain-lubricant", Name: "Chain Lubricant", Category: "basic", Required: true, Description: "High-quality chain lube"},
		{ID: "chain-tension-tool", Name: "Chain Tension Tool", Category: "specialized", Required: true, Description: "Chain adjustment tool"},
		{ID: "motorcycle-socket-chain", Name: "Motorcycle Socket Set", Category: "basic", Required: true, Description: "For axle and adjuster nuts"},
		{ID: "motorcycle-stand-chain", Name: "Motorcycle Rear Stand", Category: "safety", Required: true, Description: "Rear wheel lift"},
		{ID: "chain-wear-gauge", Name: "Chain Wear Gauge", Category: "diagnostic", Required: false, Description: "Chain stretch measurement"},
		{ID: "shop-rags-chain", Name: "Shop Rags", Category: "basic", Required: true, Description: "For cleaning"},
	},
	"motorcycle_battery_service": {
		{ID: "multimeter-mc", Name: "Digital Multimeter", Category: "diagnostic", Required: true, Description: "DC voltage measurement"},
		{ID: "battery-tester-mc", Name: "Motorcycle Battery Tester", Category: "diagnostic", Required: true, Description: "Small battery testing"},
		{ID: "terminal-cleaner-mc", Name: "Battery Terminal Cleaner", Category: "basic", Required: true, Description: "Wire brush or spray"},
		{ID: "motorcycle-socket-battery", Name: "Small Socket Set", Category: "basic", Required: true, Description: "6mm, 8mm, 10mm common"},
		{ID: "safety-glasses-mc-battery", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Acid splash protection"},
		{ID: "nitrile-gloves-mc-battery", Name: "Nitrile Gloves", Category: "safety", Required: true, Description: "Acid resistant gloves"},
		{ID: "battery-tender", Name: "Battery Tender/Charger", Category: "specialized", Required: false, Description: "Motorcycle battery charger"},
	},
	"motorcycle_diagnostic": {
		{ID: "motorcycle-diagnostic-tool", Name: "Motorcycle Diagnostic Scanner", Category: "diagnostic", Required: true, Description: "Motorcycle-specific scanner"},
		{ID: "multimeter-mc-diag", Name: "Digital Multimeter", Category: "diagnostic", Required: true, Description: "Voltage/resistance testing"},
		{ID: "motorcycle-socket-diag", Name: "Motorcycle Socket Set", Category: "basic", Required: true, Description: "Complete metric set"},
		{ID: "screwdriver-set-mc", Name: "Precision Screwdriver Set", Category: "basic", Required: true, Description: "Small Phillips and flathead"},
		{ID: "flashlight-mc", Name: "LED Flashlight/Headlamp", Category: "basic", Required: true, Description: "Hands-free lighting"},
		{ID: "test-light-mc", Name: "Test Light", Category: "diagnostic", Required: false, Description: "Circuit testing"},
	},

	// Scooter services
	"scooter_oil_change": {
		{ID: "scooter-oil-pan", Name: "Small Oil Drain Pan", Category: "basic", Required: true, Description: "Compact drain pan for scooters"},
		{ID: "scooter-socket-set", Name: "Small Socket Set", Category: "basic", Required: true, Description: "6mm-14mm metric sockets"},
		{ID: "scooter-oil-filter-wrench", Name: "Small Oil Filter Wrench", Category: "basic", Required: true, Description: "Compact filter wrench"},
		{ID: "scooter-funnel", Name: "Small Funnel", Category: "basic", Required: true, Description: "Precision funnel"},
		{ID: "scooter-stand", Name: "Scooter Center Stand", Category: "safety", Required: true, Description: "Built-in or portable stand"},
		{ID: "shop-rags-scooter", Name: "Shop Rags", Category: "basic", Required: true, Description: "Absorbent cleaning rags"},
		{ID: "nitrile-gloves-scooter", Name: "Nitrile Gloves", Category: "safety", Required: true, Description: "Chemical resistant gloves"},
	},
	"scooter_brake_inspection": {
		{ID: "scooter-brake-tools", Name: "Scooter Brake Tool Set", Category: "specialized", Required: true, Description: "Small brake tools"},
		{ID: "brake-fluid-scooter", Name: "DOT 3/4 Brake Fluid", Category: "basic", Required: true, Description: "Brake fluid for scooters"},
		{ID: "brake-cleaner-scooter", Name: "Brake Parts Cleaner", Category: "basic", Required: true, Description: "Non-chlorinated cleaner"},
		{ID: "scooter-socket-brake", Name: "Small Socket Set", Category: "basic", Required: true, Description: "6mm, 8mm, 10mm common"},
		{ID: "scooter-stand-brake", Name: "Scooter Stand", Category: "safety", Required: true, Description: "Stable work platform"},
		{ID: "safety-glasses-scooter", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Impact resistant"},
	},
	"scooter_tire_replacement": {
		{ID: "scooter-tire-irons", Name: "Small Tire Irons", Category: "basic", Required: true, Description: "Compact tire removal tools"},
		{ID: "tire-pressure-gauge-scooter", Name: "Digital Tire Pressure Gauge", Category: "basic", Required: true, Description: "Accurate to 1 PSI"},
		{ID: "valve-stem-tool-scooter", Name: "Valve Stem Tool", Category: "basic", Required: true, Description: "Core removal tool"},
		{ID: "scooter-stand-tire", Name: "Scooter Stand", Category: "safety", Required: true, Description: "Wheel removal support"},
		{ID: "tire-lubricant-scooter", Name: "Tire Mounting Lubricant", Category: "basic", Required: true, Description: "Soap solution for mounting"},
		{ID: "tire-repair-kit-scooter", Name: "Small Tire Repair Kit", Category: "specialized", Required: false, Description: "Plugs for small tires"},
	},
	"scooter_carburetor_clean": {
		{ID: "carburetor-cleaner", Name: "Carburetor Cleaner", Category: "specialized", Required: true, Description: "Carburetor cleaning solution"},
		{ID: "carburetor-rebuild-kit", Name: "Carburetor Rebuild Kit", Category: "specialized", Required: false, Description: "Gaskets and seals"},
		{ID: "scooter-socket-carb", Name: "Small Socket Set", Category: "basic", Required: true, Description: "For carburetor removal"},
		{ID: "screwdriver-set-scooter", Name: "Precision Screwdriver Set", Category: "basic", Required: true, Description: "Small Phillips and flathead"},
		{ID: "compressed-air", Name: "Compressed Air", Category: "basic", Required: true, Description: "For blowing out passages"},
		{ID: "safety-glasses-carb", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Chemical splash protection"},
		{ID: "nitrile-gloves-carb", Name: "Nitrile Gloves", Category: "safety", Required: true, Description: "Chemical resistant gloves"},
	},
	"scooter_battery_service": {
		{ID: "multimeter-scooter", Name: "Digital Multimeter", Category: "diagnostic", Required: true, Description: "DC voltage measurement"},
		{ID: "battery-tester-scooter", Name: "Small Battery Tester", Category: "diagnostic", Required: true, Description: "Small battery testing"},
		{ID: "terminal-cleaner-scooter", Name: "Battery Terminal Cleaner", Category: "basic", Required: true, Description: "Wire brush or spray"},
		{ID: "scooter-socket-battery", Name: "Small Socket Set", Category: "basic", Required: true, Description: "6mm, 8mm common"},
		{ID: "safety-glasses-scooter-battery", Name: "Safety Glasses", Category: "safety", Required: true, Description: "Acid splash protection"},
		{ID: "nitrile-gloves-scooter-battery", Name: "Nitrile Gloves", Category: "safety", Required: true, Description: "Acid resistant gloves"},
	},
	"scooter_diagnostic": {
		{ID: "scooter-diagnostic-tool", Name: "Scooter Diagnostic Scanner", Category: "diagnostic", Required: false, Description: "Basic diagnostic tool"},
		{ID: "multimeter-scooter-diag", Name: "Digital Multimeter", Category: "diagnostic", Required: true, Description: "Voltage/resistance testing"},
		{ID: "scooter-socket-diag", Name: "Small Socket Set", Category: "basic", Required: true, Description: "Complete small metric set"},
		{ID: "screwdriver-set-scooter-diag", Name: "Precision Screwdriver Set", Category: "basic", Required: true, Description: "Small Phillips and flathead"},
		{ID: "flashlight-scooter", Name: "LED Flashlight", Category: "basic", Required: true, Description: "Portable lighting"},
		{ID: "test-light-scooter", Name: "Test Light", Category: "diagnostic", Required: false, Description: "Circuit testing"},
	},
}

// ToolsForService returns the full tool checklist for a service type.
func ToolsForService(serviceType string) []models.ServiceTool {
	return serviceTools[serviceType]
}

// RequiredToolsForService returns only the tools marked required.
func RequiredToolsForService(serviceType string) []models.ServiceTool {
	var out []models.ServiceTool
	for _, tool := range serviceTools[serviceType] {
		if tool.Required {
			out = append(out, tool)
		}
	}
	return out
}

// ToolsValidation summarizes a checklist against the required tool set.
type ToolsValidation struct {
	Complete        bool                 `json:"complete"`
	MissingRequired []models.ServiceTool `json:"missing_required"`
	TotalRequired   int                  `json:"total_required"`
	TotalChecked    int                  `json:"total_checked"`
}

// ValidateToolsCompletion reports which required tools are still unchecked.
// Checked tools outside the required set count toward TotalChecked only.
func ValidateToolsCompletion(serviceType string, checked map[string]bool) ToolsValidation {
	required := RequiredToolsForService(serviceType)

	var missing []models.ServiceTool
	for _, tool := range required {
		if !checked[tool.ID] {
			missing = append(missing, tool)
		}
	}

	totalChecked := 0
	for _, ok := range checked {
		if ok {
			totalChecked++
		}
	}

	return ToolsValidation{
		Complete:        len(missing) == 0,
		MissingRequired: missing,
		TotalRequired:   len(required),
		TotalChecked:    totalChecked,
	}
}

// ToolLoadoutSuggestions lists tool names to pack for a job, adding the
// lifting equipment appropriate to the vehicle class.
func ToolLoadoutSuggestions(serviceType string, vehicleType models.VehicleType) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, tool := range RequiredToolsForService(serviceType) {
		add(tool.Name)
	}

	switch vehicleType {
	case models.VehicleMotorcycle:
		add("Motorcycle Stand")
		add("Chain Lubricant")
	case models.VehicleScooter:
		add("Scooter Center Stand")
		add("Small Tool Kit")
	default:
		add("Floor Jack")
		add("Jack Stands")
	}

	return out
}
