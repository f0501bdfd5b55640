package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
)

// DiagnosisRequest carries the symptom description to analyze.
type DiagnosisRequest struct {
	VehicleInfo       models.VehicleInfo `json:"vehicle_info" validate:"required"`
	Symptoms          string             `json:"symptoms" validate:"required,min=10"`
	AdditionalContext string             `json:"additional_context,omitempty"`
}

// DiagnosisService maps free-text symptoms to likely causes, diagnostic
// steps, and a recommended service using keyword heuristics.
type DiagnosisService struct {
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewDiagnosisService constructs a DiagnosisService.
func NewDiagnosisService(validate *validator.Validate, logger *zap.Logger) *DiagnosisService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiagnosisService{validator: validate, logger: logger, now: time.Now}
}

// Diagnose analyzes the symptom text and returns a structured result.
func (s *DiagnosisService) Diagnose(ctx context.Context, req DiagnosisRequest) (*models.DiagnosticResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "please provide more detailed symptoms")
	}

	symptoms := strings.ToLower(req.Symptoms)
	result := classifySymptoms(symptoms)

	result.ID = uuid.NewString()
	result.VehicleInfo = req.VehicleInfo
	result.Symptoms = req.Symptoms
	result.AdditionalContext = req.AdditionalContext
	result.CreatedAt = s.now().UTC()

	adjustForVehicle(result, req.VehicleInfo, result.CreatedAt.Year())

	s.logger.Info("diagnosis generated",
		zap.String("make", req.VehicleInfo.Make),
		zap.String("model", req.VehicleInfo.Model),
		zap.String("urgency", string(result.UrgencyLevel)),
		zap.String("confidence", string(result.Confidence)),
	)

	return result, nil
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func classifySymptoms(symptoms string) *models.DiagnosticResult {
	switch {
	case containsAny(symptoms, "engine", "noise", "grinding"):
		urgency := models.UrgencyMedium
		if strings.Contains(symptoms, "grinding") {
			urgency = models.UrgencyHigh
		}
		return &models.DiagnosticResult{
			LikelyCauses: []string{
				"Worn engine bearings or connecting rod bearings",
				"Timing chain or belt issues",
				"Low oil pressure or oil pump failure",
				"Carbon buildup in combustion chambers",
			},
			DiagnosticSteps: []string{
				"Perform comprehensive engine diagnostic scan",
				"Check oil level and quality",
				"Listen to engine with stethoscope to isolate noise source",
				"Inspect timing components and belt/chain tension",
			},
			UrgencyLevel:            urgency,
			Confidence:              models.ConfidenceHigh,
			MatchedServices:         []string{"Engine Diagnostic", "Oil Change", "Engine Repair"},
			RecommendedServiceTypes: []string{"engine_diagnostic"},
			EstimatedCost:           &models.CostBand{Min: 150, Max: 800},
		}
	case containsAny(symptoms, "brake", "squeal", "stopping"):
		return &models.DiagnosticResult{
			LikelyCauses: []string{
				"Worn brake pads requiring replacement",
				"Warped brake rotors causing vibration",
				"Low brake fluid or brake fluid leak",
				"Brake caliper sticking or malfunction",
			},
			DiagnosticSteps: []string{
				"Visual inspection of brake pads and rotors",
				"Check brake fluid level and color",
				"Test brake pedal feel and travel",
				"Measure rotor thickness and runout",
			},
			UrgencyLevel:            models.UrgencyHigh,
			Confidence:              models.ConfidenceHigh,
			MatchedServices:         []string{"Brake Service", "Brake Pad Replacement", "Brake Inspection"},
			RecommendedServiceTypes: []string{"brake_service"},
			EstimatedCost:           &models.CostBand{Min: 200, Max: 600},
		}
	case containsAny(symptoms, "transmission", "shifting", "gear"):
		return &models.DiagnosticResult{
			LikelyCauses: []string{
				"Low transmission fluid or fluid leak",
				"Worn transmission bands or clutches",
				"Faulty transmission solenoids",
				"Torque converter issues",
			},
			DiagnosticSteps: []string{
				"Check transmission fluid level and condition",
				"Perform transmission diagnostic scan",
				"Road test to evaluate shift quality",
				"Inspect for external leaks",
			},
			UrgencyLevel:            models.UrgencyMedium,
			Confidence:              models.ConfidenceMedium,
			MatchedServices:         []string{"Transmission Service", "Transmission Repair", "Fluid Change"},
			RecommendedServiceTypes: []string{"transmission"},
			EstimatedCost:           &models.CostBand{Min: 300, Max: 1200},
		}
	case containsAny(symptoms, "battery", "start", "electrical"):
		urgency := models.UrgencyMedium
		if strings.Contains(symptoms, "won't start") {
			urgency = models.UrgencyEmergency
		}
		return &models.DiagnosticResult{
			LikelyCauses: []string{
				"Weak or failing battery",
				"Corroded battery terminals",
				"Faulty alternator not charging properly",
				"Parasitic electrical drain",
			},
			DiagnosticSteps: []string{
				"Test battery voltage and load capacity",
				"Check alternator charging rate",
				"Inspect battery terminals for corrosion",
				"Perform parasitic draw test if needed",
			},
			UrgencyLevel:            urgency,
			Confidence:              models.ConfidenceHigh,
			MatchedServices:         []string{"Battery Service", "Electrical Diagnostic", "Alternator Service"},
			RecommendedServiceTypes: []string{"battery_service"},
			EstimatedCost:           &models.CostBand{Min: 100, Max: 400},
		}
	case containsAny(symptoms, "air conditioning", "a/c", "cooling"):
		return &models.DiagnosticResult{
			LikelyCauses: []string{
				"Low refrigerant due to leak in system",
				"Faulty A/C compressor",
				"Clogged cabin air filter",
				"Electrical issues with A/C controls",
			},
			DiagnosticSteps: []string{
				"Check A/C system pressures",
				"Inspect for refrigerant leaks",
				"Test A/C compressor operation",
				"Replace cabin air filter if dirty",
			},
			UrgencyLevel:            models.UrgencyLow,
			Confidence:              models.ConfidenceMedium,
			MatchedServices:         []string{"A/C Service", "A/C Repair", "Refrigerant Recharge"},
			RecommendedServiceTypes: []string{"ac_service"},
			EstimatedCost:           &models.CostBand{Min: 150, Max: 500},
		}
	case containsAny(symptoms, "tire", "vibration", "alignment"):
		return &models.DiagnosticResult{
			LikelyCauses: []string{
				"Uneven tire wear due to misalignment",
				"Tire imbalance causing vibration",
				"Low tire pressure",
				"Worn suspension components",
			},
			DiagnosticSteps: []string{
				"Inspect tire tread depth and wear patterns",
				"Check tire pressure in all tires",
				"Perform wheel balance check",
				"Inspect suspension components",
			},
			UrgencyLevel:            models.UrgencyMedium,
			Confidence:              models.ConfidenceHigh,
			MatchedServices:         []string{"Tire Service", "Wheel Alignment", "Tire Rotation"},
			RecommendedServiceTypes: []string{"tire_service"},
			EstimatedCost:           &models.CostBand{Min: 80, Max: 300},
		}
	default:
		return &models.DiagnosticResult{
			LikelyCauses: []string{
				"Multiple potential causes require diagnostic testing",
				"Intermittent issue requiring detailed inspection",
				"Age-related wear requiring comprehensive evaluation",
			},
			DiagnosticSteps: []string{
				"Perform comprehensive vehicle diagnostic scan",
				"Visual inspection of major systems",
				"Road test to reproduce symptoms",
				"Consult technical service bulletins",
			},
			UrgencyLevel:            models.UrgencyMedium,
			Confidence:              models.ConfidenceLow,
			MatchedServices:         []string{"General Diagnostic", "Multi-Point Inspection"},
			RecommendedServiceTypes: []string{"general_repair"},
			EstimatedCost:           &models.CostBand{Min: 100, Max: 500},
		}
	}
}

// adjustForVehicle bumps urgency and cost for old or high-mileage vehicles.
func adjustForVehicle(result *models.DiagnosticResult, info models.VehicleInfo, currentYear int) {
	age := currentYear - info.Year
	if age > 15 {
		if result.UrgencyLevel == models.UrgencyLow {
			result.UrgencyLevel = models.UrgencyMedium
		}
		if result.EstimatedCost != nil {
			result.EstimatedCost.Min = math.Round(result.EstimatedCost.Min * 1.2)
			result.EstimatedCost.Max = math.Round(result.EstimatedCost.Max * 1.3)
		}
	}
	if info.Mileage > 150000 && result.EstimatedCost != nil {
		result.EstimatedCost.Min = math.Round(result.EstimatedCost.Min * 1.1)
		result.EstimatedCost.Max = math.Round(result.EstimatedCost.Max * 1.2)
	}
}
