package service

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
)

// PlateDecodeResult is the outcome of a plate-to-VIN lookup.
type PlateDecodeResult struct {
	VIN         string            `json:"vin,omitempty"`
	Make        string            `json:"make,omitempty"`
	Model       string            `json:"model,omitempty"`
	Year        int               `json:"year,omitempty"`
	Color       string            `json:"color,omitempty"`
	State       string            `json:"state"`
	PlateNumber string            `json:"plate_number"`
	Confidence  models.Confidence `json:"confidence"`
	Source      string            `json:"source"`
	Error       string            `json:"error,omitempty"`
}

// SupportedState names one state available for plate lookup.
type SupportedState struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PlateValidation reports whether a plate string is well formed.
type PlateValidation struct {
	IsValid         bool   `json:"is_valid"`
	NormalizedPlate string `json:"normalized_plate"`
}

// VinService resolves license plates to vehicle records. The lookup table is
// an in-process stand-in for a DMV or CarFax integration.
type VinService struct {
	logger *zap.Logger
}

// NewVinService constructs a VinService.
func NewVinService(logger *zap.Logger) *VinService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VinService{logger: logger}
}

var basicPlatePattern = regexp.MustCompile(`^[A-Z0-9\s\-]{2,8}$`)

// stricter per-state plate formats where known
var statePlatePatterns = map[string]*regexp.Regexp{
	"CA": regexp.MustCompile(`^[A-Z0-9]{2,7}$`),
	"NY": regexp.MustCompile(`^[A-Z0-9]{2,8}$`),
	"TX": regexp.MustCompile(`^[A-Z0-9]{2,7}$`),
	"FL": regexp.MustCompile(`^[A-Z0-9]{2,7}$`),
}

var plateDatabase = map[string]PlateDecodeResult{
	"ABC123": {VIN: "WVWZZZ3BZWE689725", Make: "Volkswagen", Model: "Passat", Year: 2008, Color: "Silver", Confidence: models.ConfidenceHigh},
	"XYZ789": {VIN: "1HGBH41JXMN109186", Make: "Honda", Model: "Civic", Year: 2021, Color: "Blue", Confidence: models.ConfidenceHigh},
	"DEF456": {VIN: "1FTFW1ET5DFC10312", Make: "Ford", Model: "F-150", Year: 2013, Color: "Red", Confidence: models.ConfidenceMedium},
	"GHI012": {VIN: "1G1ZT53806F109149", Make: "Chevrolet", Model: "Malibu", Year: 2006, Color: "White", Confidence: models.ConfidenceHigh},
	"JKL345": {VIN: "JTDKN3DU8A0123456", Make: "Toyota", Model: "Prius", Year: 2010, Color: "Green", Confidence: models.ConfidenceMedium},
	"MNO678": {VIN: "1N4AL3AP8DC123456", Make: "Nissan", Model: "Altima", Year: 2013, Color: "Black", Confidence: models.ConfidenceHigh},
}

var supportedStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"DC",
}

var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

// ValidatePlate checks a plate against the basic and state-specific formats.
func (s *VinService) ValidatePlate(plate, state string) PlateValidation {
	normalized := strings.ToUpper(strings.TrimSpace(plate))
	valid := basicPlatePattern.MatchString(normalized)
	if valid {
		if pattern, ok := statePlatePatterns[strings.ToUpper(state)]; ok {
			valid = pattern.MatchString(normalized)
		}
	}
	return PlateValidation{IsValid: valid, NormalizedPlate: normalized}
}

// DecodeFromPlate resolves a plate to vehicle identity. An unknown plate is
// not an error; it returns a low-confidence result with an error message so
// the caller can fall back to manual VIN entry.
func (s *VinService) DecodeFromPlate(ctx context.Context, plate, state string) (*PlateDecodeResult, error) {
	validation := s.ValidatePlate(plate, state)
	if !validation.IsValid {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid license plate format for the specified state")
	}

	stateCode := strings.ToUpper(strings.TrimSpace(state))

	result, found := plateDatabase[validation.NormalizedPlate]
	if !found {
		result = PlateDecodeResult{
			Confidence: models.ConfidenceLow,
			Error:      "Vehicle information not found for this license plate",
		}
	}
	result.State = stateCode
	result.PlateNumber = validation.NormalizedPlate
	result.Source = "mock"

	s.logger.Info("license plate decode",
		zap.String("plate", validation.NormalizedPlate),
		zap.String("state", stateCode),
		zap.Bool("found", found),
		zap.String("confidence", string(result.Confidence)),
	)

	return &result, nil
}

// SupportedStates lists the states available for plate lookup.
func (s *VinService) SupportedStates() []SupportedState {
	out := make([]SupportedState, 0, len(supportedStates))
	for _, code := range supportedStates {
		name := stateNames[code]
		if name == "" {
			name = code
		}
		out = append(out, SupportedState{Code: code, Name: name})
	}
	return out
}
