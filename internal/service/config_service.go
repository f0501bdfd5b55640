package service

import (
	"sync"

	"go.uber.org/zap"

	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
)

// RuntimeSettings are the admin-tunable flags and rates. They start from
// defaults and are changed at runtime through the settings endpoints.
type RuntimeSettings struct {
	IsProduction          bool    `json:"is_production"`
	ShowVINDebug          bool    `json:"show_vin_debug"`
	EnableChatbot         bool    `json:"enable_chatbot"`
	EnableVINCheck        bool    `json:"enable_vin_check"`
	ShowScooterSupport    bool    `json:"show_scooter_support"`
	ShowMotorcycleSupport bool    `json:"show_motorcycle_support"`
	DefaultLaborRate      float64 `json:"default_labor_rate"`
	TravelFeePerMile      float64 `json:"travel_fee_per_mile"`
	MinimumTravelFee      float64 `json:"minimum_travel_fee"`
}

// DefaultRuntimeSettings returns the initial settings.
func DefaultRuntimeSettings() RuntimeSettings {
	return RuntimeSettings{
		IsProduction:          false,
		ShowVINDebug:          false,
		EnableChatbot:         true,
		EnableVINCheck:        true,
		ShowScooterSupport:    true,
		ShowMotorcycleSupport: true,
		DefaultLaborRate:      95,
		TravelFeePerMile:      0.65,
		MinimumTravelFee:      15,
	}
}

// ConfigService holds the runtime settings behind a mutex.
type ConfigService struct {
	mu       sync.RWMutex
	settings RuntimeSettings
	logger   *zap.Logger
}

// NewConfigService constructs a ConfigService with defaults.
func NewConfigService(logger *zap.Logger) *ConfigService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigService{settings: DefaultRuntimeSettings(), logger: logger}
}

// Settings returns a copy of the current settings.
func (s *ConfigService) Settings() RuntimeSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetFlag updates one boolean setting by key.
func (s *ConfigService) SetFlag(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "is_production":
		s.settings.IsProduction = value
	case "show_vin_debug":
		s.settings.ShowVINDebug = value
	case "enable_chatbot":
		s.settings.EnableChatbot = value
	case "enable_vin_check":
		s.settings.EnableVINCheck = value
	case "show_scooter_support":
		s.settings.ShowScooterSupport = value
	case "show_motorcycle_support":
		s.settings.ShowMotorcycleSupport = value
	default:
		return appErrors.Clone(appErrors.ErrValidation, "unknown setting: "+key)
	}

	s.logger.Info("runtime setting updated", zap.String("key", key), zap.Bool("value", value))
	return nil
}

// SetRate updates one numeric setting by key. Negative rates are rejected.
func (s *ConfigService) SetRate(key string, value float64) error {
	if value < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "rate must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "default_labor_rate":
		s.settings.DefaultLaborRate = value
	case "travel_fee_per_mile":
		s.settings.TravelFeePerMile = value
	case "minimum_travel_fee":
		s.settings.MinimumTravelFee = value
	default:
		return appErrors.Clone(appErrors.ErrValidation, "unknown setting: "+key)
	}

	s.logger.Info("runtime setting updated", zap.String("key", key), zap.Float64("value", value))
	return nil
}

// TravelFee computes the travel charge for a trip, applying the minimum.
func (s *ConfigService) TravelFee(miles float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fee := miles * s.settings.TravelFeePerMile
	if fee < s.settings.MinimumTravelFee {
		fee = s.settings.MinimumTravelFee
	}
	return fee
}

// FeatureEnabled reports one boolean setting by key, false for unknown keys.
func (s *ConfigService) FeatureEnabled(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch key {
	case "is_production":
		return s.settings.IsProduction
	case "show_vin_debug":
		return s.settings.ShowVINDebug
	case "enable_chatbot":
		return s.settings.EnableChatbot
	case "enable_vin_check":
		return s.settings.EnableVINCheck
	case "show_scooter_support":
		return s.settings.ShowScooterSupport
	case "show_motorcycle_support":
		return s.settings.ShowMotorcycleSupport
	}
	return false
}
