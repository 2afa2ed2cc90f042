package usecase

import (
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/trips"
)

// TripUC implements the trip usecase
type TripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
}

// NewTripUC creates a new trip usecase
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	tripGW trips.TripGW,
) *TripUC {
	return &TripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
	}
}
