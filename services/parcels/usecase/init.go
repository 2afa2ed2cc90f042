package usecase

import (
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/parcels"
)

// ParcelUC implements the parcels.ParcelUC interface
type ParcelUC struct {
	parcelRepo parcels.ParcelRepo
	parcelGW   parcels.ParcelGW
	cfg        *models.Config
}

// NewParcelUC creates a new parcel usecase instance
func NewParcelUC(
	parcelRepo parcels.ParcelRepo,
	parcelGW parcels.ParcelGW,
	cfg *models.Config,
) *ParcelUC {
	return &ParcelUC{
		parcelRepo: parcelRepo,
		parcelGW:   parcelGW,
		cfg:        cfg,
	}
}
