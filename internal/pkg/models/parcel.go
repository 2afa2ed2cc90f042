package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ParcelStatus represents the current stage of a parcel's lifecycle
type ParcelStatus string

const (
	ParcelStatusPending   ParcelStatus = "PENDING"
	ParcelStatusMatched   ParcelStatus = "MATCHED"
	ParcelStatusPickedUp  ParcelStatus = "PICKED_UP"
	ParcelStatusInTransit ParcelStatus = "IN_TRANSIT"
	ParcelStatusDelivered ParcelStatus = "DELIVERED"
	ParcelStatusConfirmed ParcelStatus = "CONFIRMED"
)

// ParcelSize is the ordinal size category of a parcel
type ParcelSize string

const (
	SizeSmall  ParcelSize = "S"
	SizeMedium ParcelSize = "M"
	SizeLarge  ParcelSize = "L"
	SizeXLarge ParcelSize = "XL"
)

// sizeOrder maps sizes to their ordinal rank for capacity comparison
var sizeOrder = map[ParcelSize]int{
	SizeSmall:  1,
	SizeMedium: 2,
	SizeLarge:  3,
	SizeXLarge: 4,
}

// ValidSize reports whether s is a known size category.
func ValidSize(s ParcelSize) bool {
	_, ok := sizeOrder[s]
	return ok
}

// FitsWithin reports whether a parcel of size s fits a capacity category c.
func (s ParcelSize) FitsWithin(c ParcelSize) bool {
	return sizeOrder[s] != 0 && sizeOrder[c] != 0 && sizeOrder[s] <= sizeOrder[c]
}

// Location represents a geocoded point with a human-readable label.
// Coordinates may be nil while a draft is still being composed.
type Location struct {
	Latitude  *float64 `json:"lat,omitempty" db:"lat"`
	Longitude *float64 `json:"lng,omitempty" db:"lng"`
	Label     string   `json:"label,omitempty" db:"label"`
}

// Geocoded reports whether both coordinates are populated.
func (l Location) Geocoded() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Parcel represents one shipment request posted by a sender
type Parcel struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	SenderID      uuid.UUID    `json:"sender_id" db:"sender_id"`
	TransporterID *uuid.UUID   `json:"transporter_id,omitempty" db:"transporter_id"`
	TripID        *uuid.UUID   `json:"trip_id,omitempty" db:"trip_id"`
	Title         string       `json:"title" db:"title"`
	Description   string       `json:"description" db:"description"`
	Content       string       `json:"parcel_content" db:"parcel_content"`
	WeightKg      float64      `json:"weight_kg" db:"weight_kg"`
	Size          ParcelSize   `json:"size" db:"size"`
	Price         float64      `json:"price" db:"price"`
	Origin        Location     `json:"origin"`
	Destination   Location     `json:"destination"`
	Status        ParcelStatus `json:"status" db:"status"`
	TrackingCode  string       `json:"tracking_code" db:"tracking_code"`
	DeliveryDate  *time.Time   `json:"delivery_date,omitempty" db:"delivery_date"`
	ImageURLs     []string     `json:"image_urls,omitempty"`
	Instructions  string       `json:"instructions,omitempty" db:"instructions"`
	ReceiverName  string       `json:"receiver_name" db:"receiver_name"`
	ReceiverPhone string       `json:"receiver_phone,omitempty" db:"receiver_phone"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// Assigned reports whether a transporter has been bound to the parcel.
func (p *Parcel) Assigned() bool {
	return p.TransporterID != nil
}

// ParcelDTO flattens the nested Location structs for database operations
type ParcelDTO struct {
	ID            uuid.UUID      `db:"id"`
	SenderID      uuid.UUID      `db:"sender_id"`
	TransporterID *uuid.UUID     `db:"transporter_id"`
	TripID        *uuid.UUID     `db:"trip_id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Content       string         `db:"parcel_content"`
	WeightKg      float64        `db:"weight_kg"`
	Size          ParcelSize     `db:"size"`
	Price         float64        `db:"price"`
	OriginLat     *float64       `db:"origin_lat"`
	OriginLng     *float64       `db:"origin_lng"`
	OriginLabel   string         `db:"origin_label"`
	DestLat       *float64       `db:"dest_lat"`
	DestLng       *float64       `db:"dest_lng"`
	DestLabel     string         `db:"dest_label"`
	Status        ParcelStatus   `db:"status"`
	TrackingCode  string         `db:"tracking_code"`
	DeliveryDate  *time.Time     `db:"delivery_date"`
	Instructions  string         `db:"instructions"`
	ReceiverName  string         `db:"receiver_name"`
	ReceiverPhone string         `db:"receiver_phone"`
	ImageURLs     pq.StringArray `db:"image_urls"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// ToDTO converts a Parcel to its flattened database representation
func (p *Parcel) ToDTO() *ParcelDTO {
	return &ParcelDTO{
		ID:            p.ID,
		SenderID:      p.SenderID,
		TransporterID: p.TransporterID,
		TripID:        p.TripID,
		Title:         p.Title,
		Description:   p.Description,
		Content:       p.Content,
		WeightKg:      p.WeightKg,
		Size:          p.Size,
		Price:         p.Price,
		OriginLat:     p.Origin.Latitude,
		OriginLng:     p.Origin.Longitude,
		OriginLabel:   p.Origin.Label,
		DestLat:       p.Destination.Latitude,
		DestLng:       p.Destination.Longitude,
		DestLabel:     p.Destination.Label,
		Status:        p.Status,
		TrackingCode:  p.TrackingCode,
		DeliveryDate:  p.DeliveryDate,
		Instructions:  p.Instructions,
		ReceiverName:  p.ReceiverName,
		ReceiverPhone: p.ReceiverPhone,
		ImageURLs:     pq.StringArray(p.ImageURLs),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToParcel converts a ParcelDTO back to the nested representation
func (dto *ParcelDTO) ToParcel() *Parcel {
	return &Parcel{
		ID:            dto.ID,
		SenderID:      dto.SenderID,
		TransporterID: dto.TransporterID,
		TripID:        dto.TripID,
		Title:         dto.Title,
		Description:   dto.Description,
		Content:       dto.Content,
		WeightKg:      dto.WeightKg,
		Size:          dto.Size,
		Price:         dto.Price,
		Origin: Location{
			Latitude:  dto.OriginLat,
			Longitude: dto.OriginLng,
			Label:     dto.OriginLabel,
		},
		Destination: Location{
			Latitude:  dto.DestLat,
			Longitude: dto.DestLng,
			Label:     dto.DestLabel,
		},
		Status:        dto.Status,
		TrackingCode:  dto.TrackingCode,
		DeliveryDate:  dto.DeliveryDate,
		Instructions:  dto.Instructions,
		ReceiverName:  dto.ReceiverName,
		ReceiverPhone: dto.ReceiverPhone,
		ImageURLs:     []string(dto.ImageURLs),
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}
}
