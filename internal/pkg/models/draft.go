package models

import "time"

// ValidationError describes a single rejected draft field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ParcelDraft is the multi-step parcel creation payload. All validation
// happens through Validate before any repository call is made.
type ParcelDraft struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Content       string     `json:"parcel_content"`
	WeightKg      float64    `json:"weight_kg"`
	Size          ParcelSize `json:"size"`
	Price         float64    `json:"price"`
	Origin        Location   `json:"origin"`
	Destination   Location   `json:"destination"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`
	ImageURLs     []string   `json:"image_urls,omitempty"`
	Instructions  string     `json:"instructions,omitempty"`
	ReceiverName  string     `json:"receiver_name"`
	ReceiverPhone string     `json:"receiver_phone,omitempty"`
}

// Validate checks the draft for completeness. It returns every violation
// found rather than stopping at the first one.
func (d *ParcelDraft) Validate() []ValidationError {
	var errs []ValidationError

	if d.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title is required"})
	}
	if d.WeightKg <= 0 {
		errs = append(errs, ValidationError{Field: "weight_kg", Message: "weight must be a positive number"})
	}
	if !ValidSize(d.Size) {
		errs = append(errs, ValidationError{Field: "size", Message: "size must be one of S, M, L, XL"})
	}
	if !d.Origin.Geocoded() {
		errs = append(errs, ValidationError{Field: "origin", Message: "origin must be geocoded"})
	}
	if !d.Destination.Geocoded() {
		errs = append(errs, ValidationError{Field: "destination", Message: "destination must be geocoded"})
	}
	if d.ReceiverName == "" {
		errs = append(errs, ValidationError{Field: "receiver_name", Message: "receiver name is required"})
	}

	return errs
}

// ToParcel builds a pending parcel from a validated draft. The identifier
// and tracking code are assigned by the repository at insert time.
func (d *ParcelDraft) ToParcel() *Parcel {
	return &Parcel{
		Title:         d.Title,
		Description:   d.Description,
		Content:       d.Content,
		WeightKg:      d.WeightKg,
		Size:          d.Size,
		Price:         d.Price,
		Origin:        d.Origin,
		Destination:   d.Destination,
		Status:        ParcelStatusPending,
		DeliveryDate:  d.DeliveryDate,
		ImageURLs:     d.ImageURLs,
		Instructions:  d.Instructions,
		ReceiverName:  d.ReceiverName,
		ReceiverPhone: d.ReceiverPhone,
	}
}
