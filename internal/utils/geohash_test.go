package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name: "Same point",
			point1: GeoPoint{
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			point2: GeoPoint{
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name: "Jakarta to Yogyakarta (approximately)",
			point1: GeoPoint{
				Latitude:  -6.175392, // Jakarta
				Longitude: 106.827153,
			},
			point2: GeoPoint{
				Latitude:  -7.795580, // Yogyakarta
				Longitude: 110.369490,
			},
			expected:  430.0,
			tolerance: 20.0,
		},
		{
			name: "Short distance within Jakarta",
			point1: GeoPoint{
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			point2: GeoPoint{
				Latitude:  -6.185392,
				Longitude: 106.837153,
			},
			expected:  1.5,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := CalculateDistance(tt.point1, tt.point2)
			assert.True(t, math.Abs(distance-tt.expected) <= tt.tolerance,
				"expected ~%.1f km, got %.1f km", tt.expected, distance)
		})
	}
}

func TestEncodeGeoPoint(t *testing.T) {
	point := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodeGeoPoint(point, 9)
	assert.Len(t, hash, 9)

	// Nearby points land in the same coarse cell.
	shifted := GeoPoint{Latitude: -6.176, Longitude: 106.828}
	assert.Equal(t, EncodeGeoPoint(point, 4), EncodeGeoPoint(shifted, 4))
}

func TestGetNeighbors(t *testing.T) {
	neighbors := GetNeighbors("qqguwv")

	assert.Len(t, neighbors, 8)
	for _, n := range neighbors {
		assert.Len(t, n, 6)
		assert.NotEqual(t, "qqguwv", n)
	}
}
