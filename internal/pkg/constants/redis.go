package constants

// Redis key formats
const (
	// Matching
	KeyPendingParcelArea  = "parcels:pending:area:%s" // Format: parcels:pending:area:{geohash cell}
	KeyPendingParcelCells = "parcels:pending:cells"   // Hash of parcel id -> geohash cell

	// Tracking
	KeyTrackingCache = "parcel:tracking:%s" // Format: parcel:tracking:{code}

	// Session contexts
	KeySessionStale = "session:stale:%s" // Format: session:stale:{user_id}
)
