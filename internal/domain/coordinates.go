package domain

// Immutable geographic coordinates in decimal degrees (WGS84).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinates fall inside the WGS84 domain.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Rectangular geographic extent used to scope traffic-incident queries.
// UpperLeft is the north-west corner, LowerRight the south-east corner.
type BoundingBox struct {
	UpperLeft  Coordinates
	LowerRight Coordinates
}

// IsZero reports whether the box carries no extent at all.
func (b BoundingBox) IsZero() bool {
	return b.UpperLeft == (Coordinates{}) && b.LowerRight == (Coordinates{})
}
