package domain

// A delivery order stored in persistence. The engine reads orders only to
// resolve the assigned vehicle; order lifecycle is owned elsewhere.
type DeliveryOrder struct {
	OrderID     int
	VehicleID   int
	Destination Coordinates
	WeightKg    float64
	VolumeM3    float64
	Description string
	Status      string
}
