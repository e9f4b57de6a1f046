package models

// BookingStatusPending is the lifecycle status assigned to every new
// booking. Further transitions belong to an administrative workflow
// outside this service.
const BookingStatusPending = "pending"

// Booking is a persisted service booking.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Phone         string    `bson:"phone" json:"phone"`
	Email         string    `bson:"email" json:"email"`
	VehicleBrand  string    `bson:"vehicle_brand" json:"vehicle_brand"`
	VehicleModel  string    `bson:"vehicle_model" json:"vehicle_model"`
	VehicleYear   string    `bson:"vehicle_year" json:"vehicle_year"`
	ServiceType   string    `bson:"service_type" json:"service_type"`
	PreferredDate string    `bson:"preferred_date" json:"preferred_date"`
	PreferredTime string    `bson:"preferred_time" json:"preferred_time"`
	Message       string    `bson:"message,omitempty" json:"message,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     Timestamp `bson:"created_at" json:"created_at"`
}

// BookingInput is the request payload for creating a booking.
// Unknown fields in the incoming JSON are ignored.
type BookingInput struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	VehicleBrand  string `json:"vehicle_brand" binding:"required"`
	VehicleModel  string `json:"vehicle_model" binding:"required"`
	VehicleYear   string `json:"vehicle_year" binding:"required"`
	ServiceType   string `json:"service_type" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required"`
	Message       string `json:"message"`
}
