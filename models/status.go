package models

// StatusCheck is a health-probe record left by a client.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  Timestamp `bson:"timestamp" json:"timestamp"`
}

// StatusCheckInput is the request payload for creating a status check.
type StatusCheckInput struct {
	ClientName string `json:"client_name" binding:"required"`
}
