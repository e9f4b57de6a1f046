package models

// Contact is a persisted contact-form inquiry.
type Contact struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt Timestamp `bson:"created_at" json:"created_at"`
}

// ContactInput is the request payload for creating a contact inquiry.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}
