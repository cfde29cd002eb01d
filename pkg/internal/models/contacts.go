package models

type ContactMessage struct {
	BaseModel

	Name    string `json:"name" validate:"required,max=256"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=1024"`
	Body    string `json:"body" validate:"required"`

	Delivered bool `json:"delivered"`
}
