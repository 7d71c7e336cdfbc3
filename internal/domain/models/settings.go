package models

// ContactSettings is the singleton "contact" settings document shown on the
// public site.
type ContactSettings struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// Admin is a back-office operator account.
type Admin struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
