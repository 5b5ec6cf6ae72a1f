package models

// Role identifies what a user is allowed to do in the supply chain
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManufacturer Role = "manufacturer"
	RoleShopkeeper   Role = "shopkeeper"
	RoleTransporter  Role = "transporter"
)

// User represents a registered participant, looked up by mobile number
type User struct {
	ID     string `json:"id"`
	Mobile string `json:"mobile"`
	Role   Role   `json:"role"`
}

// AdminDirectory is the admin view of registered manufacturers and transporters
type AdminDirectory struct {
	Manufacturers []User `json:"manufacturers"`
	Transporters  []User `json:"transporters"`
}
