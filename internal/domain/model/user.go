package model

type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Password        string `json:"-"` // Hash only, never serialized
	AdminPrivileges bool   `json:"adminPrivileges"`
}
