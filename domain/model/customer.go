package model

import "time"

// Customer is keyed by a natural string identifier such as "CUST001".
type Customer struct {
	ID              string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name"`
	Email           string     `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber     string     `gorm:"type:varchar(32)" json:"phone_number"`
	LastContactDate *time.Time `gorm:"default:null" json:"last_contact_date"`
}

func (Customer) TableName() string { return "customers" }

func (c Customer) PrimaryKey() string { return c.ID }
