// Package model defines staff account entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff roles. The engine has no per-resource permission model; staff
// either manage bookings or also manage the catalog.
const (
	RoleStaff   = "staff"
	RoleManager = "manager"
)

// User is a staff account used for booking amendments and catalog
// maintenance. Password holds the bcrypt hash and never serializes.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CanManageCatalog reports whether the user may edit pack offers.
func (u *User) CanManageCatalog() bool {
	return u.Role == RoleManager
}
