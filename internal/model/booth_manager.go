package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const RoleBoothManager = "booth_manager"

// BoothManager is the operator account for a single print booth.
// Email and BoothCode are unique across the collection.
type BoothManager struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string        `bson:"name" json:"name" validate:"required,max=50"`
	Email string        `bson:"email" json:"email" validate:"required,email"`

	Password     string `bson:"-" json:"-" validate:"required,min=6"`
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	BoothName      string `bson:"booth_name" json:"boothName" validate:"required"`
	BoothLocation  string `bson:"booth_location" json:"boothLocation" validate:"required"`
	BoothCode      string `bson:"booth_code" json:"boothCode" validate:"required"`
	PaperCapacity  int    `bson:"paper_capacity" json:"paperCapacity" validate:"min=0"`
	PaperAvailable int    `bson:"paper_available" json:"paperAvailable" validate:"min=0,ltefield=PaperCapacity"`
	PrinterName    string `bson:"printer_name" json:"printerName"`
	PrinterModel   string `bson:"printer_model" json:"printerModel"`

	Role      string    `bson:"role" json:"role"`
	IsActive  bool      `bson:"is_active" json:"isActive"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
