package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PendingAccount is a signup awaiting verification. The store purges it
// 24 hours after creation unless it is promoted to a full account first.
type PendingAccount struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string        `bson:"name" json:"name" validate:"required,max=50"`
	StudentID      string        `bson:"student_id" json:"studentId" validate:"required,len=7,digits"`
	RFIDCardNumber string        `bson:"rfid_card_number" json:"rfidCardNumber" validate:"required,len=10,digits,startswith=0"`
	Email          string        `bson:"email" json:"email" validate:"required,email"`
	Phone          string        `bson:"phone" json:"phone" validate:"required,len=11,digits"`

	// Password carries the raw credential into the write path only; it is
	// never persisted or serialized. PasswordHash is what goes to disk.
	Password     string `bson:"-" json:"-" validate:"required,min=6"`
	PasswordHash string `bson:"password_hash" json:"-"`

	Points                    int       `bson:"points" json:"points"`
	VerificationCode          string    `bson:"verification_code" json:"-"`
	VerificationCodeExpiresAt time.Time `bson:"verification_code_expires_at" json:"-"`
	CreatedAt                 time.Time `bson:"created_at" json:"createdAt"`
}
