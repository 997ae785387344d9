package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ClinicCollection = "clinics"

// Clinic embeds its patients and dentists as sub-records and tracks its
// balance ledger inline. Orders are kept as references.
type Clinic struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name               string               `bson:"name" json:"name"`
	Address            string               `bson:"address" json:"address"`
	Patients           []Patient            `bson:"patients" json:"patients"`
	Dentists           []Dentist            `bson:"dentists" json:"dentists"`
	Orders             []primitive.ObjectID `bson:"orders" json:"orders"`
	Balance            []BalanceEntry       `bson:"balance,omitempty" json:"balance,omitempty"`
	OutstandingBalance *float64             `bson:"outstandingBalance" json:"outstandingBalance"`
	Email              string               `bson:"email,omitempty" json:"email,omitempty"`
	Phone              string               `bson:"phone,omitempty" json:"phone,omitempty"`
	TaxID              string               `bson:"taxid,omitempty" json:"taxid,omitempty"`
}

// Patient is an embedded sub-record on a Clinic, not a collection of its own.
type Patient struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Dentist is an embedded sub-record on a Clinic. Orders reference dentists
// by this embedded identifier.
type Dentist struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

// BalanceEntry is an embedded ledger line on a Clinic, optionally tied to an
// order and to one of that order's service lines.
type BalanceEntry struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Value     *float64            `bson:"value" json:"value"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time           `bson:"expiresAt" json:"expiresAt"`
	Order     *primitive.ObjectID `bson:"order,omitempty" json:"order,omitempty"`
	Service   *primitive.ObjectID `bson:"service,omitempty" json:"service,omitempty"`
}

func (c *Clinic) SetID(id primitive.ObjectID) { c.ID = id }

func (c *Clinic) Validate() error {
	if err := requireString("clinic", "name", c.Name); err != nil {
		return err
	}
	if err := requireString("clinic", "address", c.Address); err != nil {
		return err
	}
	if err := requireNumber("clinic", "outstandingBalance", c.OutstandingBalance); err != nil {
		return err
	}
	for _, entry := range c.Balance {
		if err := entry.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (b *BalanceEntry) validate() error {
	if err := requireNumber("clinic.balance", "value", b.Value); err != nil {
		return err
	}
	return requireWindow("clinic.balance", b.CreatedAt, b.ExpiresAt)
}
