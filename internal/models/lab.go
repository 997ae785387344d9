package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const LabCollection = "labs"

// Lab owns clinics, users, collaborators, orders, services and inventory
// through reference arrays, and carries its revenue ledger inline.
type Lab struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string               `bson:"name" json:"name"`
	Address       string               `bson:"address,omitempty" json:"address,omitempty"`
	Clinics       []primitive.ObjectID `bson:"clinics,omitempty" json:"clinics,omitempty"`
	Users         []primitive.ObjectID `bson:"users,omitempty" json:"users,omitempty"`
	Collaborators []primitive.ObjectID `bson:"collaborators,omitempty" json:"collaborators,omitempty"`
	Orders        []primitive.ObjectID `bson:"orders,omitempty" json:"orders,omitempty"`
	Services      []primitive.ObjectID `bson:"services,omitempty" json:"services,omitempty"`
	Inventory     []primitive.ObjectID `bson:"inventory,omitempty" json:"inventory,omitempty"`
	Revenue       []RevenueEntry       `bson:"revenue" json:"revenue"`
	Email         string               `bson:"email,omitempty" json:"email,omitempty"`
	TaxID         string               `bson:"taxid,omitempty" json:"taxid,omitempty"`
	Phone         string               `bson:"phone,omitempty" json:"phone,omitempty"`
}

// RevenueEntry is an embedded ledger line on a Lab. BankAccount and
// PaymentInfo are free-form blobs stored as given.
type RevenueEntry struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Type         string              `bson:"type" json:"type"`
	Value        *float64            `bson:"value" json:"value"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	ExpiresAt    time.Time           `bson:"expiresAt" json:"expiresAt"`
	Collaborator *primitive.ObjectID `bson:"collaborator,omitempty" json:"collaborator,omitempty"`
	Clinic       *primitive.ObjectID `bson:"clinic,omitempty" json:"clinic,omitempty"`
	State        string              `bson:"state" json:"state"`
	BankAccount  map[string]any      `bson:"bankAccount,omitempty" json:"bankAccount,omitempty"`
	PaymentInfo  map[string]any      `bson:"paymentInfo,omitempty" json:"paymentInfo,omitempty"`
}

func (l *Lab) SetID(id primitive.ObjectID) { l.ID = id }

func (l *Lab) Validate() error {
	if err := requireString("lab", "name", l.Name); err != nil {
		return err
	}
	for _, entry := range l.Revenue {
		if err := entry.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *RevenueEntry) validate() error {
	if err := requireString("lab.revenue", "type", r.Type); err != nil {
		return err
	}
	if err := requireNumber("lab.revenue", "value", r.Value); err != nil {
		return err
	}
	if err := requireString("lab.revenue", "state", r.State); err != nil {
		return err
	}
	return requireWindow("lab.revenue", r.CreatedAt, r.ExpiresAt)
}
