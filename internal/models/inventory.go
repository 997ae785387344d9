package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const InventoryCollection = "inventories"

// Inventory is a stocked item owned by a lab or clinic.
type Inventory struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Lab         *primitive.ObjectID `bson:"lab,omitempty" json:"lab,omitempty"`
	Clinic      *primitive.ObjectID `bson:"clinic,omitempty" json:"clinic,omitempty"`
	Amount      *float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Name        string              `bson:"name,omitempty" json:"name,omitempty"`
	Value       *float64            `bson:"value,omitempty" json:"value,omitempty"`
	Type        string              `bson:"type,omitempty" json:"type,omitempty"`
}

func (i *Inventory) SetID(id primitive.ObjectID) { i.ID = id }

func (i *Inventory) Validate() error { return nil }
