package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollaboratorCollection = "collaborators"

// Collaborator is a technician or partner attached to a lab, with
// commission and payroll details. BankInfo is a free-form blob.
type Collaborator struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Lab       *primitive.ObjectID `bson:"lab,omitempty" json:"lab,omitempty"`
	Name      string              `bson:"name" json:"name"`
	Email     string              `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string              `bson:"phone,omitempty" json:"phone,omitempty"`
	TaxID     string              `bson:"taxid,omitempty" json:"taxid,omitempty"`
	Role      string              `bson:"role,omitempty" json:"role,omitempty"`
	Type      string              `bson:"type,omitempty" json:"type,omitempty"`
	Comission *float64            `bson:"comission,omitempty" json:"comission,omitempty"`
	BankInfo  map[string]any      `bson:"bankInfo,omitempty" json:"bankInfo,omitempty"`
	Salary    *float64            `bson:"salary,omitempty" json:"salary,omitempty"`
	Address   string              `bson:"address,omitempty" json:"address,omitempty"`
}

func (c *Collaborator) SetID(id primitive.ObjectID) { c.ID = id }

func (c *Collaborator) Validate() error {
	return requireString("collaborator", "name", c.Name)
}
