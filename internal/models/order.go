package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderCollection = "orders"

// Order is a piece of lab work commissioned by a clinic. Dentist and
// patient reference embedded sub-records inside the clinic document, so
// they can dangle and readers must tolerate that. Status and state are
// free-form strings set by callers; no transition rules are enforced.
type Order struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Status      string              `bson:"status" json:"status"`
	Clinic      *primitive.ObjectID `bson:"clinic,omitempty" json:"clinic,omitempty"`
	Dentist     *primitive.ObjectID `bson:"dentist,omitempty" json:"dentist,omitempty"`
	Lab         *primitive.ObjectID `bson:"lab,omitempty" json:"lab,omitempty"`
	Patient     *primitive.ObjectID `bson:"patient,omitempty" json:"patient,omitempty"`
	Services    []ServiceLine       `bson:"services" json:"services"`
	Description string              `bson:"description" json:"description"`
	State       string              `bson:"state" json:"state"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	ExpiresAt   time.Time           `bson:"expiresAt" json:"expiresAt"`
	Comments    []Comment           `bson:"comments" json:"comments"`
	Tag         []string            `bson:"tag" json:"tag"`
}

// ServiceLine is one billed item on an order, referencing a Service
// definition and the collaborator performing it. Teeth and jaw carry
// position numbers for per-tooth and per-jaw priced services.
type ServiceLine struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	CreatedBy    *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	ExpiresAt    time.Time           `bson:"expiresAt" json:"expiresAt"`
	Service      *primitive.ObjectID `bson:"service,omitempty" json:"service,omitempty"`
	Collaborator *primitive.ObjectID `bson:"collaborator,omitempty" json:"collaborator,omitempty"`
	FinalValue   *float64            `bson:"finalvalue" json:"finalvalue"`
	State        string              `bson:"state" json:"state"`
	Teeth        []int               `bson:"teeth,omitempty" json:"teeth,omitempty"`
	Jaw          []int               `bson:"jaw,omitempty" json:"jaw,omitempty"`
	Discount     *float64            `bson:"discount" json:"discount"`
}

// Comment is a timestamped note on an order.
type Comment struct {
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	CreatedBy *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	Content   string              `bson:"content" json:"content"`
	Type      string              `bson:"type" json:"type"`
}

func (o *Order) SetID(id primitive.ObjectID) { o.ID = id }

func (o *Order) Validate() error {
	if err := requireString("order", "status", o.Status); err != nil {
		return err
	}
	if err := requireString("order", "description", o.Description); err != nil {
		return err
	}
	if err := requireString("order", "state", o.State); err != nil {
		return err
	}
	if err := requireWindow("order", o.CreatedAt, o.ExpiresAt); err != nil {
		return err
	}
	for _, line := range o.Services {
		if err := line.validate(); err != nil {
			return err
		}
	}
	for _, comment := range o.Comments {
		if err := comment.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServiceLine) validate() error {
	if err := requireNumber("order.services", "finalvalue", s.FinalValue); err != nil {
		return err
	}
	if err := requireString("order.services", "state", s.State); err != nil {
		return err
	}
	if err := requireNumber("order.services", "discount", s.Discount); err != nil {
		return err
	}
	return requireWindow("order.services", s.CreatedAt, s.ExpiresAt)
}

func (c *Comment) validate() error {
	if err := requireTime("order.comments", "createdAt", c.CreatedAt); err != nil {
		return err
	}
	if err := requireString("order.comments", "content", c.Content); err != nil {
		return err
	}
	return requireString("order.comments", "type", c.Type)
}
