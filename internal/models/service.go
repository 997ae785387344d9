package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const ServiceCollection = "services"

// Service is a price-list definition owned by a lab or clinic, distinct
// from the service lines embedded in orders. ValueType discriminates how
// the value applies: "fixed", "per-tooth" or "per-jaw".
type Service struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Lab         *primitive.ObjectID `bson:"lab,omitempty" json:"lab,omitempty"`
	Clinic      *primitive.ObjectID `bson:"clinic,omitempty" json:"clinic,omitempty"`
	Name        string              `bson:"name,omitempty" json:"name,omitempty"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Value       *float64            `bson:"value,omitempty" json:"value,omitempty"`
	ValueType   string              `bson:"valueType" json:"valueType"`
	Type        string              `bson:"type" json:"type"`
}

func (s *Service) SetID(id primitive.ObjectID) { s.ID = id }

func (s *Service) Validate() error {
	if err := requireString("service", "valueType", s.ValueType); err != nil {
		return err
	}
	return requireString("service", "type", s.Type)
}
