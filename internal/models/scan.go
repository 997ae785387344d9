package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ScanCollection = "pandascans"

// Scan holds metadata for an imaging artifact produced by the external
// PandaScan system. The string ScanID and credit codes correlate with the
// external side; the download URL expires independently of the record.
type Scan struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	ScanID           string              `bson:"id" json:"id"`
	SourceName       string              `bson:"sourceName" json:"sourceName"`
	TargetName       string              `bson:"targetName" json:"targetName"`
	TargetCreditCode string              `bson:"targetCreditCode" json:"targetCreditCode"`
	Name             string              `bson:"name" json:"name"`
	Type             string              `bson:"type" json:"type"`
	PatientName      string              `bson:"patientName" json:"patientName"`
	DoctorName       string              `bson:"doctorName" json:"doctorName"`
	Notes            string              `bson:"notes" json:"notes"`
	Time             time.Time           `bson:"time" json:"time"`
	Expires          time.Time           `bson:"expires" json:"expires"`
	Size             *float64            `bson:"size" json:"size"`
	URL              string              `bson:"url" json:"url"`
	Code             *float64            `bson:"code" json:"code"`
	Material         string              `bson:"material" json:"material"`
	Color            string              `bson:"color" json:"color"`
	Number           string              `bson:"number" json:"number"`
	ReferenceOrder   *primitive.ObjectID `bson:"referenceOrder,omitempty" json:"referenceOrder,omitempty"`
	ReferenceService *primitive.ObjectID `bson:"referenceService,omitempty" json:"referenceService,omitempty"`
}

func (s *Scan) SetID(id primitive.ObjectID) { s.ID = id }

func (s *Scan) Validate() error {
	required := []struct{ field, value string }{
		{"id", s.ScanID},
		{"sourceName", s.SourceName},
		{"targetName", s.TargetName},
		{"targetCreditCode", s.TargetCreditCode},
		{"name", s.Name},
		{"type", s.Type},
		{"patientName", s.PatientName},
		{"doctorName", s.DoctorName},
		{"notes", s.Notes},
		{"url", s.URL},
		{"material", s.Material},
		{"color", s.Color},
		{"number", s.Number},
	}
	for _, r := range required {
		if err := requireString("pandaScan", r.field, r.value); err != nil {
			return err
		}
	}
	if err := requireTime("pandaScan", "time", s.Time); err != nil {
		return err
	}
	if err := requireTime("pandaScan", "expires", s.Expires); err != nil {
		return err
	}
	if err := requireNumber("pandaScan", "size", s.Size); err != nil {
		return err
	}
	return requireNumber("pandaScan", "code", s.Code)
}
