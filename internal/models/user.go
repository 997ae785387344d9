package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const UserCollection = "users"

// User is an account able to authenticate against the API. The password
// field only ever holds the bcrypt hash, never the plaintext.
type User struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Username    string              `bson:"username" json:"username"`
	Password    string              `bson:"password" json:"password"`
	Lab         *primitive.ObjectID `bson:"lab,omitempty" json:"lab,omitempty"`
	Clinic      *primitive.ObjectID `bson:"clinic,omitempty" json:"clinic,omitempty"`
	Email       string              `bson:"email,omitempty" json:"email,omitempty"`
	Permissions []string            `bson:"permissions" json:"permissions"`
}

func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

func (u *User) Validate() error {
	if err := requireString("user", "username", u.Username); err != nil {
		return err
	}
	return requireString("user", "password", u.Password)
}

// AffiliationID returns the lab reference if set, otherwise the clinic
// reference, as a hex string. Empty when the user has no affiliation.
func (u *User) AffiliationID() string {
	if u.Lab != nil {
		return u.Lab.Hex()
	}
	if u.Clinic != nil {
		return u.Clinic.Hex()
	}
	return ""
}
