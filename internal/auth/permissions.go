package auth

// Permission strings carried on user records.
const (
	PermissionUser  = "user"
	PermissionAdmin = "admin"
)

// Level is an ordered capability: None < User < Admin. Admin implies user
// access, so a single comparison gates every route.
type Level int

const (
	LevelNone Level = iota
	LevelUser
	LevelAdmin
)

// LevelOf computes the capability level of a permission list. The list is
// treated as a set; unknown strings are ignored.
func LevelOf(permissions []string) Level {
	level := LevelNone
	for _, p := range permissions {
		switch p {
		case PermissionAdmin:
			return LevelAdmin
		case PermissionUser:
			level = LevelUser
		}
	}
	return level
}

// Allows reports whether the caller level satisfies the required level.
func (l Level) Allows(required Level) bool {
	return l >= required
}

func (l Level) String() string {
	switch l {
	case LevelAdmin:
		return "admin"
	case LevelUser:
		return "user"
	default:
		return "none"
	}
}
