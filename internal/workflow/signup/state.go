package signup

// State is a step of the signup state machine.
//
//	Idle -> Validating -> CreatingIdentity -> InsertingProfile -> Redirecting
//	            |                |                    |
//	    ValidationFailed   IdentityFailed       ProfileFailed
type State int

const (
	Idle State = iota
	Validating
	CreatingIdentity
	InsertingProfile
	Redirecting
	ValidationFailed
	IdentityFailed
	ProfileFailed
)

var stateNames = [...]string{
	Idle:             "idle",
	Validating:       "validating",
	CreatingIdentity: "creating_identity",
	InsertingProfile: "inserting_profile",
	Redirecting:      "redirecting",
	ValidationFailed: "validation_failed",
	IdentityFailed:   "identity_failed",
	ProfileFailed:    "profile_failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition follows s within one submit.
func (s State) Terminal() bool {
	switch s {
	case Redirecting, ValidationFailed, IdentityFailed, ProfileFailed:
		return true
	}
	return false
}
