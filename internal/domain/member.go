package domain

import "time"

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusAlumni   MemberStatus = "alumni"
)

type MemberType string

const (
	MemberTypeProfessional MemberType = "professional"
	MemberTypeStudent      MemberType = "student"
)

// Member is the registry view consumed by the dues engine. The registry is
// owned elsewhere; grace enforcement is the only dues code path that writes
// back (status, statusReason, statusUpdatedAt).
type Member struct {
	ID              string       `firestore:"-" json:"id"`
	Email           string       `firestore:"email" json:"email"`
	DisplayName     string       `firestore:"displayName" json:"displayName"`
	Status          MemberStatus `firestore:"status" json:"status"`
	MemberType      MemberType   `firestore:"memberType" json:"memberType"`
	StatusReason    string       `firestore:"statusReason" json:"statusReason,omitempty"`
	StatusUpdatedAt *time.Time   `firestore:"statusUpdatedAt" json:"statusUpdatedAt,omitempty"`
}

// Role is the admin capability level carried in auth token claims.
type Role string

const (
	RoleMember    Role = "member"
	RoleTreasurer Role = "treasurer"
	RolePresident Role = "president"
)

var roleRank = map[Role]int{
	RoleMember:    1,
	RoleTreasurer: 2,
	RolePresident: 3,
}

// AtLeast reports whether r grants at least the capabilities of min.
// Unknown roles rank below member.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}
