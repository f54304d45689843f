package service

import (
	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
)

// Classification partitions the active-member set into paid and unpaid for
// one cycle. Unpaid includes members with no record at all.
type Classification struct {
	PaidMemberIDs map[string]bool
	UnpaidMembers []domain.Member
}

// Classify is a pure function of its inputs: no I/O, deterministic. All
// three automation actions derive their unpaid set from this one place so
// reminders, overdue notices, and grace enforcement can never disagree on
// who is delinquent.
func Classify(records map[string]*domain.MemberDuesRecord, members []domain.Member) Classification {
	c := Classification{
		PaidMemberIDs: make(map[string]bool),
	}
	for _, m := range members {
		if domain.StatusFor(records[m.ID]).Terminal() {
			c.PaidMemberIDs[m.ID] = true
		} else {
			c.UnpaidMembers = append(c.UnpaidMembers, m)
		}
	}
	return c
}
