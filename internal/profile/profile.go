package profile

import "cloud.google.com/go/civil"

// Record is the data collected across screens. Optional values are pointers so
// "never entered" stays distinct from a zero value.
type Record struct {
	Email       *string
	FullName    string
	DateOfBirth *civil.Date
	Gender      *Gender
	Address     string
	Country     *Country
}

// LoggedIn reports whether the login screen has been passed in this session.
func (r Record) LoggedIn() bool {
	return r.Email != nil
}

// Clone returns a copy that shares no pointers with r.
func (r Record) Clone() Record {
	out := Record{FullName: r.FullName, Address: r.Address}
	if r.Email != nil {
		v := *r.Email
		out.Email = &v
	}
	if r.DateOfBirth != nil {
		v := *r.DateOfBirth
		out.DateOfBirth = &v
	}
	if r.Gender != nil {
		v := *r.Gender
		out.Gender = &v
	}
	if r.Country != nil {
		v := *r.Country
		out.Country = &v
	}
	return out
}

// Patch carries the fields a screen wants to merge. Nil fields are left alone.
type Patch struct {
	Email       *string
	FullName    *string
	DateOfBirth *civil.Date
	Gender      *Gender
	Address     *string
	Country     *Country
}

// Store owns the one Record of the session.
type Store struct {
	record Record
	policy ClearPolicy
}

// NewStore returns an empty store using the given logout policy.
func NewStore(policy ClearPolicy) *Store {
	if policy == "" {
		policy = ClearRetain
	}
	return &Store{policy: policy}
}

// Policy returns the logout policy in force.
func (s *Store) Policy() ClearPolicy {
	return s.policy
}

// Get returns a copy of the current record.
func (s *Store) Get() Record {
	return s.record.Clone()
}

// Set merges every non-nil field of p into the record.
func (s *Store) Set(p Patch) {
	if p.Email != nil {
		v := *p.Email
		s.record.Email = &v
	}
	if p.FullName != nil {
		s.record.FullName = *p.FullName
	}
	if p.DateOfBirth != nil {
		v := *p.DateOfBirth
		s.record.DateOfBirth = &v
	}
	if p.Gender != nil {
		v := *p.Gender
		s.record.Gender = &v
	}
	if p.Address != nil {
		s.record.Address = *p.Address
	}
	if p.Country != nil {
		v := *p.Country
		s.record.Country = &v
	}
}

// Clear resets the email. Under ClearErase the form fields go too.
func (s *Store) Clear() {
	if s.policy == ClearErase {
		s.record = Record{}
		return
	}
	s.record.Email = nil
}
