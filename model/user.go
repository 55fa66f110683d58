package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrMembershipRange is returned when a membership ends before it starts.
var ErrMembershipRange = errors.New("membership_end must be after membership_start")

// User is a rider registered with the system.
type User struct {
	Entity

	Name  string   `validate:"required"`
	Email string   `validate:"required,email"`
	Type  UserType `validate:"required,oneof=casual member"`
}

// NewUser creates a validated user.
func NewUser(id, name, email string, userType UserType) (*User, error) {
	u := &User{
		Entity: newEntity(id),
		Name:   name,
		Email:  email,
		Type:   userType,
	}

	if err := check("user", u); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) String() string {
	return fmt.Sprintf("User(%s, %s)", u.ID, u.Name)
}

// CasualUser is a rider without a membership, paying per ride or day pass.
type CasualUser struct {
	User

	DayPassCount int `validate:"gte=0"`
}

// NewCasualUser creates a validated casual user.
func NewCasualUser(id, name, email string, dayPassCount int) (*CasualUser, error) {
	u := &CasualUser{
		User: User{
			Entity: newEntity(id),
			Name:   name,
			Email:  email,
			Type:   UserTypeCasual,
		},
		DayPassCount: dayPassCount,
	}

	if err := check("casual user", u); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *CasualUser) String() string {
	return fmt.Sprintf("CasualUser(%s, day_passes=%d)", u.ID, u.DayPassCount)
}

// MemberUser is a rider with an active or lapsed membership.
type MemberUser struct {
	User

	MembershipStart time.Time
	MembershipEnd   time.Time
	Tier            MembershipTier `validate:"required,oneof=basic premium"`
}

// NewMemberUser creates a validated member. An empty tier defaults to basic.
// When both membership timestamps are set, the end must be after the start.
func NewMemberUser(id, name, email string, start, end time.Time, tier MembershipTier) (*MemberUser, error) {
	if tier == "" {
		tier = TierBasic
	}

	if !start.IsZero() && !end.IsZero() && !end.After(start) {
		return nil, ErrMembershipRange
	}

	u := &MemberUser{
		User: User{
			Entity: newEntity(id),
			Name:   name,
			Email:  email,
			Type:   UserTypeMember,
		},
		MembershipStart: start,
		MembershipEnd:   end,
		Tier:            tier,
	}

	if err := check("member user", u); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *MemberUser) String() string {
	return fmt.Sprintf("MemberUser(%s, tier=%s)", u.ID, u.Tier)
}
