package entity

import (
	"gig-planner/core/entity"
)

// User is an account that owns gigs. Musicians on a lineup are not users;
// they are reached through invite links and email.
type User struct {
	entity.BaseEntity
	Email     string  `db:"email" json:"email"`
	Name      string  `db:"name" json:"name"`
	Password  string  `db:"password" json:"-"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url,omitempty"`
	IsActive  bool    `db:"is_active" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
