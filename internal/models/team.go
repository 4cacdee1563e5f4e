package models

// Team represents an owner's fantasy team
type Team struct {
	Name   string  `db:"name" json:"name" validate:"required"`
	Owner  string  `db:"owner" json:"owner" validate:"required"`
	Roster *Roster `db:"-" json:"-"`
}
