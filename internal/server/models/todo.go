package models

import "time"

// Todo is a single task bound to its owning user. OwnerID is set at creation
// and immutable; every query touching a todo is scoped by (ID, OwnerID).
type Todo struct {
	ID        string
	OwnerID   string
	Title     string
	Completed bool
	CreatedAt time.Time
}
