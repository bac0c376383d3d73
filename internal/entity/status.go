package entity

import "github.com/luckydraw-lab/backend/pkg/enum"

// EntityStatus is shared by every node of the activation hierarchy. Only
// Active entities take part in spins; the other values all gate identically
// and differ only for bookkeeping.
type EntityStatus string

var (
	Active   = enum.New(EntityStatus("active"))
	Inactive = enum.New(EntityStatus("inactive"))
	Draft    = enum.New(EntityStatus("draft"))
	Archived = enum.New(EntityStatus("archived"))
	Deleted  = enum.New(EntityStatus("deleted"))
)
