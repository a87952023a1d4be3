package models

// Entity is implemented by every integer-identified table row.
type Entity interface {
	GetID() uint
	SetID(id uint)
}

// Entity kinds, used as notification types.
const (
	KindAdmin    = "admin"
	KindProperty = "property"
	KindAgent    = "agent"
	KindBuilder  = "builder"
	KindProject  = "project"
	KindContent  = "content"
	KindInquiry  = "inquiry"
)
