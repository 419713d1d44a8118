package model

type EventKind string

const (
	CheckIn  EventKind = "Check-in"
	CheckOut EventKind = "Check-out"
)

// AttendanceEvent is one check-in or check-out row. Rows are append-only and
// never edited. Name and committee are denormalized from the roster at record
// time so exports reflect the roster as it was that day.
//
// Seq is the store's insertion sequence (autoincrement column or sheet row
// index) and breaks ties between events sharing the same time-of-day.
type AttendanceEvent struct {
	Seq       uint      `gorm:"primaryKey;autoIncrement" json:"seq"`
	MemberID  string    `gorm:"column:member_id;index" json:"member_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Committee string    `gorm:"column:committee" json:"committee"`
	Date      string    `gorm:"column:date;index" json:"date"` // 2006-01-02
	Time      string    `gorm:"column:time" json:"time"`       // 15:04:05
	Kind      EventKind `gorm:"column:kind" json:"kind"`
}

func (AttendanceEvent) TableName() string {
	return "attendance_events"
}
