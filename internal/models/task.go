package models

import (
	"time"
)

// Task represents a todo item
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`

	Category Category `json:"category"` // CategoryNone when unset

	// StartDate and EndDate are canonical calendar days (midnight in the
	// reference zone). Either both are set or both are nil.
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	Completed bool `json:"completed"`
	Overdue   bool `json:"overdue"` // Overdue implies Completed
}

// Bucket returns the display grouping the task belongs to. Every task is
// in exactly one bucket.
func (t Task) Bucket() Bucket {
	switch {
	case t.Overdue:
		return BucketOverdue
	case t.Completed:
		return BucketDone
	default:
		return BucketDoing
	}
}

// Bucket is one of the three mutually exclusive display groupings
type Bucket int

const (
	BucketDoing Bucket = iota
	BucketOverdue
	BucketDone
)

// String returns the list heading for the bucket
func (b Bucket) String() string {
	switch b {
	case BucketDoing:
		return "Doing"
	case BucketOverdue:
		return "Overdue"
	case BucketDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Buckets lists all buckets in display order
func Buckets() []Bucket {
	return []Bucket{BucketDoing, BucketOverdue, BucketDone}
}
