package employee

import (
	"time"
)

type Employee struct {
	ID        string
	Name      string
	Email     string
	Position  string
	CreatedAt time.Time
}
