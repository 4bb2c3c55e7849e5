package operator

import "time"

type Operator struct {
	ID        string
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}
