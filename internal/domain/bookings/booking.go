package bookings

import "time"

const (
	DefaultService   = "tour"
	DefaultListLimit = 50
)

type Booking struct {
	Id      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Service string    `json:"service"`
	Time    time.Time `json:"time"`
}
