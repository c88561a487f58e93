package model

import "time"

type StatusCheck struct {
	ID         string
	ClientName string
	Timestamp  time.Time
}
