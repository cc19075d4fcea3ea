package database

import "time"

type Team struct {
	TeamID    string
	Name      string
	CreatedAt time.Time
}

type Developer struct {
	Email     string
	FirstName string
	LastName  string
	UserName  string
	CreatedAt time.Time
}

type User struct {
	UserID    int64
	Name      string
	Mail      string
	CreatedAt time.Time
}

type TeamMember struct {
	TeamID         string
	DeveloperEmail string
	AddedAt        time.Time
}

type CacheTag struct {
	Tag           string
	Invalidations int64
	UpdatedAt     time.Time
}
