package store

import "github.com/hance08/teller/internal/bank"

type Repository interface {
	// User Operations
	CreateUser(user *bank.User) error
	GetUser(username string) (*bank.User, error)
	UserExists(username string) bool
	Usernames() []string
	Count() int

	Close() error
}
