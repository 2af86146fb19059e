package constants

const (
	AppName = "teller"
)

const (
	MaxNameLen     = 100
	MaxUsernameLen = 64
	CentsPerUnit   = 100
)

const (
	DefaultCurrency = "USD"
	DateTimeFormat  = "2006-01-02 15:04:05"
)

const (
	// Hash schemes accepted by security.hash
	HashArgon2id = "argon2id"
	HashSHA256   = "sha256"

	MinSaltBytes = 16
)

const (
	RoundingNotice = "Note that all transactions are rounded to the nearest cent."
)
