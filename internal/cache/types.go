package cache

// Config carries the connection settings for the Redis-backed cache
type Config struct {
	Addr     string
	Password string
	DB       int
}
