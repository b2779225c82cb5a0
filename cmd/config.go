package cmd

// Config carries the service settings, loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	KafkaHost  string

	// StrictStatusTransitions makes the kitchen status machine enforce
	// step-by-step adjacency instead of allowing any move between
	// non-terminal statuses.
	StrictStatusTransitions bool
}
