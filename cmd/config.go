package cmd

// Config holds all runtime configuration for the job-matching service.
type Config struct {
	HTTPPort          string
	JobRetentionHours int
	PruneSchedule     string
}
