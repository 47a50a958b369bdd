package service

const (
	// Resource name used in errors.
	resourceGiveaway = "giveaway"

	secondsPerHour = 3600
)
