package config

type InternalConfig struct {
	App      App
	RabbitMQ AppRabbitMQ
	JWT      JWT
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	BaseUrl                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeout           int
	MaxTimeRequestsPerSeconds int
	// CommitRateLimit caps schema commits per IP per second. Commits take a
	// distributed lock, so they get a tighter budget than reads.
	CommitRateLimit        int
	CommitLockTTLInSeconds int
}

type AppRabbitMQ struct {
	ScheduleEventsQueue string
}

type JWT struct {
	Secret string
}
