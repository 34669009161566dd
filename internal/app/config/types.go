package config

type (
	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App      App
		Registry Registry
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
		SuperadminAPIKey           string
	}

	Registry struct {
		BaseUrl                 string
		SearchCacheTTLInSeconds int
		RequestTimeoutInSeconds int
		DefaultPageSize         int
		MaxPageSize             int
	}
)
