package config

type (
	InternalConfig struct {
		App   App
		FHIR  FHIR
		Admin Admin
		Slots Slots
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		StaticDir       string
		LoginPage       string
		MaxRequests     int
		ShutdownTimeout int
	}

	FHIR struct {
		BaseUrl string
	}

	Admin struct {
		Password string
	}

	// Slots carries the raw slot catalog JSON; parsing lives in models.
	Slots struct {
		CatalogJSON string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
