package config

import (
	"careslot-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":3000"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Taipei"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			StaticDir:       utils.GetEnvString("APP_STATIC_DIR", "public"),
			LoginPage:       utils.GetEnvString("APP_LOGIN_PAGE", "login.html"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		FHIR: FHIR{
			BaseUrl: utils.GetEnvString("FHIR_BASE_URL", "http://hapi.fhir.org/baseR4"),
		},
		Admin: Admin{
			Password: utils.GetEnvString("ADMIN_PASSWORD", "admin123"),
		},
		Slots: Slots{
			CatalogJSON: utils.GetEnvString("SLOT_CATALOG", ""),
		},
	}
}
