package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreBolt     = "bolt"
)

type Config struct {
	Port        string
	StoreDriver string
	BoltPath    string

	AWSRegion        string
	DynamoDBEndpoint string
	SpacesTable      string
	SessionsTable    string
	ActivePlateTable string
	CustomersTable   string
	UsersTable       string

	JWTSecret     string
	JWTExpiration time.Duration

	TariffCar          int64
	TariffMotorcycle   int64
	TariffBicycle      int64
	TariffMinimumHours int64

	SubscriptionPriceDaily   int64
	SubscriptionPriceMonthly int64

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	AdminEmail    string
	AdminPassword string

	LogLevel string
}

// Load reads configuration from the environment. A .env file is picked up by the
// godotenv autoload import in cmd/api.
func Load() *Config {
	return &Config{
		Port:        getenvDefault("PORT", "8080"),
		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		BoltPath:    getenvDefault("BOLT_PATH", "parking.db"),

		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		SpacesTable:      getenvDefault("SPACES_TABLE", "spaces"),
		SessionsTable:    getenvDefault("SESSIONS_TABLE", "sessions"),
		ActivePlateTable: getenvDefault("ACTIVE_PLATES_TABLE", "active_plates"),
		CustomersTable:   getenvDefault("CUSTOMERS_TABLE", "customers"),
		UsersTable:       getenvDefault("USERS_TABLE", "users"),

		JWTSecret:     getenvDefault("JWT_SECRET", "change-me"),
		JWTExpiration: time.Duration(getenvInt("JWT_EXPIRATION_HOURS", 8)) * time.Hour,

		TariffCar:          getenvInt("TARIFF_CAR", 4000),
		TariffMotorcycle:   getenvInt("TARIFF_MOTORCYCLE", 2000),
		TariffBicycle:      getenvInt("TARIFF_BICYCLE", 1000),
		TariffMinimumHours: getenvInt("TARIFF_MINIMUM_HOURS", 0),

		SubscriptionPriceDaily:   getenvInt("SUBSCRIPTION_PRICE_DAILY", 5000),
		SubscriptionPriceMonthly: getenvInt("SUBSCRIPTION_PRICE_MONTHLY", 100000),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		LogLevel: getenvDefault("LOG_LEVEL", "info"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
