package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort         string
	MetricsPort         string
	Environment         string
	JWTSecret           string
	StoreName           string
	ContactEmail        string
	MongoDBConfig       MongoDBConfig
	PostgreSQLConfig    PostgreSQLConfig
	ElasticsearchConfig ElasticsearchConfig
	KafkaConfig         KafkaConfig
	SMTPConfig          SMTPConfig
	TracingConfig       TracingConfig
	ShippingConfig      ShippingConfig
	BlobStorageHost     string
	TextGenerationHost  string
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
}

type PostgreSQLConfig struct {
	DBUsername string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
}

type ElasticsearchConfig struct {
	DBHost string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

// ShippingConfig names the shipping-fee policy explicitly: "flat" charges
// FlatFee once per order, "per_item" sums each line's shipping fee.
type ShippingConfig struct {
	Policy  string
	FlatFee float64
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:  os.Getenv("SERVICE_PORT"),
		MetricsPort:  os.Getenv("METRICS_PORT"),
		Environment:  os.Getenv("ENVIRONMENT"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		StoreName:    os.Getenv("STORE_NAME"),
		ContactEmail: os.Getenv("CONTACT_EMAIL"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("MONGODB_HOST"),
			DBPort: os.Getenv("MONGODB_PORT"),
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBUsername: os.Getenv("POSTGRES_USERNAME"),
			DBPassword: os.Getenv("POSTGRES_PASSWORD"),
			DBHost:     os.Getenv("POSTGRES_HOST"),
			DBPort:     os.Getenv("POSTGRES_PORT"),
			DBName:     os.Getenv("POSTGRES_DB_NAME"),
		},
		ElasticsearchConfig: ElasticsearchConfig{
			DBHost: os.Getenv("ELASTICSEARCH_HOST"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		ShippingConfig: ShippingConfig{
			Policy: os.Getenv("SHIPPING_POLICY"),
		},
		BlobStorageHost:    os.Getenv("BLOB_STORAGE_HOST"),
		TextGenerationHost: os.Getenv("TEXT_GENERATION_HOST"),
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	if conf.ShippingConfig.Policy == "" {
		conf.ShippingConfig.Policy = "flat"
	}

	flatFee, err := strconv.ParseFloat(os.Getenv("SHIPPING_FLAT_FEE"), 64)
	if err != nil {
		flatFee = 5.00
	}
	conf.ShippingConfig.FlatFee = flatFee

	return &conf
}
