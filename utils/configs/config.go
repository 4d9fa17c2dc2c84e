package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	Prefix        string         `json:"prefix" mapstructure:"prefix"`
	Port          string         `json:"port" mapstructure:"port"`
	ENV           string         `json:"env" mapstructure:"env"`
	Job           bool           `json:"job" mapstructure:"job"`
	MaxPoolSize   int            `json:"max_pool_size" mapstructure:"max_pool_size"`
	MongoURI      string         `json:"mongo_uri" mapstructure:"mongo_uri"`
	QueueUri      string         `json:"queue_uri" mapstructure:"queue_uri"`
	KafkaConfig   Kafka          `json:"kafka_config" mapstructure:"kafka_config"`
	MQTTUri       MQTTUri        `json:"mqtt_uri" mapstructure:"mqtt_uri"`
	BDV           BDVConfig      `json:"bdv" mapstructure:"bdv"`
	Telegram      TelegramConfig `json:"telegram" mapstructure:"telegram"`
	RetentionDays int            `json:"retention_days" mapstructure:"retention_days"`
}

// BDVConfig holds everything the conciliation client needs. It is injected
// at construction time so tests never have to mutate process environment.
type BDVConfig struct {
	ProductionUri      string `json:"production_uri" mapstructure:"production_uri"`
	QualityUri         string `json:"quality_uri" mapstructure:"quality_uri"`
	APIKey             string `json:"api_key" mapstructure:"api_key"`
	MerchantPhone      string `json:"merchant_phone" mapstructure:"merchant_phone"`
	UseQuality         bool   `json:"use_quality" mapstructure:"use_quality"`
	DefaultNationality string `json:"default_nationality" mapstructure:"default_nationality"`
	TimeoutSeconds     int    `json:"timeout_seconds" mapstructure:"timeout_seconds"`
	AlertThreshold     int    `json:"alert_threshold" mapstructure:"alert_threshold"`
}

type Kafka struct {
	Zookeepers string `json:"zookeepers" mapstructure:"zookeepers"`
	Brokers    string `json:"brokers" mapstructure:"brokers"`
	Partitions int    `json:"partitions" mapstructure:"partitions"`
	Replicas   int    `json:"replicas" mapstructure:"replicas"`
}

type MQTTUri struct {
	Uri      string `json:"uri" mapstructure:"uri"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Prefix   string `json:"prefix" mapstructure:"prefix"`
}

type TelegramConfig struct {
	BotToken       string `json:"bot_token" mapstructure:"bot_token"`
	AlertChannelId int64  `json:"alert_channel_id" mapstructure:"alert_channel_id"`
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
