package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("predial_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel:    viper.GetString("general.log_level"),
				Environment: viper.GetString("general.environment"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Kafka: KafkaConfig{
				Brokers: viper.GetStringSlice("kafka.brokers"),
				Group:   viper.GetString("kafka.group"),
			},
			Redis: RedisConfig{
				Enabled: viper.GetBool("redis.enabled"),
				Addr:    viper.GetString("redis.addr"),
				DB:      viper.GetInt("redis.db"),
			},
			MailerSend: MailerSendConfig{
				APIKey:    viper.GetString("mailersend.api_key"),
				FromEmail: viper.GetString("mailersend.from_email"),
				FromName:  viper.GetString("mailersend.from_name"),
			},
			Alerting: AlertingConfig{
				Schedule: viper.GetString("alerting.schedule"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Kafka      KafkaConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	MailerSend MailerSendConfig
	Alerting   AlertingConfig
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
}

type KafkaConfig struct {
	Brokers []string
	Group   string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type RedisConfig struct {
	Enabled bool
	Addr    string
	DB      int
}

type MailerSendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type AlertingConfig struct {
	Schedule string
}
