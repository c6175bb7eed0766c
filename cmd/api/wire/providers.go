package wire

import (
	"predial-server/cmd/config"
	"predial-server/internal/infra/cache"
	"predial-server/internal/infra/notification"
	"predial-server/internal/infra/pubsub"
	"predial-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) sql.ORM {
	if cfg.General.Environment == "local" {
		orm, err := sql.NewMemoryORM()
		if err != nil {
			panic(err)
		}

		return orm
	}

	db := sql.NewPosgreDatabase(cfg.Postgresql.URL)
	if err := db.Open(); err != nil {
		panic(err)
	}

	orm, err := sql.NewPosgreORM(cfg.Postgresql.DSN)
	if err != nil {
		panic(err)
	}

	return orm
}

func providePublisherFactory(cfg config.AppConfig) pubsub.PublisherFactory {
	factory := pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:   cfg.General.Environment,
		KafkaBrokers:  cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.Group,
	})

	return factory.GetPublisherFactory()
}

func provideCache(cfg config.AppConfig) cache.Cache {
	if cfg.Redis.Enabled {
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.DB = cfg.Redis.DB

		redisCache, err := cache.NewRedisCache(redisConfig)
		if err != nil {
			panic(err)
		}

		return redisCache
	}

	ristrettoCache, err := cache.New(nil)
	if err != nil {
		panic(err)
	}

	return ristrettoCache
}

func provideNotificationClient(cfg config.AppConfig) notification.NotificationClient {
	return notification.NewMailerSendClient(notification.MailerSendConfig{
		APIKey:    cfg.MailerSend.APIKey,
		FromEmail: cfg.MailerSend.FromEmail,
		FromName:  cfg.MailerSend.FromName,
	})
}

func provideAlertingSchedule(cfg config.AppConfig) string {
	return cfg.Alerting.Schedule
}
