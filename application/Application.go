package application

import (
	"go.uber.org/zap"

	mqttCl "github.com/eclipse/paho.mqtt.golang"

	"pagomovil-system/domain/constants"
	"pagomovil-system/domain/repositories"
	"pagomovil-system/infrastructure/database_mgo"
	"pagomovil-system/infrastructure/database_mgo/verifications"
	"pagomovil-system/infrastructure/kafka"
	"pagomovil-system/infrastructure/mqtt"
	"pagomovil-system/infrastructure/rabbitmq"
	"pagomovil-system/infrastructure/service/bank_service"
	"pagomovil-system/utils/configs"
	"pagomovil-system/utils/gpooling"
	"pagomovil-system/utils/telegram"
)

type VerificationApplication struct {
	Config                 *configs.Config
	Queue                  *rabbitmq.RabbiMQ
	Logger                 *zap.Logger
	IPool                  gpooling.IPool
	BankServiceRepository  repositories.BankServiceRepository
	VerificationRepository repositories.VerificationRepository
	MQTT                   repositories.IMqtt
	Events                 repositories.IEvents
	// AlertFn is telegram.SendTelegram in production, swapped in tests
	AlertFn func(botToken, message string, channelId int64)

	unreachableStreak int64
}

func NewVerificationApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) *VerificationApplication {
	opts := rabbitmq.NewOptions().WithUri(config.QueueUri)

	queue, _ := rabbitmq.NewRabbiMQ(*opts, logger, pool)
	db := database_mgo.NewMongoDBconnection(config.MongoURI)

	events, _ := kafka.NewConnection(config.KafkaConfig.Zookeepers, config.KafkaConfig.Brokers)

	var mqttObjClient = []mqttCl.Client{
		mqtt.Connection(config.MQTTUri.Uri, config.MQTTUri.Username, config.MQTTUri.Password),
	}

	application := &VerificationApplication{
		Config:                 config,
		Queue:                  queue,
		Logger:                 logger,
		IPool:                  pool,
		BankServiceRepository:  bank_service.NewRepoImpl(config.BDV, logger),
		VerificationRepository: verifications.NewRepository(db, config),
		MQTT:                   mqtt.NewMQTTRepositoryImpl(mqttObjClient, logger),
		Events:                 events,
		AlertFn:                telegram.SendTelegram,
	}

	if err := events.EnsureTopic(constants.TopicVerification, config.KafkaConfig.Partitions, config.KafkaConfig.Replicas); err != nil {
		logger.With(zap.Error(err)).Error("can not ensure verification topic")
	}

	if err := application.RegisterVerifyConsumer(); err != nil {
		logger.With(zap.Error(err)).Error("can not register verify consumer")
	}

	return application
}
