package test

import (
	"sync"

	"pagomovil-system/application"
	"pagomovil-system/domain/repositories/mocks"
	"pagomovil-system/utils/configs"
	"pagomovil-system/utils/gen_ids"
	"pagomovil-system/utils/gpooling"
	logger2 "pagomovil-system/utils/logger"
)

var initIdsOnce sync.Once

type MockService struct {
	VerificationApplication *application.VerificationApplication
	BankService             *mocks.BankServiceRepository
	Verifications           *mocks.VerificationRepository
	Mqtt                    *mocks.IMqtt
	Events                  *mocks.IEvents
	Alerts                  chan string
}

func NewTestVerificationApplication() *MockService {
	config, err := configs.LoadTestConfig("../../")

	if err != nil {
		panic(err)
	}

	logger, err := logger2.NewLogger("DEV")

	if err != nil {
		panic(err)
	}

	pool, err := gpooling.NewPooling(config.MaxPoolSize, logger)

	if err != nil {
		panic(err)
	}

	initIdsOnce.Do(gen_ids.InitGenIDservice)

	bankService := &mocks.BankServiceRepository{}
	verificationsMock := &mocks.VerificationRepository{}
	mqttMock := &mocks.IMqtt{}
	eventsMock := &mocks.IEvents{}
	alerts := make(chan string, 10)

	return &MockService{
		VerificationApplication: &application.VerificationApplication{
			Config:                 config,
			Logger:                 logger,
			IPool:                  pool,
			BankServiceRepository:  bankService,
			VerificationRepository: verificationsMock,
			MQTT:                   mqttMock,
			Events:                 eventsMock,
			AlertFn: func(botToken, message string, channelId int64) {
				alerts <- message
			},
		},
		BankService:   bankService,
		Verifications: verificationsMock,
		Mqtt:          mqttMock,
		Events:        eventsMock,
		Alerts:        alerts,
	}
}
