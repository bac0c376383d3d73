package main

import (
	"os"

	"github.com/luckydraw-lab/backend/config"
	"github.com/luckydraw-lab/backend/internal/domain"
	"github.com/luckydraw-lab/backend/internal/repository"
	"github.com/luckydraw-lab/backend/pkg/logger"
	"github.com/luckydraw-lab/backend/pkg/router"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	regionRepo           repository.RegionRepository
	provinceRepo         repository.ProvinceRepository
	eventRepo            repository.EventRepository
	eventLocationRepo    repository.EventLocationRepository
	participantRepo      repository.ParticipantRepository
	participantEventRepo repository.ParticipantEventRepository
	rewardRepo           repository.RewardRepository
	rewardEventRepo      repository.RewardEventRepository
	goldenHourRepo       repository.GoldenHourRepository
	spinHistoryRepo      repository.SpinHistoryRepository

	regionDomain      domain.RegionDomain
	eventDomain       domain.EventDomain
	participantDomain domain.ParticipantDomain
	spinDomain        domain.SpinDomain

	router *router.Router
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "luckydraw"),
			Password: getEnv("MYSQL_PASSWORD", "secret"),
			Database: getEnv("MYSQL_DATABASE", "luckydraw"),
		},
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", "localhost"),
			Port: getEnv("PORT", "8080"),
			Cert: getEnv("SERVER_CERT", ""),
			Key:  getEnv("SERVER_KEY", ""),
		},
		Spin: config.SpinConfigs{
			MaxCommitRetry: 3,
		},
	}
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLoggerFromEnv()
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.regionRepo = repository.NewRegionRepository()
	s.provinceRepo = repository.NewProvinceRepository()
	s.eventRepo = repository.NewEventRepository()
	s.eventLocationRepo = repository.NewEventLocationRepository()
	s.participantRepo = repository.NewParticipantRepository()
	s.participantEventRepo = repository.NewParticipantEventRepository()
	s.rewardRepo = repository.NewRewardRepository()
	s.rewardEventRepo = repository.NewRewardEventRepository()
	s.goldenHourRepo = repository.NewGoldenHourRepository()
	s.spinHistoryRepo = repository.NewSpinHistoryRepository()
}

func (s *srv) loadDomains() {
	s.regionDomain = domain.NewRegionDomain(
		s.regionRepo, s.provinceRepo, s.eventLocationRepo, s.rewardRepo,
		s.participantEventRepo, s.goldenHourRepo)
	s.eventDomain = domain.NewEventDomain(
		s.eventRepo, s.regionRepo, s.eventLocationRepo, s.goldenHourRepo,
		s.rewardRepo, s.rewardEventRepo, s.participantEventRepo)
	s.participantDomain = domain.NewParticipantDomain(
		s.participantRepo, s.provinceRepo, s.eventLocationRepo,
		s.participantEventRepo)
	s.spinDomain = domain.NewSpinDomain(
		s.participantEventRepo, s.participantRepo, s.eventLocationRepo,
		s.eventRepo, s.regionRepo, s.goldenHourRepo, s.rewardEventRepo,
		s.spinHistoryRepo)
}
