package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/luckydraw-lab/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := httpServer.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(*s.configs, s.logger, s.db)

	// Region API
	router.POST(s.router, "/createRegion", s.regionDomain.CreateRegion)
	router.GET(s.router, "/getRegion", s.regionDomain.GetRegion)
	router.POST(s.router, "/setRegionStatus", s.regionDomain.SetRegionStatus)
	router.POST(s.router, "/createProvince", s.regionDomain.CreateProvince)
	router.POST(s.router, "/setProvinceStatus", s.regionDomain.SetProvinceStatus)

	// Event API
	router.POST(s.router, "/createEvent", s.eventDomain.CreateEvent)
	router.GET(s.router, "/getEvent", s.eventDomain.GetEvent)
	router.POST(s.router, "/setEventStatus", s.eventDomain.SetEventStatus)
	router.POST(s.router, "/createEventLocation", s.eventDomain.CreateEventLocation)
	router.POST(s.router, "/setEventLocationStatus", s.eventDomain.SetEventLocationStatus)
	router.POST(s.router, "/createGoldenHour", s.eventDomain.CreateGoldenHour)
	router.POST(s.router, "/createReward", s.eventDomain.CreateReward)
	router.POST(s.router, "/setRewardStatus", s.eventDomain.SetRewardStatus)
	router.POST(s.router, "/createRewardEvent", s.eventDomain.CreateRewardEvent)

	// Participant API
	router.POST(s.router, "/createParticipant", s.participantDomain.CreateParticipant)
	router.GET(s.router, "/getParticipant", s.participantDomain.GetParticipant)
	router.POST(s.router, "/setParticipantStatus", s.participantDomain.SetParticipantStatus)
	router.POST(s.router, "/createParticipantEvent", s.participantDomain.CreateParticipantEvent)
	router.POST(s.router, "/setParticipantEventStatus", s.participantDomain.SetParticipantEventStatus)

	// Spin API
	router.POST(s.router, "/spin", s.spinDomain.Spin)
	router.GET(s.router, "/canSpin", s.spinDomain.CanSpin)
	router.GET(s.router, "/getActiveGoldenHour", s.spinDomain.GetActiveGoldenHour)
	router.GET(s.router, "/getRemainingQuantity", s.spinDomain.GetRemainingQuantity)
	router.GET(s.router, "/getSpinHistories", s.spinDomain.GetSpinHistories)
}
