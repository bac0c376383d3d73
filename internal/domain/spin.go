package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/luckydraw-lab/backend/internal/domain/spinengine"
	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/internal/model"
	"github.com/luckydraw-lab/backend/internal/repository"
	"github.com/luckydraw-lab/backend/pkg/errorx"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Used when the configuration does not bound conflict retries.
const defaultMaxCommitRetry = 3

type SpinDomain interface {
	Spin(context.Context, *model.SpinRequest) (*model.SpinResponse, error)
	CanSpin(context.Context, *model.CanSpinRequest) (*model.CanSpinResponse, error)
	GetActiveGoldenHour(context.Context, *model.GetActiveGoldenHourRequest) (*model.GetActiveGoldenHourResponse, error)
	GetRemainingQuantity(context.Context, *model.GetRemainingQuantityRequest) (*model.GetRemainingQuantityResponse, error)
	GetSpinHistories(context.Context, *model.GetSpinHistoriesRequest) (*model.GetSpinHistoriesResponse, error)
}

type spinDomain struct {
	participantEventRepo repository.ParticipantEventRepository
	participantRepo      repository.ParticipantRepository
	eventLocationRepo    repository.EventLocationRepository
	eventRepo            repository.EventRepository
	regionRepo           repository.RegionRepository
	goldenHourRepo       repository.GoldenHourRepository
	rewardEventRepo      repository.RewardEventRepository
	spinHistoryRepo      repository.SpinHistoryRepository

	rand spinengine.Rand
}

func NewSpinDomain(
	participantEventRepo repository.ParticipantEventRepository,
	participantRepo repository.ParticipantRepository,
	eventLocationRepo repository.EventLocationRepository,
	eventRepo repository.EventRepository,
	regionRepo repository.RegionRepository,
	goldenHourRepo repository.GoldenHourRepository,
	rewardEventRepo repository.RewardEventRepository,
	spinHistoryRepo repository.SpinHistoryRepository,
) *spinDomain {
	return &spinDomain{
		participantEventRepo: participantEventRepo,
		participantRepo:      participantRepo,
		eventLocationRepo:    eventLocationRepo,
		eventRepo:            eventRepo,
		regionRepo:           regionRepo,
		goldenHourRepo:       goldenHourRepo,
		rewardEventRepo:      rewardEventRepo,
		spinHistoryRepo:      spinHistoryRepo,
		rand:                 spinengine.DefaultRand,
	}
}

// spinContext gathers the participant event and its whole ancestor chain, the
// rows needed to decide eligibility.
type spinContext struct {
	participantEvent *entity.ParticipantEvent
	participant      *entity.Participant
	location         *entity.EventLocation
	event            *entity.Event
	region           *entity.Region
}

func (d *spinDomain) loadSpinContext(ctx context.Context, participantEventID string) (*spinContext, error) {
	participantEvent, err := d.participantEventRepo.GetByID(ctx, participantEventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant event: %v", err)
		return nil, errorx.Unknown
	}

	participant, err := d.participantRepo.GetByID(ctx, participantEvent.ParticipantID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	location, err := d.eventLocationRepo.GetByID(ctx, participantEvent.EventLocationID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get event location: %v", err)
		return nil, errorx.Unknown
	}

	event, err := d.eventRepo.GetByID(ctx, location.EventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	region, err := d.regionRepo.GetByID(ctx, location.RegionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get region: %v", err)
		return nil, errorx.Unknown
	}

	return &spinContext{
		participantEvent: participantEvent,
		participant:      participant,
		location:         location,
		event:            event,
		region:           region,
	}, nil
}

func (sc *spinContext) canSpin(now time.Time) spinengine.Reason {
	return spinengine.CanSpin(
		sc.participantEvent, sc.location, sc.event, sc.region, sc.participant, now)
}

func rejectedSpin(reason spinengine.Reason) *model.SpinResponse {
	return &model.SpinResponse{Rejected: true, Reason: string(reason)}
}

// Spin performs one spin attempt end to end. Ineligibility and exhaustion
// come back as structured rejections, a loss as a normal committed outcome.
// When the commit loses a race on the reward inventory the whole attempt is
// replayed, up to the configured bound.
func (d *spinDomain) Spin(ctx context.Context, req *model.SpinRequest) (*model.SpinResponse, error) {
	if req.ParticipantEventID == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a participant event id")
	}

	maxRetry := xcontext.Configs(ctx).Spin.MaxCommitRetry
	if maxRetry <= 0 {
		maxRetry = defaultMaxCommitRetry
	}

	for attempt := 0; attempt < maxRetry; attempt++ {
		resp, retry, err := d.spinOnce(ctx, req.ParticipantEventID)
		if err != nil {
			return nil, err
		}

		if !retry {
			return resp, nil
		}
	}

	return nil, errorx.New(errorx.Unavailable, "Too many concurrent spins, please try again")
}

func (d *spinDomain) spinOnce(
	ctx context.Context, participantEventID string,
) (*model.SpinResponse, bool, error) {
	now := time.Now()

	sc, err := d.loadSpinContext(ctx, participantEventID)
	if err != nil {
		return nil, false, err
	}

	if reason := sc.canSpin(now); reason != spinengine.ReasonNone {
		return rejectedSpin(reason), false, nil
	}

	hours, err := d.goldenHourRepo.GetActiveByEventLocationID(ctx, sc.location.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get golden hours: %v", err)
		return nil, false, errorx.Unknown
	}

	goldenHour, err := spinengine.ResolveGoldenHour(hours, now)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Golden hour integrity violation at location %s: %v",
			sc.location.ID, err)
		return nil, false, errorx.New(errorx.Internal,
			"Golden hour windows overlap at this location")
	}

	rewardEvents, err := d.rewardEventRepo.GetCandidatesByEventLocationID(ctx, sc.location.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reward candidates: %v", err)
		return nil, false, errorx.Unknown
	}

	candidates := make([]spinengine.Candidate, 0, len(rewardEvents))
	for i := range rewardEvents {
		if rewardEvents[i].Reward.EventLocationID != sc.location.ID {
			xcontext.Logger(ctx).Errorf(
				"Reward %s does not belong to location %s of its allocation",
				rewardEvents[i].RewardID, sc.location.ID)
			return nil, false, errorx.New(errorx.Internal, "Inconsistent reward allocation")
		}

		candidates = append(candidates, spinengine.Candidate{
			RewardEvent: &rewardEvents[i],
			Probability: rewardEvents[i].Reward.WinProbability,
		})
	}

	outcome := spinengine.Select(candidates, spinengine.Multiplier(goldenHour), d.rand)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	// A concurrent deactivation must not slip between the check and the
	// write: eligibility is validated again on the transaction snapshot.
	sc, err = d.loadSpinContext(ctx, participantEventID)
	if err != nil {
		return nil, false, err
	}

	if reason := sc.canSpin(now); reason != spinengine.ReasonNone {
		return rejectedSpin(reason), false, nil
	}

	if err := d.participantEventRepo.CheckAndUseSpin(ctx, participantEventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Another spin of the same participant spent the last one first.
			return rejectedSpin(spinengine.ReasonExhausted), false, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot use spin: %v", err)
		return nil, false, errorx.Unknown
	}

	history := &entity.SpinHistory{
		Base:               entity.Base{ID: uuid.NewString()},
		ParticipantEventID: participantEventID,
		SpinTime:           now,
	}

	if goldenHour != nil {
		history.GoldenHourID = sql.NullString{String: goldenHour.ID, Valid: true}
	}

	var wonReward *entity.Reward
	if outcome.Win {
		if err := d.rewardEventRepo.CheckAndWin(ctx, outcome.RewardEvent.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// A concurrent winner took the last unit; replay the spin
				// against the reduced inventory.
				return nil, true, nil
			}

			xcontext.Logger(ctx).Errorf("Cannot book the win: %v", err)
			return nil, false, errorx.Unknown
		}

		history.Win = true
		history.RewardEventID = sql.NullString{String: outcome.RewardEvent.ID, Valid: true}
		wonReward = &outcome.RewardEvent.Reward
	}

	if err := d.spinHistoryRepo.Create(ctx, history); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create spin history: %v", err)
		return nil, false, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	clientHistory := convertSpinHistory(history)
	resp := &model.SpinResponse{Win: history.Win, SpinHistory: &clientHistory}
	if wonReward != nil {
		clientReward := convertReward(wonReward)
		resp.Reward = &clientReward
	}

	return resp, false, nil
}

func (d *spinDomain) CanSpin(
	ctx context.Context, req *model.CanSpinRequest,
) (*model.CanSpinResponse, error) {
	sc, err := d.loadSpinContext(ctx, req.ParticipantEventID)
	if err != nil {
		return nil, err
	}

	reason := sc.canSpin(time.Now())
	return &model.CanSpinResponse{
		CanSpin: reason == spinengine.ReasonNone,
		Reason:  string(reason),
	}, nil
}

func (d *spinDomain) GetActiveGoldenHour(
	ctx context.Context, req *model.GetActiveGoldenHourRequest,
) (*model.GetActiveGoldenHourResponse, error) {
	timestamp := req.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if _, err := d.eventLocationRepo.GetByID(ctx, req.EventLocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event location")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event location: %v", err)
		return nil, errorx.Unknown
	}

	hours, err := d.goldenHourRepo.GetActiveByEventLocationID(ctx, req.EventLocationID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get golden hours: %v", err)
		return nil, errorx.Unknown
	}

	goldenHour, err := spinengine.ResolveGoldenHour(hours, timestamp)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Golden hour integrity violation at location %s: %v",
			req.EventLocationID, err)
		return nil, errorx.New(errorx.Internal,
			"Golden hour windows overlap at this location")
	}

	resp := &model.GetActiveGoldenHourResponse{}
	if goldenHour != nil {
		clientHour := convertGoldenHour(goldenHour)
		resp.GoldenHour = &clientHour
	}

	return resp, nil
}

func (d *spinDomain) GetRemainingQuantity(
	ctx context.Context, req *model.GetRemainingQuantityRequest,
) (*model.GetRemainingQuantityResponse, error) {
	rewardEvent, err := d.rewardEventRepo.GetByID(ctx, req.RewardEventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward event: %v", err)
		return nil, errorx.Unknown
	}

	wins, err := d.spinHistoryRepo.CountWinsByRewardEventID(ctx, rewardEvent.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count win histories: %v", err)
		return nil, errorx.Unknown
	}

	// The booked counter and the committed win rows are written in the same
	// transaction; a mismatch means the data is corrupted.
	if wins != int64(rewardEvent.WonQuantity) {
		xcontext.Logger(ctx).Errorf(
			"Reward event %s booked %d wins but has %d win histories",
			rewardEvent.ID, rewardEvent.WonQuantity, wins)
		return nil, errorx.New(errorx.Internal, "Inconsistent reward inventory")
	}

	return &model.GetRemainingQuantityResponse{
		RewardEvent: convertRewardEvent(rewardEvent),
		Remaining:   rewardEvent.Quantity - rewardEvent.WonQuantity,
	}, nil
}

func (d *spinDomain) GetSpinHistories(
	ctx context.Context, req *model.GetSpinHistoriesRequest,
) (*model.GetSpinHistoriesResponse, error) {
	if _, err := d.participantEventRepo.GetByID(ctx, req.ParticipantEventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant event: %v", err)
		return nil, errorx.Unknown
	}

	histories, err := d.spinHistoryRepo.GetByParticipantEventID(ctx, req.ParticipantEventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get spin histories: %v", err)
		return nil, errorx.Unknown
	}

	clientHistories := []model.SpinHistory{}
	for i := range histories {
		clientHistories = append(clientHistories, convertSpinHistory(&histories[i]))
	}

	return &model.GetSpinHistoriesResponse{Histories: clientHistories}, nil
}
