package domain

import (
	"testing"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/internal/model"
	"github.com/luckydraw-lab/backend/internal/repository"
	"github.com/luckydraw-lab/backend/pkg/errorx"
	"github.com/luckydraw-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestRegionDomain() *regionDomain {
	return NewRegionDomain(
		repository.NewRegionRepository(),
		repository.NewProvinceRepository(),
		repository.NewEventLocationRepository(),
		repository.NewRewardRepository(),
		repository.NewParticipantEventRepository(),
		repository.NewGoldenHourRepository(),
	)
}

func Test_regionDomain_CreateRegion(t *testing.T) {
	ctx := testutil.MockContext()
	regionDomain := newTestRegionDomain()

	resp, err := regionDomain.CreateRegion(ctx, &model.CreateRegionRequest{
		Code: "south", Name: "South",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	region, err := repository.NewRegionRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, "SOUTH", region.Code)
	require.Equal(t, entity.Active, region.Status)

	// A code is required.
	_, err = regionDomain.CreateRegion(ctx, &model.CreateRegionRequest{Name: "No code"})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_regionDomain_SetRegionStatus_CascadesDeactivation(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	regionDomain := newTestRegionDomain()

	_, err := regionDomain.SetRegionStatus(ctx, &model.SetRegionStatusRequest{
		ID: testutil.Region1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	// Every descendant went inactive in the same transaction.
	region, err := repository.NewRegionRepository().GetByID(ctx, testutil.Region1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, region.Status)

	province, err := repository.NewProvinceRepository().GetByID(ctx, testutil.Province1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, province.Status)

	location, err := repository.NewEventLocationRepository().GetByID(ctx, testutil.EventLocation1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, location.Status)

	reward, err := repository.NewRewardRepository().GetByID(ctx, testutil.Reward1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, reward.Status)

	participantEvent, err := repository.NewParticipantEventRepository().
		GetByID(ctx, testutil.ParticipantEvent1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, participantEvent.Status)

	goldenHour, err := repository.NewGoldenHourRepository().GetByID(ctx, testutil.GoldenHour1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, goldenHour.Status)
}

func Test_regionDomain_SetRegionStatus_ReactivationDoesNotCascade(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	regionDomain := newTestRegionDomain()

	_, err := regionDomain.SetRegionStatus(ctx, &model.SetRegionStatusRequest{
		ID: testutil.Region1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	_, err = regionDomain.SetRegionStatus(ctx, &model.SetRegionStatusRequest{
		ID: testutil.Region1.ID, Status: "active",
	})
	require.NoError(t, err)

	region, err := repository.NewRegionRepository().GetByID(ctx, testutil.Region1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Active, region.Status)

	// Descendants stay inactive until reactivated one by one.
	province, err := repository.NewProvinceRepository().GetByID(ctx, testutil.Province1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, province.Status)

	location, err := repository.NewEventLocationRepository().GetByID(ctx, testutil.EventLocation1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, location.Status)
}

func Test_regionDomain_SetProvinceStatus_RequiresActiveRegion(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	regionDomain := newTestRegionDomain()

	_, err := regionDomain.SetRegionStatus(ctx, &model.SetRegionStatusRequest{
		ID: testutil.Region1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	_, err = regionDomain.SetProvinceStatus(ctx, &model.SetProvinceStatusRequest{
		ID: testutil.Province1.ID, Status: "active",
	})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_regionDomain_SetProvinceStatus_LastActiveProvinceDeactivatesRegion(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	regionDomain := newTestRegionDomain()

	// A second active province keeps the region alive.
	secondProvince, err := regionDomain.CreateProvince(ctx, &model.CreateProvinceRequest{
		Code: "HCM", Name: "Ho Chi Minh", RegionID: testutil.Region1.ID,
	})
	require.NoError(t, err)

	_, err = regionDomain.SetProvinceStatus(ctx, &model.SetProvinceStatusRequest{
		ID: testutil.Province1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	region, err := repository.NewRegionRepository().GetByID(ctx, testutil.Region1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Active, region.Status)

	// Deactivating the last one pulls the region down with its subtree.
	_, err = regionDomain.SetProvinceStatus(ctx, &model.SetProvinceStatusRequest{
		ID: secondProvince.ID, Status: "inactive",
	})
	require.NoError(t, err)

	region, err = repository.NewRegionRepository().GetByID(ctx, testutil.Region1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, region.Status)

	location, err := repository.NewEventLocationRepository().GetByID(ctx, testutil.EventLocation1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, location.Status)
}

func Test_regionDomain_GetRegion(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	regionDomain := newTestRegionDomain()

	// Lookup is case-insensitive on the code.
	resp, err := regionDomain.GetRegion(ctx, &model.GetRegionRequest{Code: "north"})
	require.NoError(t, err)
	require.Equal(t, testutil.Region1.ID, resp.Region.ID)
	require.Equal(t, testutil.Region1.Code, resp.Region.Code)
	require.Equal(t, string(entity.Active), resp.Region.Status)
	require.Len(t, resp.Provinces, 1)
	require.Equal(t, testutil.Province1.ID, resp.Provinces[0].ID)

	_, err = regionDomain.GetRegion(ctx, &model.GetRegionRequest{Code: "UNKNOWN"})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}

func Test_regionDomain_CreateProvince_DerivesStatusFromRegion(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	regionDomain := newTestRegionDomain()

	_, err := regionDomain.SetRegionStatus(ctx, &model.SetRegionStatusRequest{
		ID: testutil.Region1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	resp, err := regionDomain.CreateProvince(ctx, &model.CreateProvinceRequest{
		Code: "DN", Name: "Da Nang", RegionID: testutil.Region1.ID,
	})
	require.NoError(t, err)

	province, err := repository.NewProvinceRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, province.Status)
}
