package entity

import (
	"context"

	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Region{},
		&Province{},
		&Event{},
		&EventLocation{},
		&Participant{},
		&ParticipantEvent{},
		&Reward{},
		&RewardEvent{},
		&GoldenHour{},
		&SpinHistory{},
	)
}
