package service

import (
	"context"

	"govern/models"

	"github.com/stretchr/testify/mock"
)

// MockBetaService is a mock implementation of BetaService
type MockBetaService struct {
	mock.Mock
}

func (m *MockBetaService) AdmitBetaTester(ctx context.Context, actorID int64, rawUserID string) (int64, bool, error) {
	args := m.Called(ctx, actorID, rawUserID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// MockGuildRecordService is a mock implementation of GuildRecordService
type MockGuildRecordService struct {
	mock.Mock
}

func (m *MockGuildRecordService) UpsertGuildRecord(ctx context.Context, actorID int64, upsert GuildRecordUpsert) (int64, *models.GuildRecord, bool, error) {
	args := m.Called(ctx, actorID, upsert)
	if args.Get(1) == nil {
		return args.Get(0).(int64), nil, args.Bool(2), args.Error(3)
	}
	return args.Get(0).(int64), args.Get(1).(*models.GuildRecord), args.Bool(2), args.Error(3)
}

func (m *MockGuildRecordService) GetGuildRecord(ctx context.Context, rawGuildID string) (string, *models.GuildRecord, error) {
	args := m.Called(ctx, rawGuildID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.GuildRecord), args.Error(2)
}

// MockWhitelistService is a mock implementation of WhitelistService
type MockWhitelistService struct {
	mock.Mock
}

func (m *MockWhitelistService) WhitelistGuild(ctx context.Context, actorID int64, rawGuildID string) (int64, bool, error) {
	args := m.Called(ctx, actorID, rawGuildID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// MockMembershipService is a mock implementation of MembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) ShouldRemain(ctx context.Context, guildID int64) bool {
	args := m.Called(ctx, guildID)
	return args.Bool(0)
}

// MockLogChannelService is a mock implementation of LogChannelService
type MockLogChannelService struct {
	mock.Mock
}

func (m *MockLogChannelService) SetLogChannel(ctx context.Context, guildID int64, channelID int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockLogChannelService) GetLogChannel(ctx context.Context, guildID int64) (string, bool, error) {
	args := m.Called(ctx, guildID)
	return args.String(0), args.Bool(1), args.Error(2)
}
