package service

import (
	"context"

	"govern/models"

	"github.com/stretchr/testify/mock"
)

// MockBetaUserRepository is a mock implementation of BetaUserRepository
type MockBetaUserRepository struct {
	mock.Mock
}

func (m *MockBetaUserRepository) Load(ctx context.Context) (models.BetaUserList, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.BetaUserList), args.Error(1)
}

func (m *MockBetaUserRepository) Save(ctx context.Context, list models.BetaUserList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

// MockGuildRecordRepository is a mock implementation of GuildRecordRepository
type MockGuildRecordRepository struct {
	mock.Mock
}

func (m *MockGuildRecordRepository) Load(ctx context.Context) (models.GuildRecords, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.GuildRecords), args.Error(1)
}

func (m *MockGuildRecordRepository) Save(ctx context.Context, records models.GuildRecords) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// MockWhitelistRepository is a mock implementation of WhitelistRepository
type MockWhitelistRepository struct {
	mock.Mock
}

func (m *MockWhitelistRepository) Load(ctx context.Context) (models.WhitelistedGuildList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.WhitelistedGuildList), args.Error(1)
}

func (m *MockWhitelistRepository) Save(ctx context.Context, list models.WhitelistedGuildList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

// MockLogChannelRepository is a mock implementation of LogChannelRepository
type MockLogChannelRepository struct {
	mock.Mock
}

func (m *MockLogChannelRepository) Load(ctx context.Context) (models.LogChannelMap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.LogChannelMap), args.Error(1)
}

func (m *MockLogChannelRepository) Save(ctx context.Context, channels models.LogChannelMap) error {
	args := m.Called(ctx, channels)
	return args.Error(0)
}

// MockAuthorizer is a mock implementation of Authorizer
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, subjectID int64, kind GateKind) bool {
	args := m.Called(ctx, subjectID, kind)
	return args.Bool(0)
}

func (m *MockAuthorizer) Require(ctx context.Context, subjectID int64, kind GateKind) error {
	args := m.Called(ctx, subjectID, kind)
	return args.Error(0)
}
