package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"campaign_syncer/internal/breaker"
	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/platform"
	"campaign_syncer/internal/service/mocks"
	"campaign_syncer/testdata/utils"
)

var (
	epoch = time.Unix(0, 0).UTC()
	t0    = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

var redditAccount = domain.AdAccount{ID: "acct-1", Platform: domain.PlatformReddit}

type ConflictDetectorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	repo      *mocks.MockRepository
	poller    *mocks.MockPoller
	adapter   *mocks.MockAdapter
	publisher *mocks.MockPublisher

	breakers *breaker.Registry
	detector *ConflictDetector
}

func (s *ConflictDetectorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.repo = mocks.NewMockRepository(s.ctrl)
	s.poller = mocks.NewMockPoller(s.ctrl)
	s.adapter = mocks.NewMockAdapter(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	var err error
	s.breakers, err = breaker.NewRegistry(breaker.Config{
		FailureThreshold:    2,
		ResetTimeout:        time.Minute,
		HalfOpenMaxAttempts: 1,
	})
	s.Require().NoError(err)

	s.poller.EXPECT().Platform().Return(domain.PlatformReddit).AnyTimes()
	s.adapter.EXPECT().Platform().Return(domain.PlatformReddit).AnyTimes()
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.detector = NewConflictDetector(
		s.repo,
		[]Poller{s.poller},
		[]Adapter{s.adapter},
		s.breakers,
		s.publisher,
		nil,
		[]domain.AdAccount{redditAccount},
		testLogger(),
	)
	s.detector.now = func() time.Time { return t0.Add(2 * time.Hour) }
}

func (s *ConflictDetectorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestConflictDetectorTestSuite(t *testing.T) {
	suite.Run(t, new(ConflictDetectorTestSuite))
}

func localCampaign(id string, status domain.CampaignStatus, lastSynced *time.Time, localUpdated time.Time) domain.Campaign {
	c := newCampaign(id)
	c.PlatformCampaignID = utils.Ptr("p-" + id)
	c.Status = status
	c.LastSyncedAt = lastSynced
	c.LocalUpdatedAt = localUpdated
	return c
}

func platformStatus(id string, status domain.CampaignStatus) domain.PlatformCampaignStatus {
	return domain.PlatformCampaignStatus{PlatformID: "p-" + id, Status: status, LastModified: t0.Add(time.Hour)}
}

func (s *ConflictDetectorTestSuite) TestPoll_ScenarioTable() {
	ctx := context.Background()

	campaigns := []domain.Campaign{
		localCampaign("never", domain.CampaignStatusActive, &epoch, t0),
		localCampaign("equal", domain.CampaignStatusActive, utils.Ptr(t0), t0),
		localCampaign("touched", domain.CampaignStatusActive, utils.Ptr(t0), t0.Add(time.Hour)),
		localCampaign("same", domain.CampaignStatusActive, utils.Ptr(t0), t0.Add(time.Hour)),
		localCampaign("gone", domain.CampaignStatusActive, utils.Ptr(t0), t0),
		localCampaign("unsynced-gone", domain.CampaignStatusActive, nil, t0),
	}
	statuses := []domain.PlatformCampaignStatus{
		platformStatus("never", domain.CampaignStatusPaused),
		platformStatus("equal", domain.CampaignStatusPaused),
		platformStatus("touched", domain.CampaignStatusPaused),
		platformStatus("same", domain.CampaignStatusActive),
	}

	s.poller.EXPECT().ListCampaignStatuses(ctx, "acct-1").Return(statuses, nil)
	s.repo.EXPECT().GetSyncedCampaignsForAccount(ctx, "acct-1").Return(campaigns, nil)

	s.repo.EXPECT().UpdateCampaignFromPlatform(ctx, "never", statuses[0]).Return(nil)
	s.repo.EXPECT().UpdateCampaignFromPlatform(ctx, "equal", statuses[1]).Return(nil)
	s.repo.EXPECT().MarkCampaignConflict(ctx, "touched", domain.ConflictDetails{
		CampaignID:     "touched",
		Field:          "status",
		LocalStatus:    domain.CampaignStatusActive,
		PlatformStatus: domain.CampaignStatusPaused,
		DetectedAt:     t0.Add(2 * time.Hour),
	}).Return(nil)
	s.repo.EXPECT().MarkCampaignDeletedOnPlatform(ctx, "gone").Return(nil)

	result := s.detector.Poll(ctx, redditAccount)

	s.Equal(2, result.Updated)
	s.Equal(1, result.Conflicts)
	s.Equal(1, result.Unchanged)
	s.Equal(1, result.Deleted)
	s.Equal(1, result.Skipped)
	s.Equal(0, result.Errors)
	s.Empty(result.ErrorMessages)
}

func (s *ConflictDetectorTestSuite) TestPoll_UnmappedPlatformStatusIsSkipped() {
	ctx := context.Background()

	campaigns := []domain.Campaign{
		localCampaign("c-1", domain.CampaignStatusActive, utils.Ptr(t0), t0),
	}
	statuses := []domain.PlatformCampaignStatus{
		platformStatus("c-1", ""),
	}

	s.poller.EXPECT().ListCampaignStatuses(ctx, "acct-1").Return(statuses, nil)
	s.repo.EXPECT().GetSyncedCampaignsForAccount(ctx, "acct-1").Return(campaigns, nil)

	result := s.detector.Poll(ctx, redditAccount)

	s.Equal(1, result.Skipped)
	s.Equal(0, result.Updated)
	s.Equal(0, result.Deleted)
	s.Equal(0, result.Errors)
}

func (s *ConflictDetectorTestSuite) TestPoll_RepositoryErrorsAreIsolated() {
	ctx := context.Background()

	campaigns := []domain.Campaign{
		localCampaign("c-1", domain.CampaignStatusActive, utils.Ptr(t0), t0.Add(time.Hour)),
		localCampaign("c-2", domain.CampaignStatusActive, utils.Ptr(t0), t0),
	}
	statuses := []domain.PlatformCampaignStatus{
		platformStatus("c-1", domain.CampaignStatusPaused),
		platformStatus("c-2", domain.CampaignStatusPaused),
	}

	s.poller.EXPECT().ListCampaignStatuses(ctx, "acct-1").Return(statuses, nil)
	s.repo.EXPECT().GetSyncedCampaignsForAccount(ctx, "acct-1").Return(campaigns, nil)
	s.repo.EXPECT().MarkCampaignConflict(ctx, "c-1", gomock.Any()).Return(errors.New("connection reset"))
	s.repo.EXPECT().UpdateCampaignFromPlatform(ctx, "c-2", statuses[1]).Return(nil)

	result := s.detector.Poll(ctx, redditAccount)

	s.Equal(1, result.Updated)
	s.Equal(0, result.Conflicts)
	s.Equal(1, result.Errors)
	s.Require().Len(result.ErrorMessages, 1)
	s.Contains(result.ErrorMessages[0], "campaign c-1")
	s.Contains(result.ErrorMessages[0], "connection reset")
}

func (s *ConflictDetectorTestSuite) TestPoll_ListFailureTripsBreaker() {
	ctx := context.Background()

	unavailable := &platform.Error{Code: platform.CodeUnavailable, Message: "bad gateway", Retryable: true}
	s.poller.EXPECT().ListCampaignStatuses(ctx, "acct-1").Return(nil, unavailable).Times(2)

	for i := 0; i < 2; i++ {
		result := s.detector.Poll(ctx, redditAccount)
		s.Equal(1, result.Errors)
	}
	s.Equal(breaker.StateOpen, s.breakers.Get("reddit").State())

	result := s.detector.Poll(ctx, redditAccount)
	s.Equal(1, result.Errors)
	s.Contains(result.ErrorMessages[0], "circuit breaker")
}

func (s *ConflictDetectorTestSuite) TestPoll_NoPoller() {
	result := s.detector.Poll(context.Background(), domain.AdAccount{ID: "g-1", Platform: domain.PlatformGoogle})

	s.Equal(1, result.Errors)
	s.Contains(result.ErrorMessages[0], "no poller")
}

func (s *ConflictDetectorTestSuite) TestPollAll() {
	ctx := context.Background()

	s.poller.EXPECT().ListCampaignStatuses(ctx, "acct-1").Return(nil, nil)
	s.repo.EXPECT().GetSyncedCampaignsForAccount(ctx, "acct-1").Return(nil, nil)

	results := s.detector.PollAll(ctx)

	s.Require().Len(results, 1)
	s.Equal("acct-1", results[0].AccountID)
}

func (s *ConflictDetectorTestSuite) TestResolveConflict_KeepLocalPushesStatus() {
	ctx := context.Background()

	c := localCampaign("c-1", domain.CampaignStatusPaused, utils.Ptr(t0), t0.Add(time.Hour))
	c.SyncStatus = domain.SyncStatusConflict
	c.Conflict = &domain.ConflictDetails{CampaignID: "c-1", Field: "status"}

	gomock.InOrder(
		s.repo.EXPECT().GetCampaignByID(ctx, "c-1").Return(&c, nil),
		s.adapter.EXPECT().PauseCampaign(ctx, "p-c-1").Return(nil),
		s.repo.EXPECT().ResolveCampaignConflict(ctx, "c-1", domain.ResolutionKeepLocal).Return(nil),
	)

	s.NoError(s.detector.ResolveConflict(ctx, "c-1", domain.ResolutionKeepLocal))
}

func (s *ConflictDetectorTestSuite) TestResolveConflict_KeepLocalPushFails() {
	ctx := context.Background()

	c := localCampaign("c-1", domain.CampaignStatusActive, utils.Ptr(t0), t0.Add(time.Hour))
	c.SyncStatus = domain.SyncStatusConflict
	c.Conflict = &domain.ConflictDetails{CampaignID: "c-1", Field: "status"}

	s.repo.EXPECT().GetCampaignByID(ctx, "c-1").Return(&c, nil)
	s.adapter.EXPECT().ResumeCampaign(ctx, "p-c-1").Return(&platform.Error{Code: platform.CodeAuth, Message: "token expired"})

	err := s.detector.ResolveConflict(ctx, "c-1", domain.ResolutionKeepLocal)

	s.Error(err)
	s.Contains(err.Error(), "token expired")
}

func (s *ConflictDetectorTestSuite) TestResolveConflict_AcceptPlatform() {
	ctx := context.Background()

	c := localCampaign("c-1", domain.CampaignStatusActive, utils.Ptr(t0), t0.Add(time.Hour))
	c.SyncStatus = domain.SyncStatusConflict
	c.Conflict = &domain.ConflictDetails{CampaignID: "c-1", Field: "status"}

	s.repo.EXPECT().GetCampaignByID(ctx, "c-1").Return(&c, nil)
	s.repo.EXPECT().ResolveCampaignConflict(ctx, "c-1", domain.ResolutionAcceptPlatform).Return(nil)

	s.NoError(s.detector.ResolveConflict(ctx, "c-1", domain.ResolutionAcceptPlatform))
}

func (s *ConflictDetectorTestSuite) TestResolveConflict_NoOpenConflict() {
	ctx := context.Background()

	c := localCampaign("c-1", domain.CampaignStatusActive, utils.Ptr(t0), t0)
	c.SyncStatus = domain.SyncStatusSynced

	s.repo.EXPECT().GetCampaignByID(ctx, "c-1").Return(&c, nil)

	err := s.detector.ResolveConflict(ctx, "c-1", domain.ResolutionAcceptPlatform)

	s.ErrorIs(err, domain.ErrNoConflict)
}

func (s *ConflictDetectorTestSuite) TestResolveConflict_UnknownResolution() {
	err := s.detector.ResolveConflict(context.Background(), "c-1", domain.ConflictResolution("merge"))

	s.Error(err)
}
