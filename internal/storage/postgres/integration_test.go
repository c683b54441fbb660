//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"campaign_syncer/internal/domain"
	"campaign_syncer/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	store     *CampaignStore
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(Migrate(connStr))
	// second run is a no-op
	s.Require().NoError(Migrate(connStr))

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
	s.store = NewCampaignStore(db, NewTransactionManager(db))
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx, "TRUNCATE campaign_sets CASCADE")
	s.Require().NoError(err)
	s.seed()
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) seed() {
	stmts := []string{
		`INSERT INTO campaign_sets (id, team_id, name, status, sync_status) VALUES ('set-1', 'team-1', 'Spring', 'pending', 'pending')`,
		`INSERT INTO campaigns (id, campaign_set_id, position, ad_account_id, name, platform, budget, status)
			VALUES ('c-2', 'set-1', 2, 'acct-1', 'Second', 'reddit', 10.10, 'active'),
			       ('c-1', 'set-1', 1, 'acct-1', 'First', 'reddit', 25.50, 'active')`,
		`INSERT INTO ad_groups (id, campaign_id, position, name, settings)
			VALUES ('ag-1', 'c-1', 1, 'Group', '{"bid_amount": 1.25, "targeting": {"geolocations": ["US"]}}')`,
		`INSERT INTO ads (id, ad_group_id, position, headline, final_url)
			VALUES ('ad-2', 'ag-1', 2, 'Second ad', 'https://example.com/2'),
			       ('ad-1', 'ag-1', 1, 'First ad', 'https://example.com/1')`,
		`INSERT INTO keywords (id, ad_group_id, text, match_type) VALUES ('kw-1', 'ag-1', 'shoes', 'exact')`,
	}
	for _, stmt := range stmts {
		_, err := s.db.ExecContext(s.ctx, stmt)
		s.Require().NoError(err)
	}
}

func (s *PostgresIntegrationSuite) TestGetCampaignSetWithRelations() {
	set, err := s.store.GetCampaignSetWithRelations(s.ctx, "set-1")
	s.Require().NoError(err)

	s.Equal("Spring", set.Name)
	s.Require().Len(set.Campaigns, 2)
	s.Equal("c-1", set.Campaigns[0].ID)
	s.Equal(25.50, set.Campaigns[0].Budget)
	s.Nil(set.Campaigns[0].PlatformCampaignID)
	s.True(set.Campaigns[0].NeverSynced())

	s.Require().Len(set.Campaigns[0].AdGroups, 1)
	ag := set.Campaigns[0].AdGroups[0]
	s.Equal(1.25, ag.Settings["bid_amount"])
	s.Require().Len(ag.Ads, 2)
	s.Equal("ad-1", ag.Ads[0].ID)
	s.Require().Len(ag.Keywords, 1)
	s.Equal(domain.MatchExact, ag.Keywords[0].MatchType)

	s.Empty(set.Campaigns[1].AdGroups)
}

func (s *PostgresIntegrationSuite) TestGetCampaignSetWithRelations_NotFound() {
	_, err := s.store.GetCampaignSetWithRelations(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestPlatformIDsAndSyncStatus() {
	s.Require().NoError(s.store.UpdateCampaignPlatformID(s.ctx, "c-1", "pc-1"))
	s.Require().NoError(s.store.UpdateAdGroupPlatformID(s.ctx, "ag-1", "pag-1"))
	s.Require().NoError(s.store.UpdateAdPlatformID(s.ctx, "ad-1", "pad-1"))
	s.Require().NoError(s.store.UpdateKeywordPlatformID(s.ctx, "kw-1", "pkw-1"))
	s.Require().NoError(s.store.UpdateCampaignSyncStatus(s.ctx, "c-1", domain.SyncStatusSynced, ""))

	c, err := s.store.GetCampaignByID(s.ctx, "c-1")
	s.Require().NoError(err)

	s.Equal(utils.Ptr("pc-1"), c.PlatformCampaignID)
	s.Equal(domain.SyncStatusSynced, c.SyncStatus)
	s.False(c.NeverSynced())
	s.Nil(c.SyncError)
	s.Equal(utils.Ptr("pag-1"), c.AdGroups[0].PlatformAdGroupID)
	s.Equal(utils.Ptr("pad-1"), c.AdGroups[0].Ads[0].PlatformAdID)
	s.Equal(utils.Ptr("pkw-1"), c.AdGroups[0].Keywords[0].PlatformKeywordID)

	s.Require().NoError(s.store.UpdateCampaignSyncStatus(s.ctx, "c-1", domain.SyncStatusFailed, "ad ad-2 failed: boom"))
	failed, err := s.store.GetCampaignByID(s.ctx, "c-1")
	s.Require().NoError(err)
	s.Equal(utils.Ptr("ad ad-2 failed: boom"), failed.SyncError)
	s.Equal(c.LastSyncedAt, failed.LastSyncedAt)

	s.ErrorIs(s.store.UpdateCampaignPlatformID(s.ctx, "missing", "x"), domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestGetSyncedCampaignsForAccount() {
	s.Require().NoError(s.store.UpdateCampaignPlatformID(s.ctx, "c-2", "pc-2"))

	campaigns, err := s.store.GetSyncedCampaignsForAccount(s.ctx, "acct-1")
	s.Require().NoError(err)
	s.Require().Len(campaigns, 1)
	s.Equal("c-2", campaigns[0].ID)

	s.Require().NoError(s.store.MarkCampaignDeletedOnPlatform(s.ctx, "c-2"))

	campaigns, err = s.store.GetSyncedCampaignsForAccount(s.ctx, "acct-1")
	s.Require().NoError(err)
	s.Empty(campaigns)

	deleted, err := s.store.GetCampaignByID(s.ctx, "c-2")
	s.Require().NoError(err)
	s.True(deleted.DeletedOnPlatform)
	s.Equal(utils.Ptr("pc-2"), deleted.PlatformCampaignID)
	s.Equal(domain.CampaignStatusError, deleted.Status)
}

func (s *PostgresIntegrationSuite) TestConflictLifecycle() {
	details := domain.ConflictDetails{
		CampaignID:     "c-1",
		Field:          "status",
		LocalStatus:    domain.CampaignStatusActive,
		PlatformStatus: domain.CampaignStatusPaused,
		DetectedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.store.MarkCampaignConflict(s.ctx, "c-1", details))

	c, err := s.store.GetCampaignByID(s.ctx, "c-1")
	s.Require().NoError(err)
	s.Equal(domain.SyncStatusConflict, c.SyncStatus)
	s.Require().NotNil(c.Conflict)
	s.Equal(domain.CampaignStatusPaused, c.Conflict.PlatformStatus)

	s.Require().NoError(s.store.ResolveCampaignConflict(s.ctx, "c-1", domain.ResolutionAcceptPlatform))

	resolved, err := s.store.GetCampaignByID(s.ctx, "c-1")
	s.Require().NoError(err)
	s.Equal(domain.CampaignStatusPaused, resolved.Status)
	s.Equal(domain.SyncStatusSynced, resolved.SyncStatus)
	s.Nil(resolved.Conflict)
	s.Require().NotNil(resolved.LastSyncedAt)
	s.False(resolved.LocalUpdatedAt.After(*resolved.LastSyncedAt))

	s.ErrorIs(s.store.ResolveCampaignConflict(s.ctx, "c-1", domain.ResolutionKeepLocal), domain.ErrNoConflict)
}

func (s *PostgresIntegrationSuite) TestUpdateCampaignFromPlatform() {
	budget := 40.0
	err := s.store.UpdateCampaignFromPlatform(s.ctx, "c-1", domain.PlatformCampaignStatus{
		PlatformID: "pc-1",
		Status:     domain.CampaignStatusPaused,
		Budget:     &budget,
	})
	s.Require().NoError(err)

	c, err := s.store.GetCampaignByID(s.ctx, "c-1")
	s.Require().NoError(err)
	s.Equal(domain.CampaignStatusPaused, c.Status)
	s.Equal(40.0, c.Budget)
	s.Require().NotNil(c.LastSyncedAt)
	s.True(c.LocalUpdatedAt.Equal(*c.LastSyncedAt))
}

func (s *PostgresIntegrationSuite) TestStatusUpdates() {
	s.Require().NoError(s.store.UpdateCampaignSetStatus(s.ctx, "set-1", domain.SetStatusActive, domain.SyncStatusSynced))
	s.Require().NoError(s.store.UpdateCampaignStatus(s.ctx, "c-1", domain.CampaignStatusPaused))

	set, err := s.store.GetCampaignSetWithRelations(s.ctx, "set-1")
	s.Require().NoError(err)
	s.Equal(domain.SetStatusActive, set.Status)
	s.Equal(domain.CampaignStatusPaused, set.Campaigns[0].Status)

	s.ErrorIs(s.store.UpdateCampaignSetStatus(s.ctx, "missing", domain.SetStatusActive, domain.SyncStatusSynced), domain.ErrNotFound)
}
