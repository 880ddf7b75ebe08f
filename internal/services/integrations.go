package services

import (
	"context"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/events"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

var platforms = []string{models.PlatformShopify, models.PlatformWooCommerce, models.PlatformAmazon}

type IntegrationService struct {
	integrations repo.IntegrationRepository
	reports      repo.ReportRepository
	events       events.Publisher
	now          func() time.Time
}

func NewIntegrationService(store repo.Store, pub events.Publisher) *IntegrationService {
	return &IntegrationService{
		integrations: store.Integrations(),
		reports:      store.Reports(),
		events:       pub,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SyncResult is what a manual sync reports back.
type SyncResult struct {
	Integration    models.Integration `json:"integration"`
	ProductsSynced int64              `json:"productsSynced"`
}

func ValidateIntegration(i models.Integration) error {
	var v ValidationErrors
	if !slices.Contains(platforms, i.Platform) {
		v.add("platform", "Platform must be one of %v", platforms)
	}
	if strings.TrimSpace(i.APIKey) == "" {
		v.add("apiKey", "API key is required")
	}
	if i.StoreURL != "" {
		if u, err := url.Parse(i.StoreURL); err != nil || u.Scheme == "" || u.Host == "" {
			v.add("storeUrl", "Store URL %q is not a valid URL", i.StoreURL)
		}
	} else if i.Platform == models.PlatformShopify || i.Platform == models.PlatformWooCommerce {
		v.add("storeUrl", "Store URL is required for %s", i.Platform)
	}
	for _, p := range i.Settings.Platforms() {
		if p != i.Platform {
			v.add("settings."+p, "Settings for %s do not apply to a %s integration", p, i.Platform)
		}
	}
	if a := i.Settings.Amazon; a != nil && i.Platform == models.PlatformAmazon {
		if a.SellerID == "" {
			v.add("settings.amazon.sellerId", "Seller id is required")
		}
		if a.MarketplaceID == "" {
			v.add("settings.amazon.marketplaceId", "Marketplace id is required")
		}
	}
	return v.err()
}

// List returns every integration with credentials redacted.
func (s *IntegrationService) List(ctx context.Context) ([]models.Integration, error) {
	all, err := s.integrations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		all[i] = all[i].Redacted()
	}
	return all, nil
}

func (s *IntegrationService) Get(ctx context.Context, id string) (models.Integration, error) {
	i, err := s.integrations.GetByID(ctx, id)
	if err != nil {
		return models.Integration{}, err
	}
	return i.Redacted(), nil
}

func (s *IntegrationService) Create(ctx context.Context, i models.Integration) (models.Integration, error) {
	i.Platform = strings.ToLower(strings.TrimSpace(i.Platform))
	if err := ValidateIntegration(i); err != nil {
		return models.Integration{}, err
	}
	i.ID = ""
	i.LastSync = nil
	created, err := s.integrations.Create(ctx, i)
	if err != nil {
		return models.Integration{}, err
	}
	created = created.Redacted()
	publish(ctx, s.events, events.New(events.IntegrationCreated, created.ID, created))
	return created, nil
}

// Update replaces the integration. Empty credentials keep the stored ones,
// since clients only ever see them redacted.
func (s *IntegrationService) Update(ctx context.Context, id string, i models.Integration) (models.Integration, error) {
	existing, err := s.integrations.GetByID(ctx, id)
	if err != nil {
		return models.Integration{}, err
	}
	i.ID = id
	i.Platform = strings.ToLower(strings.TrimSpace(i.Platform))
	if i.APIKey == "" || strings.HasPrefix(i.APIKey, "****") {
		i.APIKey = existing.APIKey
	}
	if i.APISecret == "" {
		i.APISecret = existing.APISecret
	}
	i.LastSync = existing.LastSync
	if err := ValidateIntegration(i); err != nil {
		return models.Integration{}, err
	}
	updated, err := s.integrations.Update(ctx, i)
	if err != nil {
		return models.Integration{}, err
	}
	updated = updated.Redacted()
	publish(ctx, s.events, events.New(events.IntegrationUpdated, updated.ID, updated))
	return updated, nil
}

func (s *IntegrationService) Delete(ctx context.Context, id string) error {
	if err := s.integrations.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.events, events.New(events.IntegrationDeleted, id, nil))
	return nil
}

// Sync records a manual sync of the catalogue to the platform. No remote
// call is made; the catalogue size is reported as synced.
func (s *IntegrationService) Sync(ctx context.Context, id string) (SyncResult, error) {
	i, err := s.integrations.GetByID(ctx, id)
	if err != nil {
		return SyncResult{}, err
	}
	if !i.IsActive {
		return SyncResult{}, ValidationErrors{{Field: "isActive", Description: "Integration is not active"}}
	}
	count, err := s.reports.CountProducts(ctx)
	if err != nil {
		return SyncResult{}, err
	}
	now := s.now()
	i.LastSync = &now
	updated, err := s.integrations.Update(ctx, i)
	if err != nil {
		return SyncResult{}, err
	}
	res := SyncResult{Integration: updated.Redacted(), ProductsSynced: count}
	publish(ctx, s.events, events.New(events.IntegrationSynced, id, map[string]any{
		"platform":       updated.Platform,
		"productsSynced": count,
	}))
	return res, nil
}
