package models

import "time"

const (
	PlatformShopify     = "shopify"
	PlatformWooCommerce = "woocommerce"
	PlatformAmazon      = "amazon"
)

type ShopifySettings struct {
	APIVersion    string `json:"apiVersion,omitempty" bson:"apiVersion,omitempty"`
	LocationID    string `json:"locationId,omitempty" bson:"locationId,omitempty"`
	SyncProducts  bool   `json:"syncProducts" bson:"syncProducts"`
	SyncOrders    bool   `json:"syncOrders" bson:"syncOrders"`
	SyncInventory bool   `json:"syncInventory" bson:"syncInventory"`
}

type WooCommerceSettings struct {
	APIVersion   string `json:"apiVersion,omitempty" bson:"apiVersion,omitempty"`
	VerifySSL    bool   `json:"verifySsl" bson:"verifySsl"`
	SyncProducts bool   `json:"syncProducts" bson:"syncProducts"`
	SyncOrders   bool   `json:"syncOrders" bson:"syncOrders"`
}

type AmazonSettings struct {
	SellerID      string `json:"sellerId" bson:"sellerId"`
	MarketplaceID string `json:"marketplaceId" bson:"marketplaceId"`
	Region        string `json:"region,omitempty" bson:"region,omitempty"`
	SyncInventory bool   `json:"syncInventory" bson:"syncInventory"`
}

// IntegrationSettings holds at most one platform block, matching the
// integration's Platform.
type IntegrationSettings struct {
	Shopify     *ShopifySettings     `json:"shopify,omitempty" bson:"shopify,omitempty"`
	WooCommerce *WooCommerceSettings `json:"woocommerce,omitempty" bson:"woocommerce,omitempty"`
	Amazon      *AmazonSettings      `json:"amazon,omitempty" bson:"amazon,omitempty"`
}

// Platforms returns the platforms that have a settings block set.
func (s IntegrationSettings) Platforms() []string {
	var out []string
	if s.Shopify != nil {
		out = append(out, PlatformShopify)
	}
	if s.WooCommerce != nil {
		out = append(out, PlatformWooCommerce)
	}
	if s.Amazon != nil {
		out = append(out, PlatformAmazon)
	}
	return out
}

type Integration struct {
	ID        string              `json:"id" bson:"_id"`
	Platform  string              `json:"platform" bson:"platform"`
	APIKey    string              `json:"apiKey,omitempty" bson:"apiKey,omitempty"`
	APISecret string              `json:"apiSecret,omitempty" bson:"apiSecret,omitempty"`
	StoreURL  string              `json:"storeUrl,omitempty" bson:"storeUrl,omitempty"`
	IsActive  bool                `json:"isActive" bson:"isActive"`
	LastSync  *time.Time          `json:"lastSync,omitempty" bson:"lastSync,omitempty"`
	Settings  IntegrationSettings `json:"settings" bson:"settings"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
}

// Redacted returns a copy safe to send to clients.
func (i Integration) Redacted() Integration {
	i.APISecret = ""
	if n := len(i.APIKey); n > 4 {
		i.APIKey = "****" + i.APIKey[n-4:]
	} else if n > 0 {
		i.APIKey = "****"
	}
	return i
}
