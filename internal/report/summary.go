package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// Summary backs the desktop overview, computed from cached lists rather
// than from the store.
type Summary struct {
	Customers          int                  `json:"customers"`
	Revenue            float64              `json:"revenue"`
	AvgProgress        int                  `json:"avgProgress"`
	ActivePartnerships int                  `json:"activePartnerships"`
	ActiveCampaigns    int                  `json:"activeCampaigns"`
	TopProducts        []models.Product     `json:"topProducts"`
	TopCustomers       []models.Customer    `json:"topCustomers"`
	Partnerships       []models.Partnership `json:"partnerships"`
	Campaigns          []models.Campaign    `json:"campaigns"`
}

func Summarize(customers []models.Customer, products []models.Product, partnerships []models.Partnership, campaigns []models.Campaign) Summary {
	s := Summary{
		Customers:    len(customers),
		TopProducts:  RankBySales(products),
		TopCustomers: RankByProgress(customers),
		Partnerships: []models.Partnership{},
		Campaigns:    []models.Campaign{},
	}

	revenue := decimal.Zero
	progress := 0
	for _, c := range customers {
		revenue = revenue.Add(decimal.NewFromFloat(c.TotalSpent))
		progress += c.ProgressScore
	}
	s.Revenue = roundMoney(revenue)
	if len(customers) > 0 {
		s.AvgProgress = int(math.Round(float64(progress) / float64(len(customers))))
	}

	for _, p := range partnerships {
		if p.Status == models.StatusActive {
			s.ActivePartnerships++
			s.Partnerships = append(s.Partnerships, p)
		}
	}
	for _, c := range campaigns {
		if c.Status == models.StatusActive {
			s.ActiveCampaigns++
			s.Campaigns = append(s.Campaigns, c)
		}
	}
	return s
}

// Card is one stat tile on the dashboard.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

func Cards(d Dashboard) []Card {
	return []Card{
		{Title: "Total Revenue", Value: FormatMoney(d.Stats.Revenue)},
		{Title: "Completed Orders", Value: formatCount(d.Stats.Orders)},
		{Title: "Customers", Value: formatCount(d.Stats.Customers)},
		{Title: "Products", Value: formatCount(d.Stats.Products)},
	}
}

func SummaryCards(s Summary) []Card {
	return []Card{
		{Title: "Customers", Value: formatCount(int64(s.Customers))},
		{Title: "Revenue", Value: FormatMoney(s.Revenue)},
		{Title: "Avg Progress", Value: fmt.Sprintf("%d%%", s.AvgProgress)},
		{Title: "Active Partnerships", Value: formatCount(int64(s.ActivePartnerships))},
	}
}

// FormatMoney renders v as dollars with thousands separators, e.g. $1,234.50.
func FormatMoney(v float64) string {
	fixed := decimal.NewFromFloat(v).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

func formatCount(n int64) string {
	if n < 0 {
		return "-" + groupThousands(fmt.Sprint(-n))
	}
	return groupThousands(fmt.Sprint(n))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
