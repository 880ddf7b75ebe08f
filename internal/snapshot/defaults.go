package snapshot

import "github.com/rogerio-castellano/ops-dashboard/internal/models"

// DefaultData is the working set a fresh desktop install starts with.
func DefaultData() Snapshot {
	return Snapshot{
		Customers: []models.Customer{
			{ID: "1", Name: "Sarah Johnson", Email: "sarah@email.com", Type: "General Consumer", CognitiveGoal: "Memory Enhancement", ProgressScore: 85, TotalSpent: 450, Status: models.CustomerActive},
			{ID: "2", Name: "Mike Chen", Email: "mike@email.com", Type: "Professional Athlete", CognitiveGoal: "Focus & Performance", ProgressScore: 92, TotalSpent: 780, Status: models.CustomerActive},
			{ID: "3", Name: "Emily Davis", Email: "emily@email.com", Type: "Student", CognitiveGoal: "Stress Management", ProgressScore: 78, TotalSpent: 320, Status: models.CustomerActive},
		},
		Products: []models.Product{
			{ID: "1", Name: "THINK", Category: "Cognitive Enhancement", Stock: 150, Price: 49.99, MonthlySales: 89, Rating: 4.8},
			{ID: "2", Name: "Brain Water", Category: "Hydration & Focus", Stock: 300, Price: 29.99, MonthlySales: 156, Rating: 4.9},
			{ID: "3", Name: "Peaceful Slumber", Category: "Sleep & Recovery", Stock: 75, Price: 39.99, MonthlySales: 67, Rating: 4.7},
		},
		Orders:       []models.Order{},
		Integrations: []models.Integration{},
		Partnerships: []models.Partnership{
			{ID: "1", Name: "NFL Players Association", Type: "Professional Sports", Status: "Active", Members: 45, MonthlyRevenue: 12500},
			{ID: "2", Name: "University of Texas Athletics", Type: "College Sports", Status: "Active", Members: 28, MonthlyRevenue: 8200},
			{ID: "3", Name: "Corporate Wellness - Tech Co", Type: "Corporate", Status: "Pending", Members: 120, MonthlyRevenue: 0},
			{ID: "4", Name: "Austin Fitness Centers", Type: "Wellness Centers", Status: "Active", Members: 67, MonthlyRevenue: 6800},
		},
		Campaigns: []models.Campaign{
			{ID: "1", Name: "NFL Brain Health Awareness", Type: "Professional Sports", Status: "Active", Reach: 15000, Engagement: 8.5, Conversions: 145, ROI: 340},
			{ID: "2", Name: "Back to School Focus Campaign", Type: "Educational", Status: "Active", Reach: 8500, Engagement: 6.2, Conversions: 89, ROI: 220},
		},
	}
}
