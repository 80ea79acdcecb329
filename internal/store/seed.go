package store

import (
	"time"

	"github.com/jonesrussell/trendscout/internal/domain"
)

// Seed loads the demo dataset. The store is volatile, so every process start
// begins from these records plus whatever ingestion adds.
func Seed(s *Store) {
	for _, r := range seedRecords() {
		s.Create(r)
	}
}

func seedRecords() []domain.Record {
	return []domain.Record{
		{
			Title:      "Need help integrating payment API with React app",
			Slug:       "need-help-integrating-payment-api-react-app",
			Body:       "I'm struggling to integrate Stripe with my React application. The payments keep failing and I can't figure out why. Need urgent help as client is waiting.",
			Platform:   domain.PlatformReddit,
			PlatformID: "sample1",
			Author: domain.Author{
				Username:   "dev_frustrated",
				ProfileURL: "https://reddit.com/u/dev_frustrated",
			},
			Category:         domain.CategoryTechnology,
			Subcategory:      "Web Development",
			Tags:             []string{"react", "stripe", "api", "payment", "integration"},
			UrgencyScore:     8,
			OpportunityScore: 9,
			SentimentScore:   -0.6,
			EngagementMetrics: domain.EngagementMetrics{
				Upvotes:  45,
				Comments: 23,
			},
			KeywordMatches: []string{"can't figure out", "struggling with", "need help"},
			BusinessPotential: domain.BusinessPotential{
				MarketSize:            domain.MarketLarge,
				CompetitionLevel:      domain.LevelMedium,
				MonetizationPotential: domain.LevelHigh,
			},
			SourceURL:   "https://reddit.com/r/webdev/sample1",
			PublishedAt: time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC),
			Status:      domain.StatusNew,
		},
		{
			Title:      "Small business needs inventory management solution",
			Slug:       "small-business-needs-inventory-management-solution",
			Body:       "Running a small retail store and current spreadsheet system is becoming unmanageable. Looking for affordable inventory management software that can handle 500+ products.",
			Platform:   domain.PlatformReddit,
			PlatformID: "sample2",
			Author: domain.Author{
				Username:   "smallbiz_owner",
				ProfileURL: "https://reddit.com/u/smallbiz_owner",
			},
			Category:         domain.CategoryBusiness,
			Subcategory:      "Operations",
			Tags:             []string{"inventory", "sales", "workflow"},
			UrgencyScore:     6,
			OpportunityScore: 8,
			SentimentScore:   -0.3,
			EngagementMetrics: domain.EngagementMetrics{
				Upvotes:  32,
				Comments: 18,
			},
			KeywordMatches: []string{"problem with"},
			BusinessPotential: domain.BusinessPotential{
				MarketSize:            domain.MarketMedium,
				CompetitionLevel:      domain.LevelMedium,
				MonetizationPotential: domain.LevelHigh,
			},
			SourceURL:   "https://reddit.com/r/smallbusiness/sample2",
			PublishedAt: time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC),
			Status:      domain.StatusAnalyzed,
		},
		{
			Title:      "Database performance issues with large dataset",
			Slug:       "database-performance-issues-with-large-dataset",
			Body:       "PostgreSQL queries are taking forever with 10M+ records. Need optimization help urgently as production site is slowing down.",
			Platform:   domain.PlatformStackOverflow,
			PlatformID: "sample3",
			Author: domain.Author{
				Username:   "backend_dev",
				Reputation: 1250,
				ProfileURL: "https://stackoverflow.com/users/123456/backend_dev",
			},
			Category:         domain.CategoryTechnology,
			Subcategory:      "Database",
			Tags:             []string{"database", "postgresql", "performance", "optimization"},
			UrgencyScore:     9,
			OpportunityScore: 7,
			SentimentScore:   -0.8,
			EngagementMetrics: domain.EngagementMetrics{
				Upvotes:  28,
				Comments: 12,
			},
			KeywordMatches: []string{"issue with", "need help"},
			BusinessPotential: domain.BusinessPotential{
				MarketSize:            domain.MarketMedium,
				CompetitionLevel:      domain.LevelHigh,
				MonetizationPotential: domain.LevelMedium,
			},
			SourceURL:   "https://stackoverflow.com/questions/sample3",
			PublishedAt: time.Date(2025, 5, 30, 11, 0, 0, 0, time.UTC),
			Status:      domain.StatusActionable,
		},
		{
			Title:      "The Rise of AI in Healthcare",
			Slug:       "the-rise-of-ai-in-healthcare",
			Body:       "How artificial intelligence is revolutionizing healthcare delivery and improving patient outcomes. Recent developments have shown how machine learning algorithms can detect patterns in medical images with accuracy that rivals human experts.",
			Platform:   domain.PlatformRSS,
			PlatformID: "rise-of-ai-in-healthcare",
			Author:     domain.Author{Username: "TechHealth"},
			Category:   domain.CategoryTechnology,
			Tags:       []string{"ai", "healthcare", "innovation"},
			UrgencyScore:     5,
			OpportunityScore: 7,
			SentimentScore:   0.2,
			BusinessPotential: domain.BusinessPotential{
				MarketSize:            domain.MarketLarge,
				CompetitionLevel:      domain.LevelMedium,
				MonetizationPotential: domain.LevelMedium,
			},
			SourceURL:   "https://techhealth.com/ai-healthcare",
			ImageURL:    "https://images.unsplash.com/photo-1576671081837-49000212a370?q=80&w=800",
			PublishedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusNew,
		},
		{
			Title:      "Quantum Computing Breakthrough",
			Slug:       "quantum-computing-breakthrough",
			Body:       "Researchers achieve major advancement in quantum computing technology that could accelerate practical applications. Scientists have maintained qubit coherence for record durations.",
			Platform:   domain.PlatformRSS,
			PlatformID: "quantum-computing-breakthrough",
			Author:     domain.Author{Username: "QuantumWorld"},
			Category:   domain.Category("Science"),
			Tags:       []string{"quantum computing", "technology", "research"},
			UrgencyScore:     5,
			OpportunityScore: 6,
			SentimentScore:   0.1,
			BusinessPotential: domain.BusinessPotential{
				MarketSize:            domain.MarketMedium,
				CompetitionLevel:      domain.LevelLow,
				MonetizationPotential: domain.LevelMedium,
			},
			SourceURL:   "https://quantumworld.tech/breakthrough",
			ImageURL:    "https://images.unsplash.com/photo-1510511459019-5dda7724fd87?q=80&w=800",
			PublishedAt: time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusNew,
		},
	}
}
