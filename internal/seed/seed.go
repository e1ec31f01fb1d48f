// Package seed loads the starter category set and sample articles into an
// empty store. Seeding is idempotent: a store that already has categories is
// left untouched.
package seed

import (
	"context"
	"fmt"

	"github.com/newsdesk/portal/internal/logger"
	"github.com/newsdesk/portal/internal/models"
	"github.com/newsdesk/portal/internal/storage"
)

type seedArticle struct {
	req           models.ArticleCreateRequest
	categoryIndex int // index into the starter category list
}

// Run seeds the store with starter content. Returns without changes when
// categories already exist.
func Run(ctx context.Context, store storage.Store, log logger.Logger) error {
	existing, err := store.Categories(ctx)
	if err != nil {
		return fmt.Errorf("check existing categories: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Store already seeded", logger.Int("categories", len(existing)))
		return nil
	}

	categoryIDs := make([]int64, 0, len(starterCategories))
	for _, req := range starterCategories {
		category, createErr := store.CreateCategory(ctx, &req)
		if createErr != nil {
			return fmt.Errorf("seed category %q: %w", req.Slug, createErr)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}
	log.Info("Seeded categories", logger.Int("count", len(categoryIDs)))

	for _, sa := range sampleArticles {
		req := sa.req
		req.CategoryID = categoryIDs[sa.categoryIndex]
		if _, createErr := store.CreateArticle(ctx, &req); createErr != nil {
			return fmt.Errorf("seed article %q: %w", req.Slug, createErr)
		}
	}
	log.Info("Seeded articles", logger.Int("count", len(sampleArticles)))

	return nil
}

func boolPtr(b bool) *bool { return &b }

var starterCategories = []models.CategoryCreateRequest{
	{Name: "Political", Slug: "political", Color: "#DC2626", Description: "Latest political news and analysis"},
	{Name: "Movies", Slug: "movies", Color: "#7C3AED", Description: "Entertainment and movie industry news"},
	{Name: "Facts", Slug: "facts", Color: "#059669", Description: "Interesting facts and knowledge"},
	{Name: "Lifestyle", Slug: "lifestyle", Color: "#EC4899", Description: "Lifestyle and fashion trends"},
	{Name: "Biographies", Slug: "biographies", Color: "#F59E0B", Description: "Life stories of remarkable people"},
	{Name: "Love Stories", Slug: "love-stories", Color: "#EF4444", Description: "Heartwarming love and relationship stories"},
	{Name: "Sports", Slug: "sports", Color: "#3B82F6", Description: "Sports news and updates"},
	{Name: "Technology", Slug: "technology", Color: "#10B981", Description: "Latest tech news and innovations"},
}

var sampleArticles = []seedArticle{
	{
		categoryIndex: 0,
		req: models.ArticleCreateRequest{
			Title:      "Global Summit Addresses Climate Change Policies",
			Slug:       "global-summit-climate-change-policies",
			Excerpt:    "World leaders gather to discuss comprehensive climate action plans and international cooperation strategies.",
			Content:    "In a landmark gathering, world leaders from over 100 countries convened to address the pressing issue of climate change. The summit focused on developing comprehensive policies that would ensure sustainable development while maintaining economic growth.",
			ImageURL:   "https://images.unsplash.com/photo-1529107386315-e1a2ed48a620?auto=format&fit=crop&w=800&h=600",
			Author:     "Sarah Johnson",
			IsBreaking: boolPtr(true),
			IsFeatured: boolPtr(true),
		},
	},
	{
		categoryIndex: 0,
		req: models.ArticleCreateRequest{
			Title:      "Presidential Campaign Reaches Final Stage",
			Slug:       "presidential-campaign-final-stage",
			Excerpt:    "Candidates make final push in key swing states as polls show tight race.",
			Content:    "As the presidential campaign enters its final stretch, both major candidates are making intensive efforts to secure votes in crucial swing states. Recent polling data indicates an extremely close race.",
			ImageURL:   "https://images.unsplash.com/photo-1568605117036-5fe5e7bab0b7?auto=format&fit=crop&w=800&h=600",
			Author:     "Michael Chen",
			IsBreaking: boolPtr(true),
		},
	},
	{
		categoryIndex: 0,
		req: models.ArticleCreateRequest{
			Title:      "Congress Debates Infrastructure Bill",
			Slug:       "congress-debates-infrastructure-bill",
			Excerpt:    "Heated discussions continue over the trillion-dollar infrastructure package.",
			Content:    "Congressional sessions have intensified as lawmakers debate the details of a comprehensive infrastructure bill worth over one trillion dollars. The proposed legislation includes funding for roads, bridges, broadband expansion, and clean energy projects.",
			ImageURL:   "https://images.unsplash.com/photo-1588681664899-f142ff2dc9b1?auto=format&fit=crop&w=800&h=600",
			Author:     "Emma Rodriguez",
			IsFeatured: boolPtr(true),
		},
	},
	{
		categoryIndex: 1,
		req: models.ArticleCreateRequest{
			Title:      "Hollywood's Biggest Blockbuster Breaks Records",
			Slug:       "hollywood-blockbuster-breaks-records",
			Excerpt:    "The highly anticipated superhero sequel surpasses all opening weekend expectations worldwide.",
			Content:    "The latest installment in the beloved superhero franchise has shattered box office records, earning over $300 million globally in its opening weekend.",
			ImageURL:   "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?auto=format&fit=crop&w=800&h=600",
			Author:     "Jessica Martinez",
			IsBreaking: boolPtr(true),
			IsFeatured: boolPtr(true),
		},
	},
	{
		categoryIndex: 1,
		req: models.ArticleCreateRequest{
			Title:    "Star-Studded Premiere Dazzles Hollywood",
			Slug:     "star-studded-premiere-hollywood",
			Excerpt:  "A-list celebrities gather for the highly anticipated blockbuster premiere.",
			Content:  "The red carpet was ablaze with glamour as Hollywood's biggest stars gathered for the premiere of this year's most anticipated film.",
			ImageURL: "https://images.unsplash.com/photo-1489599162748-e075e8d3b7a6?auto=format&fit=crop&w=800&h=600",
			Author:   "Alex Turner",
		},
	},
	{
		categoryIndex: 7,
		req: models.ArticleCreateRequest{
			Title:      "AI Revolution Transforms Healthcare Industry",
			Slug:       "ai-revolution-healthcare-industry",
			Excerpt:    "Revolutionary artificial intelligence applications are improving patient outcomes and medical research.",
			Content:    "Artificial intelligence is revolutionizing healthcare with applications ranging from diagnostic imaging to drug discovery. Machine learning algorithms are now capable of detecting diseases earlier and more accurately than traditional methods.",
			ImageURL:   "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&w=800&h=600",
			Author:     "Tech Innovators",
			IsBreaking: boolPtr(true),
			IsFeatured: boolPtr(true),
		},
	},
	{
		categoryIndex: 7,
		req: models.ArticleCreateRequest{
			Title:    "New Smartphone Features Unveiled",
			Slug:     "new-smartphone-features-unveiled",
			Excerpt:  "Latest flagship device introduces groundbreaking camera technology and battery life.",
			Content:  "The tech giant has unveiled its latest flagship smartphone, featuring revolutionary camera technology that can capture professional-quality photos in any lighting condition.",
			ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?auto=format&fit=crop&w=800&h=600",
			Author:   "David Tech",
		},
	},
	{
		categoryIndex: 6,
		req: models.ArticleCreateRequest{
			Title:      "Championship Finals Reach Overtime",
			Slug:       "championship-finals-overtime",
			Excerpt:    "Thrilling match goes into extra time as both teams fight for victory.",
			Content:    "In an electrifying championship final, both teams displayed exceptional skill and determination, leading to an overtime period that had fans on the edge of their seats.",
			ImageURL:   "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=800&h=600",
			Author:     "Sports Desk",
			IsBreaking: boolPtr(true),
		},
	},
	{
		categoryIndex: 6,
		req: models.ArticleCreateRequest{
			Title:      "Olympic Preparations Underway",
			Slug:       "olympic-preparations-underway",
			Excerpt:    "Athletes from around the world prepare for the upcoming Olympic Games.",
			Content:    "With just months to go before the Olympic Games, athletes are making final preparations and training adjustments.",
			ImageURL:   "https://images.unsplash.com/photo-1544717297-fa95b6ee9643?auto=format&fit=crop&w=800&h=600",
			Author:     "Olympic Reporter",
			IsFeatured: boolPtr(true),
		},
	},
	{
		categoryIndex: 3,
		req: models.ArticleCreateRequest{
			Title:      "Spring Fashion Trends Unveiled",
			Slug:       "spring-fashion-trends-unveiled",
			Excerpt:    "Latest runway shows reveal bold colors and sustainable fashion choices.",
			Content:    "This season's fashion weeks have showcased an exciting array of trends, from vibrant color palettes to innovative sustainable materials.",
			ImageURL:   "https://images.unsplash.com/photo-1469334031218-e382a71b716b?auto=format&fit=crop&w=800&h=600",
			Author:     "Sophie Chen",
			IsFeatured: boolPtr(true),
		},
	},
	{
		categoryIndex: 3,
		req: models.ArticleCreateRequest{
			Title:    "Wellness Trends for the New Year",
			Slug:     "wellness-trends-new-year",
			Excerpt:  "Health experts share insights on the most effective wellness practices.",
			Content:  "As we embrace a new year, health and wellness experts are highlighting the most effective practices for maintaining physical and mental well-being.",
			ImageURL: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?auto=format&fit=crop&w=800&h=600",
			Author:   "Wellness Expert",
		},
	},
	{
		categoryIndex: 2,
		req: models.ArticleCreateRequest{
			Title:      "Amazing Ocean Discoveries Revealed",
			Slug:       "amazing-ocean-discoveries-revealed",
			Excerpt:    "Scientists uncover fascinating new species in the deepest parts of our oceans.",
			Content:    "Marine biologists have made remarkable discoveries in the ocean's deepest trenches, finding new species that challenge our understanding of life in extreme conditions.",
			ImageURL:   "https://images.unsplash.com/photo-1559827260-dc66d52bef19?auto=format&fit=crop&w=800&h=600",
			Author:     "Science Team",
			IsFeatured: boolPtr(true),
		},
	},
	{
		categoryIndex: 4,
		req: models.ArticleCreateRequest{
			Title:    "The Inspiring Journey of a Tech Pioneer",
			Slug:     "inspiring-journey-tech-pioneer",
			Excerpt:  "From humble beginnings to revolutionary innovations that changed the world.",
			Content:  "This remarkable individual overcame significant challenges to become one of the most influential figures in technology. Their story demonstrates the power of perseverance, creativity, and the pursuit of knowledge.",
			ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=800&h=600",
			Author:   "Biography Writer",
		},
	},
	{
		categoryIndex: 5,
		req: models.ArticleCreateRequest{
			Title:    "A Love Story That Crossed Continents",
			Slug:     "love-story-crossed-continents",
			Excerpt:  "How two people found each other across thousands of miles and different cultures.",
			Content:  "In a world connected by technology but divided by distance, this couple's story proves that true connection knows no boundaries.",
			ImageURL: "https://images.unsplash.com/photo-1518621012460-5a9d32f6a53c?auto=format&fit=crop&w=800&h=600",
			Author:   "Romance Writer",
		},
	},
}
