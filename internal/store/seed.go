package store

import "github.com/nhle/taskdeck/internal/model"

// Seed returns the built-in sample collection used on first run when no
// snapshot is available.
func Seed() []model.Task {
	return []model.Task{
		{
			ID:          "1",
			Completed:   true,
			Title:       "Research color theory basics",
			Description: "Study warm vs cool colors, complementary schemes",
			DueDate:     model.Date(2025, 10, 14),
			Priority:    model.PriorityHigh,
			Recurrence:  model.RecurrenceNone,
			Tags:        []string{"Research", "Theory"},
			Posts:       2,
			Linkages: model.Linkages{
				Moment:  "Color theory insights",
				Project: "Design System V2",
			},
		},
		{
			ID:          "2",
			Completed:   true,
			Title:       "Create color wheel exercise",
			Description: "Take photos and make notes",
			DueDate:     model.Date(2025, 10, 17),
			Priority:    model.PriorityMedium,
			Recurrence:  model.RecurrenceNone,
			Tags:        []string{"Practice", "Exercise"},
			Linkages: model.Linkages{
				Project: "Design System V2",
			},
		},
		{
			ID:          "3",
			Completed:   true,
			Title:       "Practice mixing earth tones",
			Description: "Focus on beige, ochre, umber variations",
			DueDate:     model.Date(2025, 10, 19),
			Priority:    model.PriorityMedium,
			Recurrence:  model.RecurrenceNone,
			Tags:        []string{"Practice", "Color"},
			Posts:       1,
		},
		{
			ID:          "4",
			Title:       "Complete design system documentation",
			Description: "Write comprehensive guide for Glacier Blue theme",
			DueDate:     model.Date(2025, 11, 15),
			Priority:    model.PriorityHigh,
			Recurrence:  model.RecurrenceNone,
			Tags:        []string{"Design", "Docs"},
			Posts:       3,
			Linkages: model.Linkages{
				Project:   "Design System V2",
				Milestone: "Q4 Launch",
			},
		},
		{
			ID:          "5",
			Title:       "Daily standup meeting",
			Description: "Quick sync with team on progress and blockers",
			DueDate:     model.Date(2025, 11, 14),
			Priority:    model.PriorityHigh,
			Recurrence:  model.RecurrenceDaily,
			Tags:        []string{"Meeting", "Team"},
			Posts:       15,
			Streak:      18,
			Linkages: model.Linkages{
				Moment: "Team sync notes",
			},
		},
		{
			ID:          "6",
			Title:       "Weekly sprint review",
			Description: "Demo completed features and gather feedback",
			DueDate:     model.Date(2025, 11, 15),
			Priority:    model.PriorityMedium,
			Recurrence:  model.RecurrenceWeekly,
			Tags:        []string{"Meeting", "Review"},
			Posts:       8,
			Streak:      6,
			Linkages: model.Linkages{
				Project:   "Product Development",
				Milestone: "Sprint 12",
			},
		},
		{
			ID:          "7",
			Title:       "Monthly performance report",
			Description: "Compile metrics and create executive summary",
			DueDate:     model.Date(2025, 11, 30),
			Priority:    model.PriorityHigh,
			Recurrence:  model.RecurrenceMonthly,
			Tags:        []string{"Report", "Analytics"},
			Posts:       3,
			Streak:      2,
			Linkages: model.Linkages{
				Moment:  "NVDA price dip",
				Project: "NVDA Deep Research",
			},
		},
		{
			ID:          "8",
			Title:       "Update API endpoints",
			Description: "Refactor authentication flow",
			DueDate:     model.Date(2025, 11, 10),
			Priority:    model.PriorityHigh,
			Recurrence:  model.RecurrenceNone,
			Tags:        []string{"Backend", "API"},
			Posts:       5,
			Linkages: model.Linkages{
				Project:   "Backend Refactor",
				Milestone: "API v2.0",
			},
		},
		{
			ID:          "9",
			Title:       "Optimize performance metrics",
			Description: "Reduce bundle size and improve load times",
			DueDate:     model.Date(2025, 11, 18),
			Priority:    model.PriorityLow,
			Recurrence:  model.RecurrenceNone,
			Tags:        []string{"Performance"},
			Posts:       2,
		},
	}
}
