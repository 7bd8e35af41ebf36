package mentor

// Post is a canned evidence entry shown in the review drawer. Real post
// content lives outside the core; only counts reach the task store.
type Post struct {
	ID        string
	Title     string
	Content   string
	Timestamp string
	Type      string // text, image, link, document
}

// MockPosts returns the sample posts displayed when a task has no
// captured post content of its own.
func MockPosts() []Post {
	return []Post{
		{
			ID:        "1",
			Title:     "Initial Research Complete",
			Content:   "Completed research on color theory basics including warm vs cool colors and complementary schemes. Key insights: the psychological impact of colors varies across cultures...",
			Timestamp: "2025-11-10 14:30",
			Type:      "text",
		},
		{
			ID:        "2",
			Title:     "Color Palette Finalized",
			Content:   "After testing multiple variations, settled on Glacial Blue (#5E94CE) as primary color. Passes WCAG AA contrast requirements.",
			Timestamp: "2025-11-12 10:15",
			Type:      "image",
		},
		{
			ID:        "3",
			Title:     "Reference Material",
			Content:   "Found excellent article on design systems: https://designsystems.com/guide",
			Timestamp: "2025-11-14 16:45",
			Type:      "link",
		},
	}
}

// LinkageDoc is the static detail content shown in the linkage drawer
// for one linked entity kind.
type LinkageDoc struct {
	Kind     string
	Heading  string
	Content  string
	Metadata string
}

// LinkageFor returns the canned detail document for a linkage kind.
// Unknown kinds return an empty doc.
func LinkageFor(kind string) LinkageDoc {
	switch kind {
	case "moment":
		return LinkageDoc{
			Kind:    "moment",
			Heading: "Moment",
			Content: "Original Moment Content:\n\n" +
				"This moment captured insights from the team discussion about color theory on Nov 10. " +
				"We explored the psychological impacts of different color palettes and how they affect user perception.\n\n" +
				"Key points discussed:\n" +
				"• Warm colors (reds, oranges) create urgency and energy\n" +
				"• Cool colors (blues, greens) promote calmness and trust\n" +
				"• Cultural context matters - color meanings vary globally\n" +
				"• Accessibility must be considered (contrast ratios, colorblindness)\n\n" +
				"The team agreed on focusing on a glacial blue theme for its professional yet approachable feel.",
			Metadata: "Created: Nov 10, 2025 • Updated: Nov 12, 2025",
		}
	case "project":
		return LinkageDoc{
			Kind:    "project",
			Heading: "Project",
			Content: "Project: NVDA Deep Research\n\n" +
				"A comprehensive research initiative focused on analyzing NVIDIA stock performance, " +
				"market trends, and investment opportunities.\n\n" +
				"Project Goals:\n" +
				"• Track daily price movements and identify patterns\n" +
				"• Analyze quarterly earnings and guidance\n" +
				"• Monitor AI/GPU market dynamics\n" +
				"• Evaluate long-term investment thesis\n\n" +
				"Current Status:\nIn Progress - 67% Complete\n\n" +
				"Team Members:\nSarah Chen (Lead), Michael Rodriguez, Emma Thompson",
			Metadata: "Started: Oct 1, 2025 • Due: Dec 31, 2025",
		}
	case "milestone":
		return LinkageDoc{
			Kind:    "milestone",
			Heading: "Milestone",
			Content: "Milestone: Q4 Launch\n\n" +
				"Critical milestone marking the launch of the new design system and accompanying documentation.\n\n" +
				"Success Criteria:\n" +
				"✓ All components documented\n" +
				"✓ Code examples provided\n" +
				"✓ Accessibility guidelines complete\n" +
				"• Design tokens finalized (in progress)\n" +
				"• Team training completed (pending)\n\n" +
				"Dependencies:\n" +
				"• Design system documentation\n" +
				"• Component library v2.0\n" +
				"• Figma integration\n\n" +
				"Target Date: December 15, 2025",
			Metadata: "Priority: High • Status: On Track",
		}
	default:
		return LinkageDoc{Kind: kind}
	}
}
