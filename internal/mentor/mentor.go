// Package mentor supplies the canned assistant content for the chat
// panel and the evidence/linkage drawers. Responses are simulated; there
// is no network or language model behind them.
package mentor

import (
	"fmt"
	"time"
)

// Mode selects the assistant's persona.
type Mode string

const (
	// ModeTaskLens helps the user break down and plan a specific task.
	ModeTaskLens Mode = "task-lens"

	// ModeWritingPartner helps the user draft and structure a post.
	ModeWritingPartner Mode = "writing-partner"
)

// ReplyDelay is the simulated thinking time before a reply appears.
const ReplyDelay = time.Second

// Greeting returns the assistant's opening message for the given mode.
func Greeting(mode Mode, taskTitle string) string {
	if mode == ModeTaskLens {
		return fmt.Sprintf(
			"I'm here to help you understand %q. What would you like to know? "+
				"I can break down the task, suggest approaches, identify dependencies, "+
				"or help you plan your execution strategy.",
			taskTitle,
		)
	}
	return "I'm your writing partner! I can help you structure your post, " +
		"expand on ideas, summarize your progress, or suggest frameworks for " +
		"documenting your work. What would you like help with?"
}

// Reply returns the canned response to any user message in the given mode.
func Reply(mode Mode, taskTitle string) string {
	if mode == ModeTaskLens {
		return fmt.Sprintf(
			"Let me help you with that. Here's a breakdown:\n\n"+
				"1. Understanding the Task: %s\n"+
				"2. Key Considerations: Focus on core requirements first\n"+
				"3. Suggested Approach: Start with research and prototyping\n"+
				"4. Timeline: Break it into 2-3 day sprints\n\n"+
				"Would you like me to elaborate on any of these points?",
			taskTitle,
		)
	}
	return "Great question! Here's how I'd structure that:\n\n" +
		"Main Points:\n" +
		"- Start with your objective and context\n" +
		"- Describe what you did and why\n" +
		"- Share the key insights or learnings\n" +
		"- Note any challenges and how you overcame them\n" +
		"- End with next steps or reflections\n\n" +
		"Would you like me to help you draft any section?"
}

// QuickActions returns the one-tap prompt suggestions for the given mode.
func QuickActions(mode Mode) []string {
	if mode == ModeTaskLens {
		return []string{
			"Break it down",
			"Suggest approach",
			"Dependencies",
			"Time estimate",
			"Similar tasks",
			"Best practices",
		}
	}
	return []string{
		"Structure this",
		"Expand idea",
		"Summarize",
		"Suggest framework",
		"Review draft",
		"Next steps",
	}
}
