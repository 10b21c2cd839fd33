package templates

import "strings"

// HandoffPromptPrefix is prepended to the instructions of agents that
// participate in handoffs, so the model understands transfers are part of
// a coordinated multi-agent flow rather than a topic change.
const HandoffPromptPrefix = `# System context
You are part of a multi-agent system designed to make agent coordination and execution easy. Agents use two primary abstractions: agents and handoffs. An agent encompasses instructions and tools and can hand off a conversation to another agent when appropriate. Handoffs are achieved by calling a transfer function, generally named transfer_to_<agent_name>. Transfers between agents are handled seamlessly in the background; do not mention or draw attention to these transfers in your conversation with the user.`

// WithHandoffInstructions prefixes agent instructions with the recommended
// handoff system context.
func WithHandoffInstructions(instructions string) string {
	trimmed := strings.TrimSpace(instructions)
	if trimmed == "" {
		return HandoffPromptPrefix
	}
	return HandoffPromptPrefix + "\n\n" + trimmed
}
