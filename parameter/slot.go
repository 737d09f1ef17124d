package parameter

import "time"

// Interaction Slots
const (
	// SlotDefaultCooldown applies when a scene slot omits its cooldown
	SlotDefaultCooldown = 15 * time.Second

	// ManagerSlotDefaultCooldown is the gap between manager calls
	ManagerSlotDefaultCooldown = 25 * time.Second

	// SlotDefaultPrompt is shown when a scene slot omits its prompt text
	SlotDefaultPrompt = "Press E to interact"
)
