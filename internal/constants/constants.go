package constants

import "time"

// RecentCapacity caps the MRU list of recent contacts.
const RecentCapacity = 5

// IndexDelimiter separates a message from a 1-based contact number.
// Must be checked before NameDelimiter since it contains it.
const IndexDelimiter = "||"

// NameDelimiter separates a message from a contact display name.
const NameDelimiter = "|"

// Prompt is printed before every command line.
const Prompt = "> "

// ClockLayout formats timestamps on message lines and the time command.
const ClockLayout = "15:04:05"

// StartupRetryInterval is the pause between failed contact list fetches.
const StartupRetryInterval = 2 * time.Second

// MinEventBusBufferSize is the minimum buffer per subscriber channel.
const MinEventBusBufferSize = 64

// EventBusBufferSize is the default subscriber buffer used by the entrypoint.
const EventBusBufferSize = 256

// BridgeRequestTimeout caps a single bridge RPC.
const BridgeRequestTimeout = 30 * time.Second

// BridgePollInterval is the default pause between inbound polls.
const BridgePollInterval = time.Second

// OfflineEchoDelay is how long the offline transport waits before echoing.
const OfflineEchoDelay = 500 * time.Millisecond

// JournalRecentLimit bounds journal reads when no limit is given.
const JournalRecentLimit = 50

// ShutdownTimeout bounds logout and journal drain on exit.
const ShutdownTimeout = 5 * time.Second
