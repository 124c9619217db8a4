package loop

// GameState represents the current phase of a session.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active match
	GameStateShutdown                  // Host is shutting down
)

func (g GameState) String() string {
	switch g {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}
