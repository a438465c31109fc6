package constants

// Environment variable keys
const (
	EnvConfigPath = "JCBLOCKS_CONFIG"
	EnvDBPath     = "JCBLOCKS_DB"
	EnvAddress    = "JCBLOCKS_ADDR"
)

// Defaults used when neither the config file nor the environment says otherwise.
const (
	DefaultConfigPath    = "./jcblocks.yaml"
	DefaultDBPath        = "./data/jcblocks.db"
	DefaultServerAddress = ":8080"
)

// HTTP headers and content types
const (
	HeaderContentType = "Content-Type"
	HeaderPlayerToken = "X-Player-Token"

	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteVersion     = "/version"
	RouteGames       = "/games"
	RouteGameByCode  = "/games/:gameCode"
	RouteGameBoard   = "/games/:gameCode/board.png"
	RouteGameMoves   = "/games/:gameCode/moves"
	RouteGameHint    = "/games/:gameCode/hint"
	RouteGameResign  = "/games/:gameCode/resign"
	RouteLeaderboard = "/leaderboard"
	RoutePlayer      = "/players/:name"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Context keys set by middleware
const (
	ContextKeyGameCode    = "gameCode"
	ContextKeyPlayerToken = "playerToken"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidGameCode      = "Invalid game code"
	ErrGameNotFound         = "Game not found"
	ErrPlayerNotFound       = "Player not found"
	ErrFailedFetchGames     = "Failed to fetch games"
	ErrFailedFetchGame      = "Failed to fetch game"
	ErrFailedEncodeGame     = "Failed to encode game"
	ErrFailedFetchBoard     = "Failed to render board"
	ErrFailedFetchLeaders   = "Failed to fetch leaderboard"
	ErrFailedFetchPlayer    = "Failed to fetch player"
	ErrFailedCreateGame     = "Failed to create game"
	ErrFailedStoreMove      = "Failed to store move"
	ErrFailedComputeHint    = "Failed to compute hint"
	ErrFailedResign         = "Failed to resign game"
	ErrGameFinished         = "Game is already finished"
	ErrInvalidPlayerName    = "Player name must be 3 to 24 letters, digits, spaces, dots, dashes or underscores"
	ErrTokenRequired        = "Player token required"
	ErrInvalidToken         = "Player token does not match this game"
	ErrBlockDoesNotFit      = "Block does not fit at that position"
	ErrInvalidSlot          = "Hand slot out of range"
	ErrSlotEmpty            = "Hand slot already played"
	ErrNoMovesAvailable     = "No block in the hand fits on the board"
	ErrGameChanged          = "Game was changed by another request, reload and retry"
	ErrInvalidImageCellSize = "cell query parameter must be between 4 and 64"
)

// Game status messages
const (
	MsgGameStarted   = "Game started. Place a block."
	MsgBlockPlaced   = "Block placed."
	MsgLinesCleared  = "Cleared %d line(s) for %d points."
	MsgGameOver      = "No block fits. Game over."
	MsgGameResigned  = "Game resigned."
	MsgGameAbandoned = "Game abandoned due to inactivity."
)

// Logging field names
const (
	LogFieldGameCode = "game_code"
	LogFieldPlayer   = "player"
	LogFieldScore    = "score"
	LogFieldLines    = "lines"
	LogFieldMoves    = "moves"
	LogFieldSlot     = "slot"
	LogFieldAddr     = "addr"
	LogFieldPath     = "path"
	LogFieldStatus   = "status"
	LogFieldCount    = "count"
)
