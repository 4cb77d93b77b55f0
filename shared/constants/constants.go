package constants

const VERSION = "1.0.0"

const CLIUserAgent = "lostfound-cli"

// AuthTokenHeader carries the session token on authenticated requests.
// The backend rejects my-items reads and all mutations without it.
const AuthTokenHeader = "x-auth-token"

// Description preview lengths for item cards. The listing view trims
// harder than the my-items view since it packs more items on screen.
const ListingPreviewLen = 100
const MyItemsPreviewLen = 120

// DateFormat is how item dates are shown to the user.
const DateFormat = "Jan 2, 2006"

const MaxImagePreviewBytes = 10 << 20 // 10 mb
