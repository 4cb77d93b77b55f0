package globals

import (
	"lostfound/cli/api"
	"lostfound/cli/config"
	"lostfound/shared"
)

var API *api.Context
var Config *config.Config

// CurrentUser is nil when browsing anonymously. It is loaded once from
// the profile file the login flow wrote; the views only ever read it.
var CurrentUser *shared.User

func init() {
	Config = config.LoadConfig()
	CurrentUser = Config.ReadProfile()
	API = api.InitContext(Config.Server, Config.ReadToken())
}
