package api

// Context holds everything needed to talk to a lost & found server. The
// token may be empty, in which case only unauthenticated reads succeed.
type Context struct {
	Server string
	Token  string
}

func InitContext(server, token string) *Context {
	return &Context{
		Server: server,
		Token:  token,
	}
}
