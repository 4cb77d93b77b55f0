package endpoints

import (
	"fmt"
	"strings"
)

type Endpoint string

// The REST surface consumed by the CLI. Wildcards are replaced with
// Format args in order.
var (
	Items   = Endpoint("/api/items")
	Item    = Endpoint("/api/items/*")
	MyItems = Endpoint("/api/items/user/my-items")

	// HTMLItem is the browser-facing detail page for an item, used when
	// sharing an item link outside the CLI.
	HTMLItem = Endpoint("/item/*")
)

func (e Endpoint) Format(server string, args ...string) string {
	strEndpoint := string(e)
	for _, arg := range args {
		strEndpoint = strings.Replace(strEndpoint, "*", arg, 1)
	}

	// Remove remaining wildcards
	strEndpoint = strings.ReplaceAll(strEndpoint, "*", "")

	server = strings.TrimSuffix(server, "/")
	strEndpoint = strings.TrimPrefix(strEndpoint, "/")
	url := fmt.Sprintf("%s/%s", server, strEndpoint)
	return url
}
