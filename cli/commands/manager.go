package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lostfound/cli/commands/browse"
	"lostfound/cli/commands/item"
	"lostfound/cli/commands/mine"
	"lostfound/cli/commands/post"
	"lostfound/cli/globals"
	"lostfound/cli/styles"
)

type Command string

const (
	Browse Command = "browse"
	Item   Command = "item"
	Mine   Command = "mine"
	Post   Command = "post"
	Help   Command = "help"
)

var CommandMap = map[Command]func(){
	Browse: browse.ShowBrowseModel,
	Mine:   mine.ShowMyItemsModel,
	Post:   post.ShowPostModel,
	Help:   printHelp,
}

var ActionHelp = []string{
	fmt.Sprintf("%s | Browse all reported items\n"+
		"         - Example: lostfound browse", Browse),
	fmt.Sprintf("%s   | Open a single item by its id\n"+
		"         - Example: lostfound item 65f1a2b3c4", Item),
	fmt.Sprintf("%s   | Show your posted items and their totals", Mine),
	fmt.Sprintf("%s   | Post a new lost or found item", Post),
}

var HelpMsg = `
Usage: lostfound <command> [args]
`

var CommandHelpStr = `
  %s`

func printHelp() {
	HelpMsg += `
Commands:`
	for _, msg := range ActionHelp {
		HelpMsg += fmt.Sprintf(CommandHelpStr, msg)
	}

	fmt.Println(HelpMsg)
	fmt.Println()
}

// Entrypoint is the main entrypoint to the CLI
func Entrypoint(args []string) {
	var command Command
	if len(args) < 2 {
		if len(globals.Config.DefaultView) > 0 {
			command = Command(globals.Config.DefaultView)
		} else {
			command = Browse
		}
	} else {
		command = Command(args[1])
	}

	if command == Help {
		printHelp()
		return
	}

	if requiresLogin(command) && globals.CurrentUser == nil {
		styles.PrintErrStr("You are not logged in. " +
			"Log in through the web app and copy your token into the " +
			"CLI config directory to continue.")
		return
	}

	// Set up logging output (can't log to stdout while bubbletea is running)
	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		panic(err)
	}

	defer f.Close()

	if command == Item {
		if len(args) < 3 {
			styles.PrintErrStr("-- Missing item id (lostfound item <id>)")
			return
		}

		item.ShowDetailModel(args[2])
		return
	}

	viewFunction, ok := CommandMap[command]
	if !ok {
		styles.PrintErrStr(fmt.Sprintf("-- Invalid command '%s'", command))
		printHelp()
		return
	}

	viewFunction()
}

// requiresLogin checks if the provided command only works for a
// logged in user
func requiresLogin(cmd Command) bool {
	return cmd == Mine || cmd == Post
}
