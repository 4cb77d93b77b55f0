package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"lostfound/cli/styles"
)

func HandleCLIError(msg string, err error) {
	if err == nil {
		return
	} else if err == huh.ErrUserAborted {
		os.Exit(0)
	}

	styles.PrintErrStr(fmt.Sprintf("ERROR: %s - %v\n", msg, err))
	os.Exit(1)
}

// ShowErrorForm blocks on an error dialog until the user dismisses it.
// Used for failed actions that leave the current view's state unchanged.
func ShowErrorForm(errMsg string) {
	_ = huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(GenerateTitle("Error")).
			Description(styles.ErrStyle.Render(errMsg)),
		huh.NewConfirm().Affirmative("OK").Negative(""),
	)).WithTheme(styles.Theme).Run()
}

// ParseHTTPError turns a non-OK response into an error, preferring the
// server's JSON error message when one is present.
func ParseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		var serverErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}

		if json.Unmarshal(body, &serverErr) == nil {
			if len(serverErr.Error) > 0 {
				return errors.New(serverErr.Error)
			} else if len(serverErr.Message) > 0 {
				return errors.New(serverErr.Message)
			}
		}

		msg := strings.TrimSpace(string(body))
		if len(msg) > 0 && !strings.HasPrefix(msg, "<") {
			return errors.New(msg)
		}
	}

	return fmt.Errorf("server error: %s", resp.Status)
}
