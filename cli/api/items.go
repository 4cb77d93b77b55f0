package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"lostfound/cli/requests"
	"lostfound/cli/utils"
	"lostfound/shared"
	"lostfound/shared/constants"
	"lostfound/shared/endpoints"
)

// ErrItemNotFound distinguishes a missing item from transport or server
// failures so the detail view can render its not-found page.
var ErrItemNotFound = errors.New("item not found")

// FetchItems returns every item on the server. This read is public and
// never sends the auth token.
func (ctx *Context) FetchItems() ([]shared.Item, error) {
	url := endpoints.Items.Format(ctx.Server)
	resp, err := requests.GetRequest("", url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.ParseHTTPError(resp)
	}

	var items []shared.Item
	if err = json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}

	return items, nil
}

// FetchItem returns a single item by its identifier. Returns
// ErrItemNotFound when the server has no such item.
func (ctx *Context) FetchItem(id string) (shared.Item, error) {
	url := endpoints.Item.Format(ctx.Server, id)
	resp, err := requests.GetRequest("", url)
	if err != nil {
		return shared.Item{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return shared.Item{}, ErrItemNotFound
	} else if resp.StatusCode != http.StatusOK {
		return shared.Item{}, utils.ParseHTTPError(resp)
	}

	var item shared.Item
	if err = json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return shared.Item{}, err
	}

	return item, nil
}

// FetchMyItems returns the items posted by the logged-in user.
func (ctx *Context) FetchMyItems() ([]shared.Item, error) {
	url := endpoints.MyItems.Format(ctx.Server)
	resp, err := requests.GetRequest(ctx.Token, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.ParseHTTPError(resp)
	}

	var items []shared.Item
	if err = json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateItem posts a new lost/found report and returns the stored item.
func (ctx *Context) CreateItem(item shared.Item) (shared.Item, error) {
	reqData, err := json.Marshal(item)
	if err != nil {
		return shared.Item{}, err
	}

	url := endpoints.Items.Format(ctx.Server)
	resp, err := requests.PostRequest(ctx.Token, url, reqData)
	if err != nil {
		return shared.Item{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return shared.Item{}, utils.ParseHTTPError(resp)
	}

	var created shared.Item
	if err = json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return shared.Item{}, err
	}

	return created, nil
}

// ResolveItem marks an item as resolved. The backend's update endpoint
// expects the full item object, so the whole record is sent with only
// the resolved flag flipped.
func (ctx *Context) ResolveItem(item shared.Item) (shared.Item, error) {
	item.Resolved = true

	reqData, err := json.Marshal(item)
	if err != nil {
		return shared.Item{}, err
	}

	url := endpoints.Item.Format(ctx.Server, item.ID)
	resp, err := requests.PutRequest(ctx.Token, url, reqData)
	if err != nil {
		return shared.Item{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return shared.Item{}, utils.ParseHTTPError(resp)
	}

	return item, nil
}

// DeleteItem removes one of the user's items from the server.
func (ctx *Context) DeleteItem(id string) error {
	url := endpoints.Item.Format(ctx.Server, id)
	resp, err := requests.DeleteRequest(ctx.Token, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return utils.ParseHTTPError(resp)
	}

	return nil
}

// DownloadImage fetches an item's photo for previewing in the terminal.
func (ctx *Context) DownloadImage(url string) ([]byte, error) {
	resp, err := requests.GetRequest("", url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.ParseHTTPError(resp)
	}

	reader := io.LimitReader(resp.Body, constants.MaxImagePreviewBytes)
	return io.ReadAll(reader)
}
