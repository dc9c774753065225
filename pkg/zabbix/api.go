package zabbix

import (
	"context"

	zerr "github.com/matzehuels/zbxmap/pkg/errors"
	"github.com/matzehuels/zbxmap/pkg/sysmap"
)

var (
	_ sysmap.HostResolver = (*Client)(nil)
	_ sysmap.Publisher    = (*Client)(nil)
)

// imageTypeIcon selects icons, as opposed to map backgrounds, in image.get.
const imageTypeIcon = 1

// Login opens a session. The server version is fetched first so the right
// parameter names and token placement are used.
func (c *Client) Login(ctx context.Context, user, password string) error {
	if _, err := c.Version(ctx); err != nil {
		return err
	}

	params := map[string]string{"password": password}
	if c.server.usernameParam() {
		params["username"] = user
	} else {
		params["user"] = user
	}

	var token string
	if err := c.call(ctx, "user.login", params, &token, false); err != nil {
		if zerr.Is(err, zerr.ErrCodeZabbixAPI) {
			return zerr.Wrap(zerr.ErrCodeUnauthorized, err, "login as %s", user)
		}
		return err
	}
	if token == "" {
		return zerr.New(zerr.ErrCodeUnauthorized, "login as %s: empty session token", user)
	}
	c.token = token
	return nil
}

// Logout closes the session. It is a no-op without one.
func (c *Client) Logout(ctx context.Context) error {
	if !c.LoggedIn() {
		return nil
	}
	err := c.Call(ctx, "user.logout", []any{}, nil)
	c.token = ""
	return err
}

// Icons returns the server's icon catalog as a name to image ID table.
func (c *Client) Icons(ctx context.Context) (sysmap.IconTable, error) {
	var images []struct {
		ImageID string `json:"imageid"`
		Name    string `json:"name"`
	}
	params := map[string]any{
		"output": []string{"imageid", "name"},
		"filter": map[string]any{"imagetype": imageTypeIcon},
	}
	if err := c.Call(ctx, "image.get", params, &images); err != nil {
		return nil, err
	}

	icons := make(sysmap.IconTable, len(images))
	for _, img := range images {
		icons[img.Name] = img.ImageID
	}
	return icons, nil
}

// HostID returns the ID of the host whose technical name is name.
func (c *Client) HostID(ctx context.Context, name string) (string, error) {
	var hosts []struct {
		HostID string `json:"hostid"`
	}
	params := map[string]any{
		"output": []string{"hostid"},
		"filter": map[string]any{"host": []string{name}},
	}
	if err := c.Call(ctx, "host.get", params, &hosts); err != nil {
		return "", err
	}
	if len(hosts) == 0 {
		return "", zerr.New(zerr.ErrCodeHostNotFound, "host %q not found", name)
	}
	return hosts[0].HostID, nil
}

// MapIDs returns the IDs of maps named name.
func (c *Client) MapIDs(ctx context.Context, name string) ([]string, error) {
	var maps []struct {
		SysmapID string `json:"sysmapid"`
	}
	params := map[string]any{
		"output": []string{"sysmapid"},
		"filter": map[string]any{"name": []string{name}},
	}
	if err := c.Call(ctx, "map.get", params, &maps); err != nil {
		return nil, err
	}

	ids := make([]string, len(maps))
	for i, m := range maps {
		ids[i] = m.SysmapID
	}
	return ids, nil
}

// DeleteMaps deletes the maps with the given IDs.
func (c *Client) DeleteMaps(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	return c.Call(ctx, "map.delete", ids, nil)
}

// CreateMap creates m and returns the new map's ID.
func (c *Client) CreateMap(ctx context.Context, m *sysmap.Map) (string, error) {
	var out struct {
		SysmapIDs []string `json:"sysmapids"`
	}
	if err := c.Call(ctx, "map.create", encodeMap(m, c.server), &out); err != nil {
		return "", err
	}
	if len(out.SysmapIDs) == 0 {
		return "", zerr.New(zerr.ErrCodeZabbixAPI, "map.create returned no map ID")
	}
	return out.SysmapIDs[0], nil
}
