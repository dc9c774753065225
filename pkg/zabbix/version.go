package zabbix

import (
	"context"
	"regexp"

	"github.com/Masterminds/semver/v3"

	zerr "github.com/matzehuels/zbxmap/pkg/errors"
)

// API changes zbxmap has to follow.
var (
	// Since 3.4 selements reference hosts through an "elements" array.
	elementsArraySince = semver.MustParse("3.4.0")
	// Since 5.4 user.login takes "username" instead of "user".
	usernameSince = semver.MustParse("5.4.0")
	// Since 6.4 the session token goes in an Authorization header.
	bearerSince = semver.MustParse("6.4.0")
)

// serverVersion is the API version reported by the server. A nil
// *serverVersion means "unknown" and selects current behavior.
type serverVersion struct {
	v *semver.Version
}

func (s *serverVersion) atLeast(want *semver.Version) bool {
	return s == nil || !s.v.LessThan(want)
}

func (s *serverVersion) bearerAuth() bool    { return s.atLeast(bearerSince) }
func (s *serverVersion) usernameParam() bool { return s.atLeast(usernameSince) }
func (s *serverVersion) elementsArray() bool { return s.atLeast(elementsArraySince) }

// versionPrefix keeps the numeric part of versions such as "7.2.0rc1".
var versionPrefix = regexp.MustCompile(`^\d+(\.\d+){0,2}`)

func parseVersion(raw string) (*serverVersion, error) {
	num := versionPrefix.FindString(raw)
	if num == "" {
		return nil, zerr.New(zerr.ErrCodeZabbixAPI, "unrecognized API version %q", raw)
	}
	v, err := semver.NewVersion(num)
	if err != nil {
		return nil, zerr.Wrap(zerr.ErrCodeZabbixAPI, err, "parse API version %q", raw)
	}
	return &serverVersion{v: v}, nil
}

// Version returns the server's API version. It needs no session and is
// cached after the first call.
func (c *Client) Version(ctx context.Context) (string, error) {
	if c.server != nil {
		return c.server.v.String(), nil
	}
	var raw string
	if err := c.call(ctx, "apiinfo.version", []any{}, &raw, false); err != nil {
		return "", err
	}
	sv, err := parseVersion(raw)
	if err != nil {
		return "", err
	}
	c.server = sv
	return sv.v.String(), nil
}
