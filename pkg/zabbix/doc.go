// Package zabbix is a minimal client for the Zabbix JSON-RPC API.
//
// It covers exactly the calls zbxmap makes: version discovery, login and
// logout, the icon catalog, host lookup by name, and map lookup, deletion and
// creation. [Client] satisfies sysmap.HostResolver and sysmap.Publisher.
//
// # Sessions
//
// [Client.Login] must be called before any other authenticated method. The
// server version, fetched during login, decides how the session token is
// sent: as a Bearer header on Zabbix 6.4 and later, in the request body's
// "auth" member before that.
//
// # Failure model
//
// Calls are made one at a time. There are no retries, no timeouts beyond the
// caller's context, and no re-login when a session expires. Errors carry a
// code from pkg/errors:
//
//   - NETWORK_ERROR: transport failures and non-200 responses
//   - UNAUTHORIZED: login rejected, or a call made without a session
//   - ZABBIX_API: any other JSON-RPC error object (see [RPCError])
//   - HOST_NOT_FOUND: [Client.HostID] found no host of that name
package zabbix
